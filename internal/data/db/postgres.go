package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/learnpath-backend/internal/platform/envutil"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver      string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	SQLitePath  string
	AutoMigrate bool
}

func ConfigFromEnv() Config {
	return Config{
		Driver:      strings.ToLower(envutil.String("IDENTITY_DB_DRIVER", DriverPostgres)),
		Host:        envutil.String("POSTGRES_HOST", "localhost"),
		Port:        envutil.String("POSTGRES_PORT", "5432"),
		User:        envutil.String("POSTGRES_USER", "postgres"),
		Password:    envutil.String("POSTGRES_PASSWORD", ""),
		Name:        envutil.String("POSTGRES_NAME", "learnpath"),
		SSLMode:     envutil.String("POSTGRES_SSLMODE", "disable"),
		SQLitePath:  envutil.String("SQLITE_PATH", "learnpath.db"),
		AutoMigrate: envutil.Bool("IDENTITY_DB_AUTOMIGRATE", false),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.SSLMode,
	)
}

// IdentityStore owns the gorm handle for the identity database.
type IdentityStore struct {
	db     *gorm.DB
	driver string
	log    *logger.Logger
}

func Open(logg *logger.Logger, cfg Config) (*IdentityStore, error) {
	serviceLog := logg.With("service", "IdentityStore", "driver", cfg.Driver)

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres, "":
		dialector = postgres.Open(cfg.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported identity db driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to identity db: %w", err)
	}

	if cfg.AutoMigrate || cfg.Driver == DriverSQLite {
		if err := AutoMigrateAll(db); err != nil {
			return nil, fmt.Errorf("identity db migrate: %w", err)
		}
	}

	serviceLog.Info("identity db connected")
	return &IdentityStore{db: db, driver: cfg.Driver, log: serviceLog}, nil
}

func (s *IdentityStore) DB() *gorm.DB { return s.db }

func (s *IdentityStore) Driver() string { return s.driver }

func (s *IdentityStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("identity db not configured")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *IdentityStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
