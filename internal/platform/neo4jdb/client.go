package neo4jdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/learnpath-backend/internal/platform/envutil"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

// ErrNotConfigured is returned by a Client that was never connected (no NEO4J_URI).
var ErrNotConfigured = errors.New("neo4jdb: graph store not configured")

type Config struct {
	URI          string
	User         string
	Password     string
	Database     string
	ConnTimeout  time.Duration
	QueryTimeout time.Duration
	MaxPoolSize  int
}

// ConfigFromEnv accepts both the NEO4J_USER and NEO4J_USERNAME spellings, and AUTH as a
// password fallback, since deployments of the ingestion side use either.
func ConfigFromEnv() Config {
	return Config{
		URI:          envutil.String("NEO4J_URI", ""),
		User:         envutil.First("neo4j", "NEO4J_USER", "NEO4J_USERNAME"),
		Password:     envutil.First("", "NEO4J_PASSWORD", "AUTH"),
		Database:     envutil.String("NEO4J_DATABASE", "neo4j"),
		ConnTimeout:  envutil.Seconds("NEO4J_TIMEOUT_SECONDS", 10*time.Second),
		QueryTimeout: envutil.Seconds("GRAPH_QUERY_TIMEOUT_SECONDS", 5*time.Second),
		MaxPoolSize:  envutil.PositiveInt("NEO4J_MAX_POOL_SIZE", 50),
	}
}

type Client struct {
	Driver       neo4j.DriverWithContext
	Database     string
	QueryTimeout time.Duration
	log          *logger.Logger
}

// New connects and verifies connectivity. A blank URI yields (nil, nil): the service
// still boots and graph-backed endpoints report the store as unavailable.
func New(ctx context.Context, log *logger.Logger, cfg Config) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("neo4jdb: logger required")
	}
	if cfg.URI == "" {
		log.Warn("Neo4j config missing; graph endpoints will be unavailable")
		return nil, nil
	}
	if cfg.ConnTimeout <= 0 {
		cfg.ConnTimeout = 10 * time.Second
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 5 * time.Second
	}
	if cfg.Database == "" {
		cfg.Database = "neo4j"
	}

	auth := neo4j.BasicAuth(cfg.User, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		if cfg.MaxPoolSize > 0 {
			c.MaxConnectionPoolSize = cfg.MaxPoolSize
		}
		c.SocketConnectTimeout = cfg.ConnTimeout
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: init driver: %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4jdb: verify connectivity: %w", err)
	}

	log.Info("Neo4j connected", "database", cfg.Database)
	return &Client{
		Driver:       driver,
		Database:     cfg.Database,
		QueryTimeout: cfg.QueryTimeout,
		log:          log.With("client", "Neo4jDB"),
	}, nil
}

// Ping reports whether the driver can still reach the server.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return ErrNotConfigured
	}
	return c.Driver.VerifyConnectivity(ctx)
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}
