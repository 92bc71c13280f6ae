package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/learnpath-backend/internal/data/db"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

type Clients struct {
	Neo4j    *neo4jdb.Client
	Identity *db.IdentityStore
}

// wireClients connects the graph and identity stores concurrently.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	var out Clients
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := neo4jdb.New(gctx, log, cfg.Graph)
		if err != nil {
			return fmt.Errorf("init neo4j: %w", err)
		}
		out.Neo4j = c
		return nil
	})
	if cfg.IdentityEnabled {
		g.Go(func() error {
			s, err := db.Open(log, cfg.IdentityDB)
			if err != nil {
				return fmt.Errorf("init identity db: %w", err)
			}
			log.Info("Identity store ready", "driver", s.Driver())
			out.Identity = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		out.Close(context.Background())
		return Clients{}, err
	}
	return out, nil
}

func (c *Clients) Close(ctx context.Context) {
	if c == nil {
		return
	}
	if c.Neo4j != nil {
		_ = c.Neo4j.Close(ctx)
	}
	if c.Identity != nil {
		_ = c.Identity.Close()
	}
}
