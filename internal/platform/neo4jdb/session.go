package neo4jdb

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner executes one parameterized read and returns every record, in store order.
type Runner interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)
}

// SessionProvider hands out one scoped read session per call. The session is closed
// when fn returns, whatever fn returns.
type SessionProvider interface {
	WithReadSession(ctx context.Context, fn func(Runner) error) error
}

func (c *Client) WithReadSession(ctx context.Context, fn func(Runner) error) error {
	if c == nil || c.Driver == nil {
		return ErrNotConfigured
	}
	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.Database,
	})
	defer func() {
		if err := session.Close(ctx); err != nil && c.log != nil {
			c.log.Warn("neo4j session close failed", "error", err)
		}
	}()
	return fn(&sessionRunner{session: session, timeout: c.QueryTimeout})
}

type sessionRunner struct {
	session neo4j.SessionWithContext
	timeout time.Duration
}

// Run uses an auto-commit transaction: unlike ExecuteRead it never retries, so a failed
// query surfaces immediately.
func (r *sessionRunner) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	var configurers []func(*neo4j.TransactionConfig)
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
		configurers = append(configurers, neo4j.WithTxTimeout(r.timeout))
	}
	res, err := r.session.Run(ctx, cypher, params, configurers...)
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: run: %w", err)
	}
	records, err := res.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: collect: %w", err)
	}
	return records, nil
}
