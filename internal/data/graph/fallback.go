package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

// Candidate is one match strategy: a read query and its parameters.
type Candidate struct {
	Name   string
	Cypher string
	Params map[string]any
}

// Resolution reports the records of the first non-empty candidate. Matched is empty
// when no candidate returned rows; Attempts counts the queries actually executed.
type Resolution struct {
	Records  []*neo4j.Record
	Matched  string
	Attempts int
}

// FirstNonEmpty runs candidates one after another, in order, and stops at the first one
// that returns rows. A store error ends the chain; later candidates are not tried.
func FirstNonEmpty(ctx context.Context, run neo4jdb.Runner, candidates []Candidate) (Resolution, error) {
	var res Resolution
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Attempts++
		records, err := run.Run(ctx, c.Cypher, c.Params)
		if err != nil {
			return res, fmt.Errorf("graph: candidate %q: %w", c.Name, err)
		}
		if len(records) > 0 {
			res.Records = records
			res.Matched = c.Name
			return res, nil
		}
	}
	return res, nil
}
