package graph

import (
	"context"
	"fmt"

	"github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/normalization"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

// Ids reach the API in three shapes: an explicit id property, a modern element id, or
// an older integer identity. toInteger yields null for non-numeric ids.
const pathwayByID = `
MATCH (q:Qualification)
WHERE q.id = $id OR elementId(q) = $id OR id(q) = toInteger($id)
RETURN q
LIMIT 1
`

const detailByID = `
MATCH (n)
WHERE (n:Module OR n:SkillIndiaCourse OR n:Qualification)
  AND (n.id = $id OR elementId(n) = $id OR id(n) = toInteger($id))
RETURN n
LIMIT 1
`

// PathwayByID returns the Qualification behind id. found is false when nothing matches.
func PathwayByID(ctx context.Context, run neo4jdb.Runner, norm *normalization.Normalizer, id string) (domain.Pathway, bool, error) {
	records, err := run.Run(ctx, pathwayByID, map[string]any{"id": id})
	if err != nil {
		return domain.Pathway{}, false, fmt.Errorf("graph: pathway by id: %w", err)
	}
	for _, rec := range records {
		if q, ok := recordNode(rec, "q"); ok {
			return norm.Pathway(q, nil), true, nil
		}
	}
	return domain.Pathway{}, false, nil
}

// EntityDetail returns the detail view of a module or course node.
func EntityDetail(ctx context.Context, run neo4jdb.Runner, norm *normalization.Normalizer, id string) (domain.Detail, bool, error) {
	records, err := run.Run(ctx, detailByID, map[string]any{"id": id})
	if err != nil {
		return nil, false, fmt.Errorf("graph: detail by id: %w", err)
	}
	for _, rec := range records {
		if n, ok := recordNode(rec, "n"); ok {
			return norm.Detail(n), true, nil
		}
	}
	return nil, false, nil
}
