package graph

import (
	"context"
	"fmt"

	"github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/normalization"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

const DefaultSimilarLimit = 4

const qualificationEmbedding = `
MATCH (q:Qualification)
WHERE q.id = $id OR elementId(q) = $id OR id(q) = toInteger($id)
RETURN q.embedding AS embedding
LIMIT 1
`

// Candidates must share the query vector's dimension; cosine is null for zero vectors.
const nearestCourses = `
MATCH (c:SkillIndiaCourse)
WHERE c.embedding IS NOT NULL AND size(c.embedding) = size($embedding)
WITH c, vector.similarity.cosine(c.embedding, $embedding) AS score
WHERE score IS NOT NULL
RETURN c, score
ORDER BY score DESC
LIMIT $limit
`

// SimilarCourses ranks catalog courses by cosine similarity to the Qualification's
// embedding. A Qualification without a usable embedding yields no courses.
func SimilarCourses(ctx context.Context, run neo4jdb.Runner, norm *normalization.Normalizer, id string, limit int) ([]domain.Course, error) {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	records, err := run.Run(ctx, qualificationEmbedding, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("graph: qualification embedding: %w", err)
	}
	if len(records) == 0 {
		return []domain.Course{}, nil
	}
	embedding := recordValue(records[0], "embedding")
	if _, ok := normalization.Vector(embedding); !ok {
		return []domain.Course{}, nil
	}

	records, err = run.Run(ctx, nearestCourses, map[string]any{
		"embedding": embedding,
		"limit":     int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("graph: nearest courses: %w", err)
	}
	out := make([]domain.Course, 0, len(records))
	for _, rec := range records {
		c, ok := recordNode(rec, "c")
		if !ok {
			continue
		}
		course := norm.Course(c)
		if score, ok := normalization.Float64(recordValue(rec, "score")); ok {
			course.Score = &score
		}
		out = append(out, course)
	}
	return out, nil
}
