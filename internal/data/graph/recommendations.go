package graph

import (
	"context"
	"strings"

	"github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/normalization"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

const recommendationsByMongoID = `
MATCH (u:User {mongoId: $userId})-[r:RECOMMENDED_FOR]->(q:Qualification)
RETURN q, r.rank AS rank
ORDER BY rank ASC
`

const recommendationsByID = `
MATCH (u:User {id: $userId})-[r:RECOMMENDED_FOR]->(q:Qualification)
RETURN q, r.rank AS rank
ORDER BY rank ASC
`

const recommendationsByEmail = `
MATCH (u:User {email: $email})-[r:RECOMMENDED_FOR]->(q:Qualification)
RETURN q, r.rank AS rank
ORDER BY rank ASC
`

// LearnerKeys are the identity keys a graph User node may carry.
type LearnerKeys struct {
	ID       string
	LegacyID string
	Email    string
}

// RecommendationCandidates lists the User match strategies in priority order. The legacy
// id and email strategies are only included when those keys are known.
func RecommendationCandidates(keys LearnerKeys) []Candidate {
	out := []Candidate{
		{Name: "mongoId", Cypher: recommendationsByMongoID, Params: map[string]any{"userId": keys.ID}},
		{Name: "id", Cypher: recommendationsByID, Params: map[string]any{"userId": keys.ID}},
	}
	if legacy := strings.TrimSpace(keys.LegacyID); legacy != "" && legacy != keys.ID {
		out = append(out, Candidate{Name: "legacyId", Cypher: recommendationsByID, Params: map[string]any{"userId": legacy}})
	}
	if email := strings.TrimSpace(keys.Email); email != "" {
		out = append(out, Candidate{Name: "email", Cypher: recommendationsByEmail, Params: map[string]any{"email": email}})
	}
	return out
}

// Recommendations resolves the learner's RECOMMENDED_FOR pathways, keeping the
// rank-ascending order the store returned.
func Recommendations(ctx context.Context, run neo4jdb.Runner, norm *normalization.Normalizer, keys LearnerKeys) ([]domain.Pathway, Resolution, error) {
	res, err := FirstNonEmpty(ctx, run, RecommendationCandidates(keys))
	if err != nil {
		return nil, res, err
	}
	items := make([]domain.Pathway, 0, len(res.Records))
	for _, rec := range res.Records {
		q, ok := recordNode(rec, "q")
		if !ok {
			continue
		}
		items = append(items, norm.Pathway(q, recordValue(rec, "rank")))
	}
	return items, res, nil
}
