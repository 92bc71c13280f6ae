package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/normalization"
	"github.com/yungbote/learnpath-backend/internal/platform/neo4jdb"
)

const pathwayGraph = `
MATCH (q:Qualification)-[r:HAS_MODULE]->(m)
WHERE q.id = $id OR elementId(q) = $id OR id(q) = toInteger($id)
RETURN q, r, m
`

// PathwayGraph builds the one-hop Qualification -> Module view. Nodes are unique by
// store id in first-seen order; every traversed relationship yields its own link.
func PathwayGraph(ctx context.Context, run neo4jdb.Runner, norm *normalization.Normalizer, id string) (domain.GraphView, error) {
	records, err := run.Run(ctx, pathwayGraph, map[string]any{"id": id})
	if err != nil {
		return domain.EmptyGraph(), fmt.Errorf("graph: pathway graph: %w", err)
	}
	return assembleGraph(norm, records), nil
}

func assembleGraph(norm *normalization.Normalizer, records []*neo4j.Record) domain.GraphView {
	view := domain.EmptyGraph()
	seen := make(map[string]struct{}, len(records)+1)
	add := func(n normalization.Node, typ domain.NodeType) string {
		id := normalization.StoreID(n)
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			view.Nodes = append(view.Nodes, norm.GraphNode(n, typ))
		}
		return id
	}
	for _, rec := range records {
		q, ok := recordNode(rec, "q")
		if !ok {
			continue
		}
		m, ok := recordNode(rec, "m")
		if !ok {
			continue
		}
		source := add(q, domain.NodeTypeRoot)
		target := add(m, domain.NodeTypeModule)
		view.Links = append(view.Links, domain.GraphLink{Source: source, Target: target})
	}
	return view
}
