package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/yungbote/learnpath-backend/internal/normalization"
)

// toNode converts a driver node value into the normalizer's view.
func toNode(v any) (normalization.Node, bool) {
	switch n := v.(type) {
	case dbtype.Node:
		return normalization.Node{ElementID: n.ElementId, InternalID: n.Id, Labels: n.Labels, Props: props(n.Props)}, true
	case *dbtype.Node:
		if n == nil {
			return normalization.Node{}, false
		}
		return toNode(*n)
	default:
		return normalization.Node{}, false
	}
}

func props(p map[string]any) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return p
}

func recordNode(rec *neo4j.Record, key string) (normalization.Node, bool) {
	if rec == nil {
		return normalization.Node{}, false
	}
	v, ok := rec.Get(key)
	if !ok {
		return normalization.Node{}, false
	}
	return toNode(v)
}

func recordValue(rec *neo4j.Record, key string) any {
	if rec == nil {
		return nil
	}
	v, _ := rec.Get(key)
	return v
}
