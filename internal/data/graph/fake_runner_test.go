package graph

import (
	"context"
	"errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

type call struct {
	cypher string
	params map[string]any
}

type reply struct {
	records []*neo4j.Record
	err     error
}

// fakeRunner answers queries in call order and records what it was asked.
type fakeRunner struct {
	replies []reply
	calls   []call
}

func (f *fakeRunner) Run(_ context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	f.calls = append(f.calls, call{cypher: cypher, params: params})
	i := len(f.calls) - 1
	if i >= len(f.replies) {
		return nil, errors.New("fakeRunner: unexpected query")
	}
	return f.replies[i].records, f.replies[i].err
}

func rec(keys []string, values ...any) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func node(id int64, elementID string, labels []string, props map[string]any) dbtype.Node {
	return dbtype.Node{Id: id, ElementId: elementID, Labels: labels, Props: props}
}

func hasModule(id int64, elementID, start, end string) dbtype.Relationship {
	return dbtype.Relationship{Id: id, ElementId: elementID, StartElementId: start, EndElementId: end, Type: "HAS_MODULE"}
}
