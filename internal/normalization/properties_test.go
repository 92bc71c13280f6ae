package normalization

import (
	"reflect"
	"testing"

	"github.com/yungbote/learnpath-backend/internal/domain"
)

func qualification(props map[string]any) Node {
	return Node{ElementID: "4:db:1", InternalID: 1, Labels: []string{"Qualification"}, Props: props}
}

func TestPathwayNameAndTotalHours(t *testing.T) {
	n := New(nil)
	p := n.Pathway(qualification(map[string]any{"name": "Solar PV Installer", "total_hours": int64(390)}), nil)
	if p.Title != "Solar PV Installer" {
		t.Fatalf("Title: want=%q got=%q", "Solar PV Installer", p.Title)
	}
	if p.Duration != "390 hours" {
		t.Fatalf("Duration: want=%q got=%q", "390 hours", p.Duration)
	}
}

func TestPathwayDefaults(t *testing.T) {
	n := New(nil)
	p := n.Pathway(qualification(map[string]any{}), nil)
	want := domain.Pathway{
		ID:        "4:db:1",
		Title:     "Untitled",
		Duration:  "N/A",
		Sector:    "General",
		ValidTill: "N/A",
		Tags:      []string{},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("defaults: want=%+v got=%+v", want, p)
	}
}

func TestDurationPrecedence(t *testing.T) {
	f := DefaultKeys().For(KindQualification)
	cases := []struct {
		name  string
		props map[string]any
		want  string
	}{
		{"formatted wins", map[string]any{"duration_formatted": "3 months", "duration_minutes": int64(600), "total_hours": 9}, "3 months"},
		{"minutes floored", map[string]any{"duration_minutes": int64(125), "total_hours": 9}, "2 hours"},
		{"minutes composite", map[string]any{"duration_minutes": map[string]any{"low": int64(180), "high": int64(0)}}, "3 hours"},
		{"total hours float", map[string]any{"total_hours": 12.5}, "12.5 hours"},
		{"legacy text", map[string]any{"duration": "6 weeks"}, "6 weeks"},
		{"nothing", map[string]any{"sector": "Power"}, "N/A"},
		{"blank formatted skipped", map[string]any{"duration_formatted": "  ", "total_hours": int64(4)}, "4 hours"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Duration(tc.props, f); got != tc.want {
				t.Fatalf("Duration: want=%q got=%q", tc.want, got)
			}
		})
	}
}

func TestPathwayFieldSynonyms(t *testing.T) {
	n := New(nil)
	p := n.Pathway(qualification(map[string]any{
		"id":         "Q-17",
		"title":      "Field Technician",
		"name":       "ignored",
		"nos_code":   "ELE/N1",
		"nsqf_level": map[string]any{"low": int64(4), "high": int64(0)},
		"validTill":  "2027-03-31",
		"tags":       []any{"solar", "electrical"},
	}), int64(2))
	if p.ID != "Q-17" || p.Title != "Field Technician" || p.NqrCode != "ELE/N1" {
		t.Fatalf("unexpected identity fields: %+v", p)
	}
	if p.NsqfLevel != 4 || p.ValidTill != "2027-03-31" {
		t.Fatalf("unexpected level/validity: %+v", p)
	}
	if !reflect.DeepEqual(p.Tags, []string{"solar", "electrical"}) {
		t.Fatalf("Tags: got=%v", p.Tags)
	}
	if p.SkillDemand != "Rank 2" {
		t.Fatalf("SkillDemand: want=%q got=%q", "Rank 2", p.SkillDemand)
	}
}

func TestPathwaySkillDemandFallsBackWithoutRank(t *testing.T) {
	n := New(nil)
	p := n.Pathway(qualification(map[string]any{"skillDemand": "High", "tags": "not-a-list"}), nil)
	if p.SkillDemand != "High" {
		t.Fatalf("SkillDemand: want=%q got=%q", "High", p.SkillDemand)
	}
	if len(p.Tags) != 0 || p.Tags == nil {
		t.Fatalf("Tags: want empty non-nil got=%#v", p.Tags)
	}
}

func TestNodeIDFallsBackToInternalIdentity(t *testing.T) {
	n := New(nil)
	if got := n.NodeID(Node{InternalID: 99, Props: map[string]any{}}); got != "99" {
		t.Fatalf("NodeID: want=%q got=%q", "99", got)
	}
	if got := n.NodeID(Node{ElementID: "4:x:9", Props: map[string]any{"id": int64(12)}}); got != "12" {
		t.Fatalf("NodeID: want=%q got=%q", "12", got)
	}
}

func TestDetailCanonicalOverridesRaw(t *testing.T) {
	n := New(nil)
	d := n.Detail(Node{
		ElementID: "4:db:7",
		Labels:    []string{"Module"},
		Props: map[string]any{
			"name":        "Safety Basics",
			"title":       "",
			"duration":    "raw duration text",
			"credits":     int64(3),
			"module_type": "Optional",
			"nsqfLevel":   nil,
			"custom":      "kept",
		},
	})
	if d["title"] != "Safety Basics" {
		t.Fatalf("title: want=%q got=%v", "Safety Basics", d["title"])
	}
	if d["duration"] != "raw duration text" {
		t.Fatalf("duration: got=%v", d["duration"])
	}
	if d["nsqfLevel"] != "N/A" {
		t.Fatalf("nsqfLevel: want=%q got=%v", "N/A", d["nsqfLevel"])
	}
	if d["credits"] != int64(3) || d["mandatory"] != false {
		t.Fatalf("credits/mandatory: got=%v/%v", d["credits"], d["mandatory"])
	}
	if d["custom"] != "kept" {
		t.Fatalf("custom passthrough lost: %v", d["custom"])
	}
	if d["id"] != "4:db:7" || d["kind"] != "module" {
		t.Fatalf("id/kind: got=%v/%v", d["id"], d["kind"])
	}
}

func TestCourseDefaults(t *testing.T) {
	n := New(nil)
	c := n.Course(Node{ElementID: "4:db:3", Labels: []string{"SkillIndiaCourse"}, Props: map[string]any{
		"title": "Basic Welding",
		"url":   "https://example.org/c/1",
		"level": int64(3),
	}})
	if c.Provider != "N/A" || c.Mode != "N/A" || c.Duration != "N/A" {
		t.Fatalf("defaults: %+v", c)
	}
	if c.NsqfLevel != "3" || c.Link != "https://example.org/c/1" {
		t.Fatalf("level/link: %+v", c)
	}
}

func TestGraphNodeLinkAndLabel(t *testing.T) {
	n := New(nil)
	g := n.GraphNode(Node{ElementID: "4:db:1", Props: map[string]any{"title": "Q", "type": "raw", "link": "raw"}}, domain.NodeTypeRoot)
	if g["type"] != "root" || g["link"] != "/pathways/4:db:1" || g["label"] != "Q" {
		t.Fatalf("unexpected node: %v", g)
	}
}

func TestMergeBeneathLeavesInputsUntouched(t *testing.T) {
	raw := map[string]any{"title": "raw", "x": 1}
	canonical := map[string]any{"title": "canon"}
	out := MergeBeneath(raw, canonical)
	if out["title"] != "canon" || out["x"] != 1 {
		t.Fatalf("merge: %v", out)
	}
	if raw["title"] != "raw" || len(canonical) != 1 {
		t.Fatal("inputs mutated")
	}
}
