package normalization

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/yungbote/learnpath-backend/internal/domain"
)

const (
	untitled   = "Untitled"
	notApplied = "N/A"
)

// Node is a store-agnostic view of a graph node.
type Node struct {
	ElementID  string
	InternalID int64
	Labels     []string
	Props      map[string]any
}

func (n Node) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Normalizer projects raw nodes into canonical DTOs using one KeyTable.
type Normalizer struct {
	keys *KeyTable
}

func New(keys *KeyTable) *Normalizer {
	if keys == nil {
		keys = DefaultKeys()
	}
	return &Normalizer{keys: keys}
}

// KindOf picks the key set for a node from its labels.
func KindOf(n Node) Kind {
	switch {
	case n.HasLabel("Qualification"):
		return KindQualification
	case n.HasLabel("SkillIndiaCourse"):
		return KindCourse
	default:
		return KindModule
	}
}

func first(props map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := props[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func firstText(props map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		if s, ok := Text(props[k]); ok {
			return s, true
		}
	}
	return "", false
}

func firstInt(props map[string]any, keys []string) (int64, bool) {
	for _, k := range keys {
		if i, ok := Int64(props[k]); ok {
			return i, true
		}
	}
	return 0, false
}

func textOr(props map[string]any, keys []string, def string) string {
	if s, ok := firstText(props, keys); ok {
		return s
	}
	return def
}

// NodeID resolves the public identifier: id property, then element id, then the
// internal identity.
func (n *Normalizer) NodeID(node Node) string {
	if s, ok := firstText(node.Props, n.keys.For(KindOf(node)).ID); ok {
		return s
	}
	return StoreID(node)
}

// StoreID is the store-native key: element id, falling back to the internal identity.
func StoreID(node Node) string {
	if node.ElementID != "" {
		return node.ElementID
	}
	return strconv.FormatInt(node.InternalID, 10)
}

func (n *Normalizer) Title(node Node) string {
	return textOr(node.Props, n.keys.For(KindOf(node)).Title, untitled)
}

// Duration applies formatted string, then whole hours from minutes, then total hours,
// then the legacy free-text duration.
func Duration(props map[string]any, f Fields) string {
	if s, ok := firstText(props, f.DurationFormatted); ok {
		return s
	}
	if v, ok := first(props, f.DurationMinutes); ok {
		if m, ok := Float64(v); ok {
			return fmt.Sprintf("%d hours", int64(m)/60)
		}
	}
	if s, ok := firstText(props, f.TotalHours); ok {
		return s + " hours"
	}
	if s, ok := firstText(props, f.DurationText); ok {
		return s
	}
	return notApplied
}

func tags(props map[string]any, f Fields) []string {
	if v, ok := first(props, f.Tags); ok {
		if out, ok := Strings(v); ok {
			return out
		}
	}
	return []string{}
}

// Pathway maps a Qualification node. rank is the RECOMMENDED_FOR rank or nil.
func (n *Normalizer) Pathway(node Node, rank any) domain.Pathway {
	f := n.keys.For(KindQualification)
	p := node.Props
	level, _ := firstInt(p, f.Level)

	out := domain.Pathway{
		ID:          n.NodeID(node),
		Title:       textOr(p, f.Title, untitled),
		NqrCode:     textOr(p, f.Code, ""),
		Description: textOr(p, f.Description, ""),
		Duration:    Duration(p, f),
		NsqfLevel:   level,
		Sector:      textOr(p, f.Sector, "General"),
		ValidTill:   textOr(p, f.ValidTill, notApplied),
		Tags:        tags(p, f),
	}
	if rank != nil {
		if r, ok := Int64(rank); ok {
			out.SkillDemand = "Rank " + strconv.FormatInt(r, 10)
		} else {
			out.SkillDemand = fmt.Sprintf("Rank %v", rank)
		}
	} else if s, ok := firstText(p, f.SkillDemand); ok {
		out.SkillDemand = s
	}
	return out
}

// DisplayLevel renders a level for free-text display fields.
func DisplayLevel(props map[string]any, f Fields) string {
	if i, ok := firstInt(props, f.Level); ok {
		return strconv.FormatInt(i, 10)
	}
	return notApplied
}

// Course maps a SkillIndiaCourse node for list and similarity views.
func (n *Normalizer) Course(node Node) domain.Course {
	f := n.keys.For(KindCourse)
	p := node.Props
	return domain.Course{
		ID:          n.NodeID(node),
		Title:       textOr(p, f.Title, untitled),
		Provider:    textOr(p, f.Provider, notApplied),
		Duration:    Duration(p, f),
		Mode:        textOr(p, f.Mode, notApplied),
		NsqfLevel:   DisplayLevel(p, f),
		Description: textOr(p, f.Description, ""),
		Link:        textOr(p, f.Link, ""),
		Tags:        tags(p, f),
	}
}

// Detail maps any node for the module/course detail view: the raw property bag with
// canonical fields applied on top.
func (n *Normalizer) Detail(node Node) domain.Detail {
	kind := KindOf(node)
	f := n.keys.For(kind)
	p := node.Props

	canonical := map[string]any{
		"id":          n.NodeID(node),
		"elementId":   StoreID(node),
		"kind":        string(kind),
		"title":       textOr(p, f.Title, untitled),
		"code":        textOr(p, f.Code, ""),
		"description": textOr(p, f.Description, ""),
		"duration":    Duration(p, f),
		"nsqfLevel":   DisplayLevel(p, f),
		"sector":      textOr(p, f.Sector, "General"),
		"tags":        tags(p, f),
	}
	if len(f.Credits) > 0 {
		credits, _ := firstInt(p, f.Credits)
		canonical["credits"] = credits
	}
	if len(f.Mandatory) > 0 {
		mandatory := false
		for _, k := range f.Mandatory {
			if b, ok := Bool(p[k]); ok {
				mandatory = b
				break
			}
		}
		canonical["mandatory"] = mandatory
	}
	if len(f.Provider) > 0 {
		canonical["provider"] = textOr(p, f.Provider, notApplied)
	}
	if len(f.Mode) > 0 {
		canonical["mode"] = textOr(p, f.Mode, notApplied)
	}
	if len(f.Link) > 0 {
		canonical["link"] = textOr(p, f.Link, "")
	}
	return domain.Detail(MergeBeneath(p, canonical))
}

// GraphNode builds one visualization node keyed by the store id.
func (n *Normalizer) GraphNode(node Node, typ domain.NodeType) domain.GraphNode {
	id := StoreID(node)
	prefix := "/modules/"
	if typ == domain.NodeTypeRoot {
		prefix = "/pathways/"
	}
	return domain.GraphNode(MergeBeneath(node.Props, map[string]any{
		"id":    id,
		"label": n.Title(node),
		"type":  string(typ),
		"link":  prefix + url.PathEscape(id),
	}))
}

// MergeBeneath copies raw and then applies canonical over it, so canonical values win
// whatever keys raw carries. Neither input is modified.
func MergeBeneath(raw, canonical map[string]any) map[string]any {
	out := make(map[string]any, len(raw)+len(canonical))
	for k, v := range raw {
		out[k] = v
	}
	for k, v := range canonical {
		out[k] = v
	}
	return out
}
