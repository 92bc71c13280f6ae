package pathway

// Pathway is a Qualification projected into the learner-facing shape.
type Pathway struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	NqrCode     string   `json:"nqrCode"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	NsqfLevel   int64    `json:"nsqfLevel"`
	Sector      string   `json:"sector"`
	ValidTill   string   `json:"validTill"`
	Tags        []string `json:"tags"`
	SkillDemand string   `json:"skillDemand,omitempty"`
}

// Course is an external-catalog course (SkillIndiaCourse) in list and similarity views.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Provider    string   `json:"provider"`
	Duration    string   `json:"duration"`
	Mode        string   `json:"mode"`
	NsqfLevel   string   `json:"nsqfLevel"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
	Score       *float64 `json:"score,omitempty"`
}

// Detail is a Module/Course detail view: canonical fields over the raw property bag.
type Detail map[string]any

type NodeType string

const (
	NodeTypeRoot   NodeType = "root"
	NodeTypeModule NodeType = "module"
)

// GraphNode is one renderable node: raw properties with id/label/type/link on top.
type GraphNode map[string]any

type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type GraphView struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

func EmptyGraph() GraphView {
	return GraphView{Nodes: []GraphNode{}, Links: []GraphLink{}}
}

type CatalogPage struct {
	Items    []Course `json:"items"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
	Total    int64    `json:"total"`
}
