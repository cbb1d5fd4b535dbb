package domain

// Concept is an aggregated entity extracted across a user's analyses.
// Derived data: frequency counts how many analyses mention it.
type Concept struct {
	ID          int64
	UserID      string
	Name        string
	Type        string
	Frequency   int
	Description string
}

// ConceptRelationship links two concepts observed together in one analysis
type ConceptRelationship struct {
	ID                   int64
	UserID               string
	FromConceptID        int64
	ToConceptID          int64
	Type                 string
	Strength             float64
	OriginatingContentID int64
}

// relationship type labels
const (
	RelationRequires = "REQUIRES"
	RelationEnables  = "ENABLES"
	RelationSupports = "SUPPORTS"
	RelationRelated  = "RELATED"
)

// ConceptNode is a rendered concept map node
type ConceptNode struct {
	ID          int64   `json:"id"`
	Label       string  `json:"label"`
	Type        string  `json:"type"`
	Frequency   int     `json:"frequency"`
	Density     float64 `json:"density"`
	Description string  `json:"description,omitempty"`
}

// ConceptEdge is a rendered concept map edge
type ConceptEdge struct {
	ID     int64   `json:"id"`
	Source int64   `json:"source"`
	Target int64   `json:"target"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

// ConceptMap is the concept graph returned to callers
type ConceptMap struct {
	Nodes []ConceptNode `json:"nodes"`
	Edges []ConceptEdge `json:"edges"`
}
