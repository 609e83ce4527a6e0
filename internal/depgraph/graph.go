package depgraph

// Node is one graphable source file. The integer id is assigned once at
// collection time, in walk order, and is the node's identity for edges.
type Node struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Type  string `json:"type"`
	Group string `json:"group"`
}

// Edge is a resolved reference from one file to another. The Import field
// keeps the original token as written in the source file.
type Edge struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Import string `json:"import"`
}

// Graph is the static reference graph for one repository snapshot.
// Every edge endpoint is an id present in Nodes.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NewGraph creates an empty graph. Both slices are initialized so a
// degenerate graph still marshals as {"nodes":[],"edges":[]}.
func NewGraph() *Graph {
	return &Graph{
		Nodes: []Node{},
		Edges: []Edge{},
	}
}
