package domain

// Edge kinds of the family tree.
const (
	EdgeCross    = "cross"
	EdgeMutation = "mutation"
)

// TreeNode is one variety (or an ancestor missing from the dataset) in the family tree.
// Slug is empty when InDataset is false.
type TreeNode struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Slug      string `json:"slug,omitempty"`
	Color     string `json:"color,omitempty"`
	InDataset bool   `json:"in_dataset"`
}

// TreeEdge links a parent (Source) to its offspring (Target).
type TreeEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// TreeData is the whole family-tree graph. Every edge references node IDs
// present in Nodes.
type TreeData struct {
	Nodes []TreeNode `json:"nodes"`
	Edges []TreeEdge `json:"edges"`
}
