package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/slug"
)

// placeholderPrefix marks node IDs of ancestors that are not in the dataset.
// Variety slugs never contain ':' so the two ID spaces cannot collide.
const placeholderPrefix = "ext:"

// TreeData builds the family-tree graph: one node per variety, one
// placeholder node per ancestor missing from the dataset, and one edge from
// each parent to its offspring. Every edge references an existing node.
func (c *Catalog) TreeData(ctx context.Context) (domain.TreeData, error) {
	varieties, err := c.varieties.List(ctx)
	if err != nil {
		return domain.TreeData{}, fmt.Errorf("service.Catalog.TreeData: %w", err)
	}

	td := domain.TreeData{
		Nodes: make([]domain.TreeNode, 0, len(varieties)),
		Edges: []domain.TreeEdge{},
	}

	ids := make(map[string]string, len(varieties)) // folded name -> node ID
	used := make(map[string]bool, len(varieties))
	for _, v := range varieties {
		ids[slug.Fold(v.Name)] = v.Slug
		used[v.Slug] = true
		td.Nodes = append(td.Nodes, domain.TreeNode{
			ID:        v.Slug,
			Label:     v.Name,
			Slug:      v.Slug,
			Color:     v.Color,
			InDataset: true,
		})
	}

	var placeholders []domain.TreeNode
	for _, v := range varieties {
		kind := domain.EdgeCross
		if v.IsMutation() {
			kind = domain.EdgeMutation
		}
		for _, parent := range v.ParentCrosses {
			key := slug.Fold(parent)
			id, ok := ids[key]
			if !ok {
				id = uniqueID(used, placeholderPrefix+slug.Make(parent))
				ids[key] = id
				placeholders = append(placeholders, domain.TreeNode{ID: id, Label: parent})
			}
			td.Edges = append(td.Edges, domain.TreeEdge{Source: id, Target: v.Slug, Kind: kind})
		}
	}

	slices.SortFunc(placeholders, func(a, b domain.TreeNode) int {
		return cmp.Compare(slug.Fold(a.Label), slug.Fold(b.Label))
	})
	td.Nodes = append(td.Nodes, placeholders...)
	return td, nil
}

// uniqueID returns base, or base with a numeric suffix when base is taken,
// and marks the result as used.
func uniqueID(used map[string]bool, base string) string {
	id := base
	for n := 2; used[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	used[id] = true
	return id
}
