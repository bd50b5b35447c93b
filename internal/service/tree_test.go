package service_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/service"
)

func TestCatalog_TreeData_EdgesReferenceNodes(t *testing.T) {
	svc, ds := seedCatalog(t)

	td, err := svc.TreeData(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool, len(td.Nodes))
	inDataset := 0
	for _, n := range td.Nodes {
		assert.False(t, ids[n.ID], "duplicate node %q", n.ID)
		ids[n.ID] = true
		if n.InDataset {
			inDataset++
		}
	}
	assert.Equal(t, len(ds.Varieties), inDataset)

	wantEdges := 0
	for _, v := range ds.Varieties {
		wantEdges += len(v.ParentCrosses)
	}
	require.Len(t, td.Edges, wantEdges)
	for _, e := range td.Edges {
		assert.True(t, ids[e.Source], "edge source %q has no node", e.Source)
		assert.True(t, ids[e.Target], "edge target %q has no node", e.Target)
	}
}

func TestCatalog_TreeData_MutationEdge(t *testing.T) {
	svc, _ := seedCatalog(t)

	td, err := svc.TreeData(context.Background())
	require.NoError(t, err)

	assert.Contains(t, td.Edges, domain.TreeEdge{Source: "frontenac", Target: "frontenac-gris", Kind: domain.EdgeMutation})
	assert.Contains(t, td.Edges, domain.TreeEdge{Source: "frontenac-gris", Target: "frontenac-blanc", Kind: domain.EdgeMutation})
}

func TestCatalog_TreeData_SharedPlaceholder(t *testing.T) {
	vs := []domain.Variety{
		{Name: "Child A", Slug: "child-a", ParentCrosses: []string{"Rayon d'Or", "Alpha"}},
		{Name: "Child B", Slug: "child-b", ParentCrosses: []string{"rayon d'or", "Child A"}},
	}
	vr := &mockVarietyRepo{list: func(context.Context) ([]domain.Variety, error) { return vs, nil }}
	svc := service.NewCatalog(vr, &mockWinegrowerRepo{}, service.MapConfig{})

	td, err := svc.TreeData(context.Background())
	require.NoError(t, err)

	want := domain.TreeData{
		Nodes: []domain.TreeNode{
			{ID: "child-a", Label: "Child A", Slug: "child-a", InDataset: true},
			{ID: "child-b", Label: "Child B", Slug: "child-b", InDataset: true},
			{ID: "ext:alpha", Label: "Alpha"},
			{ID: "ext:rayon-d-or", Label: "Rayon d'Or"},
		},
		Edges: []domain.TreeEdge{
			{Source: "ext:rayon-d-or", Target: "child-a", Kind: domain.EdgeCross},
			{Source: "ext:alpha", Target: "child-a", Kind: domain.EdgeCross},
			{Source: "ext:rayon-d-or", Target: "child-b", Kind: domain.EdgeCross},
			{Source: "child-a", Target: "child-b", Kind: domain.EdgeCross},
		},
	}
	if diff := cmp.Diff(want, td); diff != "" {
		t.Errorf("TreeData mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_TreeData_RepoError(t *testing.T) {
	vr, wr := failingRepos()
	svc := service.NewCatalog(vr, wr, service.MapConfig{})

	_, err := svc.TreeData(context.Background())

	assert.ErrorIs(t, err, errDB)
}
