package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/service"
)

func TestCatalog_ExportRows_OneRowPerWine(t *testing.T) {
	svc, ds := seedCatalog(t)

	rows, err := svc.ExportRows(context.Background())
	require.NoError(t, err)

	want := 0
	for _, w := range ds.Winegrowers {
		want += max(len(w.Wines), 1)
	}
	assert.Len(t, rows, want)

	first := rows[0]
	assert.Equal(t, "Annapolis Ridge Winery", first.BusinessName)
	assert.Equal(t, "Ridge Traditional Method", first.WineName)
	assert.Equal(t, "sparkling", first.WineType)
	assert.Equal(t, 2019, first.Vintage)
	assert.Equal(t, []string{"L'Acadie Blanc"}, first.WineVarieties)
}

func TestCatalog_ExportRows_GrowerWithoutWines(t *testing.T) {
	id := uuid.New()
	wr := &mockWinegrowerRepo{
		list: func(context.Context) ([]domain.Winegrower, error) {
			return []domain.Winegrower{{ID: id, BusinessName: "Young Vines", StateProvince: "Vermont", Country: "United States"}}, nil
		},
	}
	svc := service.NewCatalog(&mockVarietyRepo{}, wr, service.MapConfig{})

	rows, err := svc.ExportRows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id.String(), rows[0].WinegrowerID)
	assert.Empty(t, rows[0].WineName)
	assert.NotNil(t, rows[0].WineVarieties)
}

func TestCatalog_ExportRows_RepoError(t *testing.T) {
	vr, wr := failingRepos()
	svc := service.NewCatalog(vr, wr, service.MapConfig{})

	_, err := svc.ExportRows(context.Background())

	assert.ErrorIs(t, err, errDB)
}
