package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-gag/grapegeek-sub001/internal/service"
)

func identity(key string) string { return key }

func TestCatalog_Charts(t *testing.T) {
	svc, _ := seedCatalog(t)

	charts, err := svc.Charts(context.Background(), identity)
	require.NoError(t, err)

	require.Len(t, charts, 5)
	byID := make(map[string]service.Chart, len(charts))
	for _, c := range charts {
		byID[c.ID] = c
		require.Len(t, c.Config.Data.Datasets, 1, c.ID)
		assert.Len(t, c.Config.Data.Datasets[0].Data, len(c.Config.Data.Labels), c.ID)
	}

	top := byID["top-varieties"]
	assert.Equal(t, "bar", top.Config.Type)
	assert.Equal(t, "y", top.Config.Options["indexAxis"])
	assert.LessOrEqual(t, len(top.Config.Data.Labels), 10)
	assert.Equal(t, "Frontenac Gris", top.Config.Data.Labels[0])
	assert.Equal(t, 3, top.Config.Data.Datasets[0].Data[0])

	countries := byID["countries"]
	assert.Equal(t, "doughnut", countries.Config.Type)
	assert.Equal(t, []string{"Canada", "United States", "Norway"}, countries.Config.Data.Labels)
	assert.Equal(t, []int{5, 2, 1}, countries.Config.Data.Datasets[0].Data)

	types := byID["wine-types"]
	assert.Equal(t, "wine_type.red", types.Config.Data.Labels[0])
	assert.Equal(t, 8, types.Config.Data.Datasets[0].Data[0])
	assert.Equal(t, "stats.chart.wine_types", types.Title)
}

func TestCatalog_Charts_JSONShape(t *testing.T) {
	svc, _ := seedCatalog(t)

	charts, err := svc.Charts(context.Background(), identity)
	require.NoError(t, err)

	b, err := json.Marshal(charts[0].Config)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "bar", got["type"])
	data := got["data"].(map[string]any)
	assert.Contains(t, data, "labels")
	assert.Contains(t, data, "datasets")
}

func TestCatalog_Charts_RepoError(t *testing.T) {
	vr, wr := failingRepos()
	svc := service.NewCatalog(vr, wr, service.MapConfig{})

	_, err := svc.Charts(context.Background(), identity)

	assert.ErrorIs(t, err, errDB)
}
