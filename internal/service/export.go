package service

import (
	"context"
	"fmt"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// ExportRows returns one ExportRow per wine across all winegrowers, in
// winegrower order. Growers with no wines contribute one row with empty
// wine fields.
func (c *Catalog) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	growers, err := c.growers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Catalog.ExportRows: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(growers))
	for _, w := range growers {
		base := domain.ExportRow{
			WinegrowerID:  w.ID.String(),
			BusinessName:  w.BusinessName,
			City:          w.City,
			StateProvince: w.StateProvince,
			Country:       w.Country,
			WineVarieties: []string{},
		}
		if len(w.Wines) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, wine := range w.Wines {
			row := base
			row.WineName = wine.Name
			row.WineType = wine.Type
			row.Vintage = wine.Vintage
			row.WineVarieties = append([]string{}, wine.Varieties...)
			rows = append(rows, row)
		}
	}
	return rows, nil
}
