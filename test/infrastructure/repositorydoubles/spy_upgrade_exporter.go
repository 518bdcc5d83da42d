//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// SpyUpgradeExporter implements repositories.UpgradeExporter as a configurable spy.
type SpyUpgradeExporter struct {
	Path      string
	ExportErr error
	Exported  []entities.UpgradeTable
}

var _ repositories.UpgradeExporter = (*SpyUpgradeExporter)(nil)

func (e *SpyUpgradeExporter) Export(table entities.UpgradeTable) error {
	e.Exported = append(e.Exported, table)
	return e.ExportErr
}

func (e *SpyUpgradeExporter) Location() string {
	if e.Path == "" {
		return "AVAILABLE_UPGRADES.csv"
	}
	return e.Path
}
