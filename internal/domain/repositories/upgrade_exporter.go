package repositories

import "github.com/rios0rios0/upgradeselect/internal/domain/entities"

// UpgradeExporter persists the undecorated upgrade table.
type UpgradeExporter interface {
	// Export writes table, replacing any previous export.
	Export(table entities.UpgradeTable) error

	// Location returns where the export is written.
	Location() string
}
