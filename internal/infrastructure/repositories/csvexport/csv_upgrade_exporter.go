package csvexport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

const (
	// DefaultFileName is the export written to the working directory.
	DefaultFileName = "AVAILABLE_UPGRADES.csv"
	exportFileMode  = 0o644
)

// UpgradeExporter implements repositories.UpgradeExporter as a CSV file.
// Fields are quoted only when they contain a separator, quote or newline.
type UpgradeExporter struct {
	path string
}

var _ repositories.UpgradeExporter = (*UpgradeExporter)(nil)

// NewDefaultUpgradeExporter writes to DefaultFileName in the working directory.
func NewDefaultUpgradeExporter() repositories.UpgradeExporter {
	return NewUpgradeExporter(DefaultFileName)
}

// NewUpgradeExporter writes to path.
func NewUpgradeExporter(path string) *UpgradeExporter {
	return &UpgradeExporter{path: path}
}

func (e *UpgradeExporter) Location() string { return e.path }

// Export truncates the file and writes the header and every row.
func (e *UpgradeExporter) Export(table entities.UpgradeTable) (err error) {
	file, err := os.OpenFile(e.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, exportFileMode)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", e.path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %q: %w", e.path, closeErr))
		}
	}()

	writer := csv.NewWriter(file)
	writer.UseCRLF = false // rows end in LF on every platform
	if writeErr := writer.WriteAll(table.Records()); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", e.path, writeErr)
	}

	return nil
}
