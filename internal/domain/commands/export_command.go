package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// Export is the interface for the export command.
type Export interface {
	Execute(ctx context.Context, opts ExportOptions) error
}

// ExportOptions holds runtime options for the export command.
type ExportOptions struct {
	PackagesFile string
}

// ExportCommand writes the upgrade table to the CSV export without prompting.
type ExportCommand struct {
	packages repositories.PackageRepository
	exporter repositories.UpgradeExporter
}

// NewExportCommand creates a new ExportCommand.
func NewExportCommand(
	packages repositories.PackageRepository,
	exporter repositories.UpgradeExporter,
) *ExportCommand {
	return &ExportCommand{packages: packages, exporter: exporter}
}

// Execute loads the packages file and exports its upgradeable packages.
func (it *ExportCommand) Execute(ctx context.Context, opts ExportOptions) error {
	if opts.PackagesFile == "" {
		return errors.New("a packages file is required")
	}

	packages, err := it.packages.Load(ctx, opts.PackagesFile)
	if err != nil {
		return err
	}

	candidates := entities.NewIndexedPackages(packages)
	if candidates.IsEmpty() {
		logger.Info("All packages are up-to-date.")
		return nil
	}

	if exportErr := it.exporter.Export(entities.NewUpgradeTable(candidates)); exportErr != nil {
		return fmt.Errorf("failed to export available upgrades: %w", exportErr)
	}
	logger.Infof("Exported %d available upgrade(s) to %s", candidates.Len(), it.exporter.Location())

	return nil
}
