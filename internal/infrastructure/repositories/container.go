package repositories

import (
	csvRepo "github.com/rios0rios0/upgradeselect/internal/infrastructure/repositories/csvexport"
	fileRepo "github.com/rios0rios0/upgradeselect/internal/infrastructure/repositories/packagesfile"
	termRepo "github.com/rios0rios0/upgradeselect/internal/infrastructure/repositories/terminal"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []interface{}{
		termRepo.NewStdConsole,
		termRepo.NewStdSelectionOutput,
		termRepo.NewTableRenderer,
		termRepo.NewStdColorPalette,
		csvRepo.NewDefaultUpgradeExporter,
		fileRepo.NewDefaultDecoderRegistry,
		fileRepo.NewFilePackageRepository,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}
