package controllers

import (
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewSelectController); err != nil {
		return err
	}
	if err := container.Provide(NewExportController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// FlagController is a controller with subcommand-specific flags.
type FlagController interface {
	entities.Controller
	AddFlags(cmd *cobra.Command)
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	selectController *SelectController,
	exportController *ExportController,
) *[]FlagController {
	return &[]FlagController{
		selectController,
		exportController,
	}
}
