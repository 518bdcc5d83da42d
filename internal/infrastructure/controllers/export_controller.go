package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgradeselect/internal/domain/commands"
	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
)

// ExportController handles the "export" subcommand.
type ExportController struct {
	command commands.Export
}

// NewExportController creates a new ExportController.
func NewExportController(command commands.Export) *ExportController {
	return &ExportController{command: command}
}

// GetBind returns the Cobra command metadata for the export controller.
func (it *ExportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "export",
		Short: "Write the available upgrades to AVAILABLE_UPGRADES.csv",
		Long: `Write the table of available upgrades to AVAILABLE_UPGRADES.csv in the
current directory without prompting. This is the same file the "p"
choice of the select command produces.`,
	}
}

// Execute runs the export.
func (it *ExportController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(context.Background(), commands.ExportOptions{
		PackagesFile: settings.PackagesFile,
	})
}

// AddFlags adds the export-specific flags to the given Cobra command.
func (it *ExportController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Packages file written by the version resolver (yaml, json or toml)")
}
