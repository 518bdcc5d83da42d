package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgradeselect/internal/domain/commands"
	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
)

// SelectController handles the "select" subcommand.
type SelectController struct {
	command commands.Select
}

// NewSelectController creates a new SelectController.
func NewSelectController(command commands.Select) *SelectController {
	return &SelectController{command: command}
}

// GetBind returns the Cobra command metadata for the select controller.
func (it *SelectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "select",
		Short: "Choose which outdated packages to upgrade",
		Long: `Show the packages with an upgrade available and ask which of them
should be upgraded. The selection is printed as requirements
("name==version"), JSON or YAML for the package manager.

Use -p to select packages without prompting:
  upgradeselect select -f upgrades.yaml -p all
  upgradeselect select -f upgrades.yaml -p requests -p Django`,
	}
}

// Execute runs the selection. A cancellation is logged and is not an error.
func (it *SelectController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	requested, err := cmd.Flags().GetStringSlice("packages")
	if err != nil {
		return fmt.Errorf("failed to read --packages: %w", err)
	}

	selected, err := it.command.Execute(ctx, commands.SelectCommandOptions{
		PackagesFile: settings.PackagesFile,
		Requested:    requested,
		Output:       settings.Output,
		NoColor:      settings.NoColor,
	})
	if entities.IsCancelled(err) {
		logger.Infof("Upgrade cancelled: %v", err)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Debugf("Selected %d package(s) for upgrade", len(selected))
	return nil
}

// AddFlags adds the select-specific flags to the given Cobra command.
func (it *SelectController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Packages file written by the version resolver (yaml, json or toml)")
	cmd.Flags().StringSliceP("packages", "p", nil, `Packages to upgrade without prompting, or "all". `+
		`Comma-separated and repeatable (-p a,b -p c), so names cannot contain commas`)
	cmd.Flags().StringP("output", "o", commands.OutputText, "Output format: text, json or yaml")
	cmd.Flags().Bool("no-color", false, "Disable coloured output")
}
