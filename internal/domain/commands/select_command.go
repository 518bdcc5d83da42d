package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// Output formats for the selected packages.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Select is the interface for the select command.
type Select interface {
	Execute(ctx context.Context, opts SelectCommandOptions) ([]entities.PackageRecord, error)
}

// SelectCommandOptions holds runtime options for the select command.
type SelectCommandOptions struct {
	PackagesFile string
	Requested    []string
	Output       string
	NoColor      bool
}

// SelectCommand loads the packages file, runs the selector and writes the
// selection for the package manager to output, apart from the console.
type SelectCommand struct {
	packages repositories.PackageRepository
	selector *Selector
	output   repositories.SelectionOutput
	palette  repositories.Palette
}

// NewSelectCommand creates a new SelectCommand. palette is used unless the
// caller disables colours.
func NewSelectCommand(
	packages repositories.PackageRepository,
	selector *Selector,
	output repositories.SelectionOutput,
	palette repositories.Palette,
) *SelectCommand {
	return &SelectCommand{
		packages: packages,
		selector: selector,
		output:   output,
		palette:  palette,
	}
}

// Execute returns the selected packages, or an error matching
// entities.ErrUserCancelled when the user aborted.
func (it *SelectCommand) Execute(
	ctx context.Context,
	opts SelectCommandOptions,
) ([]entities.PackageRecord, error) {
	if opts.PackagesFile == "" {
		return nil, errors.New("a packages file is required")
	}

	output := opts.Output
	if output == "" {
		output = OutputText
	}
	if !IsValidOutput(output) {
		return nil, fmt.Errorf("unsupported output format %q", output)
	}

	packages, err := it.packages.Load(ctx, opts.PackagesFile)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %d package(s) from %s", packages.Len(), opts.PackagesFile)

	palette := it.palette
	if opts.NoColor {
		palette = repositories.PlainPalette{}
	}

	selection, err := it.selector.Select(
		packages,
		entities.SelectOptions{Requested: opts.Requested},
		palette,
	)
	if err != nil {
		return nil, err
	}

	selected := selection.Packages()
	if len(selected) == 0 {
		logger.Warn("None of the requested packages has an upgrade available")
		return selected, nil
	}

	rendered, err := formatSelection(selected, output)
	if err != nil {
		return nil, err
	}
	if writeErr := it.output.Write(rendered); writeErr != nil {
		return nil, writeErr
	}

	return selected, nil
}

// IsValidOutput reports whether format is a supported output format.
func IsValidOutput(format string) bool {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

func formatSelection(selected []entities.PackageRecord, output string) (string, error) {
	switch output {
	case OutputJSON:
		data, err := json.MarshalIndent(selected, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode selection as JSON: %w", err)
		}
		return string(data), nil
	case OutputYAML:
		data, err := yaml.Marshal(selected)
		if err != nil {
			return "", fmt.Errorf("failed to encode selection as YAML: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		lines := make([]string, 0, len(selected))
		for _, record := range selected {
			lines = append(lines, record.Requirement())
		}
		return strings.Join(lines, "\n"), nil
	}
}
