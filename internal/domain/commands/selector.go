package commands

import (
	"fmt"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

const (
	choiceAll   = "all"
	choiceQuit  = "q"
	choiceExit  = "x"
	choicePrint = "p"

	instructions = `Please choose which packages should be upgraded. ` +
		`Choices: "all", "q" (quit), "x" (exit), "p" (print) or "1 2 3"`
)

// Selector turns the upgradeable packages into the user's upgrade selection,
// either from the "-p" option or by prompting on the console.
type Selector struct {
	console  repositories.Console
	renderer repositories.TableRenderer
	exporter repositories.UpgradeExporter
}

// NewSelector creates a Selector writing to console.
func NewSelector(
	console repositories.Console,
	renderer repositories.TableRenderer,
	exporter repositories.UpgradeExporter,
) *Selector {
	return &Selector{
		console:  console,
		renderer: renderer,
		exporter: exporter,
	}
}

// Select indexes the upgradeable packages and collects the selection. Every
// abort path returns an error matching entities.ErrUserCancelled.
func (it *Selector) Select(
	packages *entities.PackageMap,
	opts entities.SelectOptions,
	palette repositories.Palette,
) (*entities.Selection, error) {
	candidates := entities.NewIndexedPackages(packages)
	selection := entities.NewSelection()

	if candidates.IsEmpty() {
		it.console.Println(palette.Success("All packages are up-to-date."))
		return nil, entities.NewCancelledError("all packages are up-to-date")
	}

	if opts.IsNonInteractive() {
		selectRequested(candidates, selection, opts)
		logger.Debugf("Selected %d package(s) from the -p option", selection.Len())
		return selection, nil
	}

	if err := it.askForPackages(candidates, selection, palette); err != nil {
		return nil, err
	}

	return selection, nil
}

// selectRequested applies the "-p" option. Names that match no candidate are
// ignored.
func selectRequested(
	candidates *entities.IndexedPackages,
	selection *entities.Selection,
	opts entities.SelectOptions,
) {
	if opts.RequestsAll() {
		selection.Pick(candidates, candidates.Indices())
		return
	}

	for _, index := range candidates.Indices() {
		record, _ := candidates.Get(index)
		for _, requested := range opts.Requested {
			if opts.Matches(requested, record) {
				selection.Pick(candidates, []int{index})
			}
		}
	}
}

// askForPackages shows the upgrade table and interprets one line of input.
func (it *Selector) askForPackages(
	candidates *entities.IndexedPackages,
	selection *entities.Selection,
	palette repositories.Palette,
) error {
	table := entities.NewUpgradeTable(candidates)

	it.console.Println("")
	it.console.Println(palette.Success("Available upgrades:"))
	it.console.Println(it.renderer.Render(decorate(table, palette)))
	it.console.Println("")
	it.console.Println(instructions)

	line, err := it.console.ReadLine(palette.Success("Choice:") + " ")
	if err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}
	choice := strings.TrimSpace(line)

	switch choice {
	case "":
		it.console.Println(palette.Failure("No choice selected."))
		return entities.NewCancelledError("no choice selected")
	case choiceQuit:
		it.console.Println(palette.Failure("Quit."))
		return entities.NewCancelledError("quit")
	case choiceExit:
		it.console.Println(palette.Failure("Exit."))
		return entities.NewCancelledError("exit")
	case choicePrint:
		if exportErr := it.exporter.Export(table); exportErr != nil {
			return fmt.Errorf("failed to export available upgrades: %w", exportErr)
		}
		it.console.Println(palette.Success("Print. CSV file was created."))
		logger.Infof("Available upgrades written to %s", it.exporter.Location())
		return entities.NewCancelledError("print")
	case choiceAll:
		selection.Pick(candidates, candidates.Indices())
		return nil
	}

	indices, parseErr := parseIndices(choice)
	if parseErr != nil {
		it.console.Println(palette.Failure("Invalid choice"))
		return entities.NewCancelledError("invalid choice")
	}

	if picked := selection.Pick(candidates, indices); len(picked) == 0 {
		it.console.Println(palette.Failure("No valid choice selected."))
		return entities.NewCancelledError("no valid choice")
	}

	return nil
}

// parseIndices parses every whitespace-separated token as an index. A single
// malformed token rejects the whole choice.
func parseIndices(choice string) ([]int, error) {
	tokens := strings.Fields(choice)
	indices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		index, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", token, err)
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// decorate styles the header, index and name cells of table for the console.
func decorate(table entities.UpgradeTable, palette repositories.Palette) ([]string, [][]string) {
	headers := make([]string, len(table.Headers))
	for i, header := range table.Headers {
		headers[i] = palette.Header(header)
	}

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		decorated := make([]string, len(row))
		copy(decorated, row)
		decorated[0] = palette.Index(row[0])
		decorated[1] = palette.Name(row[1])
		rows[i] = decorated
	}

	return headers, rows
}
