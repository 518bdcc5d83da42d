package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// StreamSelectionOutput implements repositories.SelectionOutput on a stream.
type StreamSelectionOutput struct {
	writer io.Writer
}

var _ repositories.SelectionOutput = (*StreamSelectionOutput)(nil)

// NewStdSelectionOutput writes the selection to the process standard output.
func NewStdSelectionOutput() repositories.SelectionOutput {
	return NewSelectionOutput(os.Stdout)
}

// NewSelectionOutput writes the selection to out.
func NewSelectionOutput(out io.Writer) *StreamSelectionOutput {
	return &StreamSelectionOutput{writer: out}
}

func (o *StreamSelectionOutput) Write(rendered string) error {
	if _, err := fmt.Fprintln(o.writer, rendered); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}
	return nil
}
