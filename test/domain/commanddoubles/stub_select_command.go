//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgradeselect/internal/domain/commands"
	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
)

// StubSelectCommand is a stub implementation of commands.Select.
type StubSelectCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Selected         []entities.PackageRecord
	LastOpts         commands.SelectCommandOptions
}

var _ commands.Select = (*StubSelectCommand)(nil)

func (s *StubSelectCommand) Execute(
	_ context.Context,
	opts commands.SelectCommandOptions,
) ([]entities.PackageRecord, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Selected, s.ExecuteErr
}
