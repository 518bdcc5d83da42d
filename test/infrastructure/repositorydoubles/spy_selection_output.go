//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// SpySelectionOutput implements repositories.SelectionOutput as a configurable spy.
type SpySelectionOutput struct {
	WriteErr error
	Written  []string
}

var _ repositories.SelectionOutput = (*SpySelectionOutput)(nil)

func (o *SpySelectionOutput) Write(rendered string) error {
	o.Written = append(o.Written, rendered)
	return o.WriteErr
}

// Output returns everything written joined by newlines.
func (o *SpySelectionOutput) Output() string {
	return strings.Join(o.Written, "\n")
}
