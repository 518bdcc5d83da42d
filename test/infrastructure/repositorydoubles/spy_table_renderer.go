//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// SpyTableRenderer implements repositories.TableRenderer by joining cells with
// "|" and recording what it was asked to render.
type SpyTableRenderer struct {
	Headers [][]string
	Rows    [][][]string
}

var _ repositories.TableRenderer = (*SpyTableRenderer)(nil)

func (r *SpyTableRenderer) Render(headers []string, rows [][]string) string {
	r.Headers = append(r.Headers, headers)
	r.Rows = append(r.Rows, rows)

	lines := []string{strings.Join(headers, "|")}
	for _, row := range rows {
		lines = append(lines, strings.Join(row, "|"))
	}
	return strings.Join(lines, "\n")
}
