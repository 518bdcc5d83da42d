//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// StubConsole implements repositories.Console with scripted input and
// recorded output.
type StubConsole struct {
	// --- ReadLine ---
	Inputs  []string // answered in order; an exhausted script returns ""
	ReadErr error
	Prompts []string

	// --- Println ---
	Lines []string
}

var _ repositories.Console = (*StubConsole)(nil)

func (c *StubConsole) Println(line string) {
	c.Lines = append(c.Lines, line)
}

func (c *StubConsole) ReadLine(prompt string) (string, error) {
	c.Prompts = append(c.Prompts, prompt)
	if c.ReadErr != nil {
		return "", c.ReadErr
	}
	if len(c.Inputs) == 0 {
		return "", nil
	}
	line := c.Inputs[0]
	c.Inputs = c.Inputs[1:]
	return line, nil
}

// Output returns every printed line joined by newlines.
func (c *StubConsole) Output() string {
	return strings.Join(c.Lines, "\n")
}
