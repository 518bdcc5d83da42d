//go:build unit

package terminal_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradeselect/internal/infrastructure/repositories/terminal"
)

func TestStdConsole(t *testing.T) {
	t.Parallel()

	t.Run("should print the prompt and read one line", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		console := terminal.NewConsole(strings.NewReader("1 2\r\nq\n"), &out)

		// when
		first, firstErr := console.ReadLine("Choice: ")
		second, secondErr := console.ReadLine("")

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, "1 2", first)
		assert.Equal(t, "q", second)
		assert.Equal(t, "Choice: ", out.String())
	})

	t.Run("should return the last line without terminator", func(t *testing.T) {
		t.Parallel()

		// given
		console := terminal.NewConsole(strings.NewReader("all"), &bytes.Buffer{})

		// when
		line, err := console.ReadLine("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "all", line)
	})

	t.Run("should return an empty line at end of input", func(t *testing.T) {
		t.Parallel()

		// given
		console := terminal.NewConsole(strings.NewReader(""), &bytes.Buffer{})

		// when
		line, err := console.ReadLine("Choice: ")

		// then
		require.NoError(t, err)
		assert.Empty(t, line)
	})

	t.Run("should write lines with a newline", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		console := terminal.NewConsole(strings.NewReader(""), &out)

		// when
		console.Println("Available upgrades:")
		console.Println("")

		// then
		assert.Equal(t, "Available upgrades:\n\n", out.String())
	})
}
