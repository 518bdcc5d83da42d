package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// StdConsole implements repositories.Console on line-oriented streams.
type StdConsole struct {
	reader *bufio.Reader
	writer io.Writer
}

var _ repositories.Console = (*StdConsole)(nil)

// NewStdConsole creates a console reading standard input and writing to
// standard error, leaving standard output to the selection.
func NewStdConsole() repositories.Console {
	return NewConsole(os.Stdin, os.Stderr)
}

// NewConsole creates a console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *StdConsole {
	return &StdConsole{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func (c *StdConsole) Println(line string) {
	_, _ = fmt.Fprintln(c.writer, line)
}

func (c *StdConsole) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprint(c.writer, prompt)
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read from console: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
