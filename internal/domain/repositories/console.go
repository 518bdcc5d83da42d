package repositories

// Console is the user-facing terminal: table, prompts and status messages.
type Console interface {
	// Println writes one line of output.
	Println(line string)

	// ReadLine shows prompt and returns the next input line, without the line
	// terminator. End of input yields an empty line.
	ReadLine(prompt string) (string, error)
}
