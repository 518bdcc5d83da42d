package repositories

// SelectionOutput receives the machine-readable selection for the package
// manager. It never carries the interactive table or prompts.
type SelectionOutput interface {
	Write(rendered string) error
}
