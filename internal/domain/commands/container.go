package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewSelector); err != nil {
		return err
	}
	if err := container.Provide(NewSelectCommand); err != nil {
		return err
	}
	if err := container.Provide(NewExportCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *SelectCommand) Select {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ExportCommand) Export {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
