package internal

import (
	"github.com/rios0rios0/upgradeselect/internal/infrastructure/controllers"
)

// AppInternal holds every controller exposed as a subcommand.
type AppInternal struct {
	controllers []controllers.FlagController
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(list *[]controllers.FlagController) *AppInternal {
	return &AppInternal{controllers: *list}
}

// GetControllers returns the registered controllers.
func (it *AppInternal) GetControllers() []controllers.FlagController {
	return it.controllers
}
