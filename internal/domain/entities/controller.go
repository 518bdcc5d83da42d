package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra metadata of a subcommand.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller exposes a subcommand to the Cobra root.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
