//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/upgradeselect/internal"
	"github.com/rios0rios0/upgradeselect/internal/domain/commands"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the application with every controller", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var app *internal.AppInternal
		err := container.Invoke(func(ai *internal.AppInternal) {
			app = ai
		})

		// then
		require.NoError(t, err)
		require.NotNil(t, app)
		binds := make([]string, 0, len(app.GetControllers()))
		for _, controller := range app.GetControllers() {
			binds = append(binds, controller.GetBind().Use)
		}
		assert.Equal(t, []string{"select", "export"}, binds)
	})

	t.Run("should bind the command and port interfaces", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		err := container.Invoke(func(
			_ commands.Select,
			_ commands.Export,
			_ repositories.Console,
			_ repositories.SelectionOutput,
			_ repositories.Palette,
			_ repositories.TableRenderer,
			_ repositories.UpgradeExporter,
			_ repositories.PackageRepository,
		) {
		})

		// then
		require.NoError(t, err)
	})
}
