//go:build unit

package csvexport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/infrastructure/repositories/csvexport"
	"github.com/rios0rios0/upgradeselect/test/domain/entitybuilders"
)

func upgradeTable(records ...entities.PackageRecord) entities.UpgradeTable {
	return entities.NewUpgradeTable(entities.NewIndexedPackages(entities.NewPackageMap(records...)))
}

func TestUpgradeExporter(t *testing.T) {
	t.Parallel()

	t.Run("should write the header and one row per package", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), csvexport.DefaultFileName)
		exporter := csvexport.NewUpgradeExporter(path)
		table := upgradeTable(
			entitybuilders.NewPackageRecordBuilder().
				WithName("a").
				WithCurrentVersion("1.0").
				WithLatestVersion("2.0").
				WithUploadTime("2020-01-01").
				BuildPackageRecord(),
		)

		// when
		err := exporter.Export(table)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t,
			"No.,Package,Current version,Latest version,Release date\n"+
				"1,a,1.0,2.0,2020-01-01\n",
			string(content),
		)
		assert.NotContains(t, string(content), "\r")
	})

	t.Run("should produce identical content when exported twice", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), csvexport.DefaultFileName)
		exporter := csvexport.NewUpgradeExporter(path)
		table := upgradeTable(
			entitybuilders.NewPackageRecordBuilder().WithName("requests").BuildPackageRecord(),
			entitybuilders.NewPackageRecordBuilder().WithName("django").BuildPackageRecord(),
		)

		// when
		require.NoError(t, exporter.Export(table))
		first, firstErr := os.ReadFile(path)
		require.NoError(t, exporter.Export(table))
		second, secondErr := os.ReadFile(path)

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, first, second)
	})

	t.Run("should replace a longer previous export", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), csvexport.DefaultFileName)
		require.NoError(t, os.WriteFile(path, []byte("stale\nstale\nstale\nstale\n"), 0o600))
		exporter := csvexport.NewUpgradeExporter(path)

		// when
		err := exporter.Export(upgradeTable())

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "No.,Package,Current version,Latest version,Release date\n", string(content))
	})

	t.Run("should quote only fields that need it", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), csvexport.DefaultFileName)
		exporter := csvexport.NewUpgradeExporter(path)
		table := upgradeTable(
			entitybuilders.NewPackageRecordBuilder().
				WithName("odd,name").
				WithCurrentVersion("1.0").
				WithLatestVersion("2.0").
				WithUploadTime("2020-01-01").
				BuildPackageRecord(),
		)

		// when
		err := exporter.Export(table)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "1,\"odd,name\",1.0,2.0,2020-01-01\n")
	})

	t.Run("should fail when the directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		exporter := csvexport.NewUpgradeExporter(filepath.Join(t.TempDir(), "missing", csvexport.DefaultFileName))

		// when
		err := exporter.Export(upgradeTable())

		// then
		require.Error(t, err)
	})

	t.Run("should default to the working directory file", func(t *testing.T) {
		t.Parallel()

		// given
		exporter := csvexport.NewDefaultUpgradeExporter()

		// when
		location := exporter.Location()

		// then
		assert.Equal(t, "AVAILABLE_UPGRADES.csv", location)
	})
}
