//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/test/domain/entitybuilders"
)

func TestPackageMap(t *testing.T) {
	t.Parallel()

	t.Run("should keep insertion order", func(t *testing.T) {
		t.Parallel()

		// given
		packages := entities.NewPackageMap()

		// when
		packages.Set("zeta", entitybuilders.NewPackageRecordBuilder().WithName("zeta").BuildPackageRecord())
		packages.Set("alpha", entitybuilders.NewPackageRecordBuilder().WithName("alpha").BuildPackageRecord())
		packages.Set("mid", entitybuilders.NewPackageRecordBuilder().WithName("mid").BuildPackageRecord())

		// then
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, packages.Names())
		assert.Equal(t, 3, packages.Len())
	})

	t.Run("should replace an existing name in place", func(t *testing.T) {
		t.Parallel()

		// given
		packages := entities.NewPackageMap(
			entitybuilders.NewPackageRecordBuilder().WithName("a").BuildPackageRecord(),
			entitybuilders.NewPackageRecordBuilder().WithName("b").BuildPackageRecord(),
		)
		replacement := entitybuilders.NewPackageRecordBuilder().WithName("a").WithLatestVersion("9.0.0").BuildPackageRecord()

		// when
		packages.Set("a", replacement)

		// then
		assert.Equal(t, []string{"a", "b"}, packages.Names())
		record, ok := packages.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "9.0.0", record.LatestVersion)
	})

	t.Run("should accept Set on the zero value", func(t *testing.T) {
		t.Parallel()

		// given
		var packages entities.PackageMap

		// when
		packages.Set("a", entitybuilders.NewPackageRecordBuilder().WithName("a").BuildPackageRecord())

		// then
		assert.Equal(t, 1, packages.Len())
	})

	t.Run("should treat a nil map as empty", func(t *testing.T) {
		t.Parallel()

		// given
		var packages *entities.PackageMap

		// when
		records := packages.Records()

		// then
		assert.Empty(t, records)
		assert.Equal(t, 0, packages.Len())
	})
}
