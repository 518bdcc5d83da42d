//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageRecordBuilder helps create test package records with a fluent interface.
type PackageRecordBuilder struct {
	*testkit.BaseBuilder
	name             string
	currentVersion   string
	latestVersion    string
	uploadTime       string
	upgradeAvailable bool
}

// NewPackageRecordBuilder creates a new package record builder with sensible defaults.
func NewPackageRecordBuilder() *PackageRecordBuilder {
	return &PackageRecordBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		name:             "test-package",
		currentVersion:   "1.0.0",
		latestVersion:    "2.0.0",
		uploadTime:       "2020-01-01",
		upgradeAvailable: true,
	}
}

// WithName sets the package name.
func (b *PackageRecordBuilder) WithName(name string) *PackageRecordBuilder {
	b.name = name
	return b
}

// WithCurrentVersion sets the installed version.
func (b *PackageRecordBuilder) WithCurrentVersion(version string) *PackageRecordBuilder {
	b.currentVersion = version
	return b
}

// WithLatestVersion sets the latest available version.
func (b *PackageRecordBuilder) WithLatestVersion(version string) *PackageRecordBuilder {
	b.latestVersion = version
	return b
}

// WithUploadTime sets the release date.
func (b *PackageRecordBuilder) WithUploadTime(uploadTime string) *PackageRecordBuilder {
	b.uploadTime = uploadTime
	return b
}

// WithUpgradeAvailable sets whether an upgrade is available.
func (b *PackageRecordBuilder) WithUpgradeAvailable(available bool) *PackageRecordBuilder {
	b.upgradeAvailable = available
	return b
}

// UpToDate marks the package as already on its latest version.
func (b *PackageRecordBuilder) UpToDate() *PackageRecordBuilder {
	b.latestVersion = b.currentVersion
	b.upgradeAvailable = false
	return b
}

// Build creates the package record (satisfies testkit.Builder interface).
func (b *PackageRecordBuilder) Build() interface{} {
	return b.BuildPackageRecord()
}

// BuildPackageRecord creates the package record with a concrete return type.
func (b *PackageRecordBuilder) BuildPackageRecord() entities.PackageRecord {
	return entities.PackageRecord{
		Name:             b.name,
		CurrentVersion:   b.currentVersion,
		LatestVersion:    b.latestVersion,
		UploadTime:       b.uploadTime,
		UpgradeAvailable: b.upgradeAvailable,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.currentVersion = "1.0.0"
	b.latestVersion = "2.0.0"
	b.uploadTime = "2020-01-01"
	b.upgradeAvailable = true
	return b
}

// Clone creates a deep copy of the PackageRecordBuilder.
func (b *PackageRecordBuilder) Clone() testkit.Builder {
	return &PackageRecordBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:             b.name,
		currentVersion:   b.currentVersion,
		latestVersion:    b.latestVersion,
		uploadTime:       b.uploadTime,
		upgradeAvailable: b.upgradeAvailable,
	}
}
