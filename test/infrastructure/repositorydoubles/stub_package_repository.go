//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// StubPackageRepository implements repositories.PackageRepository with a
// fixed result.
type StubPackageRepository struct {
	Packages    *entities.PackageMap
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.PackageRepository = (*StubPackageRepository)(nil)

func (r *StubPackageRepository) Load(_ context.Context, path string) (*entities.PackageMap, error) {
	r.LoadedPaths = append(r.LoadedPaths, path)
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if r.Packages == nil {
		return entities.NewPackageMap(), nil
	}
	return r.Packages, nil
}
