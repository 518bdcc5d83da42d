package repositories

import (
	"context"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
)

// PackageRepository loads the resolver's package metadata.
type PackageRepository interface {
	// Load reads the packages file at path, keeping the order of its entries.
	Load(ctx context.Context, path string) (*entities.PackageMap, error)
}
