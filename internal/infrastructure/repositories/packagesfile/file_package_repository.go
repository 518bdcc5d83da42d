package packagesfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// rawRecord is a packages file entry. A missing upgrade_available is derived
// from the versions.
type rawRecord struct {
	Name             string `yaml:"name"              toml:"name"`
	CurrentVersion   string `yaml:"current_version"   toml:"current_version"`
	LatestVersion    string `yaml:"latest_version"    toml:"latest_version"`
	UploadTime       string `yaml:"upload_time"       toml:"upload_time"`
	UpgradeAvailable *bool  `yaml:"upgrade_available" toml:"upgrade_available"`
}

// tomlDocument holds the "[[packages]]" array of a TOML packages file.
type tomlDocument struct {
	Packages []rawRecord `toml:"packages"`
}

// FilePackageRepository implements repositories.PackageRepository for the
// files written by the version resolver.
//
// YAML and JSON files hold a mapping of package name to record; TOML files
// hold a "[[packages]]" array. Both keep the order of the file.
type FilePackageRepository struct {
	decoders *DecoderRegistry
}

var _ repositories.PackageRepository = (*FilePackageRepository)(nil)

// NewFilePackageRepository creates a repository decoding with decoders.
func NewFilePackageRepository(decoders *DecoderRegistry) repositories.PackageRepository {
	return &FilePackageRepository{decoders: decoders}
}

func (r *FilePackageRepository) Load(ctx context.Context, path string) (*entities.PackageMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read packages file %q: %w", path, err)
	}

	ext := filepath.Ext(path)
	decode := r.decoders.Get(ext)
	if decode == nil {
		return nil, fmt.Errorf(
			"unsupported packages file extension %q (supported: %s)",
			ext, strings.Join(r.decoders.Extensions(), ", "),
		)
	}

	packages, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse packages file %q: %w", path, err)
	}

	logger.Debugf("Read %d package(s) from %q", packages.Len(), path)
	return packages, nil
}

// decodeMapping walks the YAML node tree so the key order survives decoding.
// JSON documents are valid YAML and take the same path.
func decodeMapping(data []byte) (*entities.PackageMap, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	packages := entities.NewPackageMap()
	if len(document.Content) == 0 {
		return packages, nil
	}

	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of package names", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var raw rawRecord
		if err := value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: package %q: %w", key.Line, key.Value, err)
		}
		if raw.Name == "" {
			raw.Name = key.Value
		}
		packages.Set(key.Value, raw.toRecord())
	}

	return packages, nil
}

func decodeTOML(data []byte) (*entities.PackageMap, error) {
	var document tomlDocument
	if err := toml.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	packages := entities.NewPackageMap()
	for i, raw := range document.Packages {
		if raw.Name == "" {
			return nil, fmt.Errorf("packages[%d].name is required", i)
		}
		packages.Set(raw.Name, raw.toRecord())
	}

	return packages, nil
}

func (r rawRecord) toRecord() entities.PackageRecord {
	upgradeAvailable := entities.IsUpgradeAvailable(r.CurrentVersion, r.LatestVersion)
	if r.UpgradeAvailable != nil {
		upgradeAvailable = *r.UpgradeAvailable
	}

	return entities.PackageRecord{
		Name:             r.Name,
		CurrentVersion:   r.CurrentVersion,
		LatestVersion:    r.LatestVersion,
		UploadTime:       r.UploadTime,
		UpgradeAvailable: upgradeAvailable,
	}
}
