package entities

// PackageRecord is the version metadata of one installed package as reported
// by the resolver.
type PackageRecord struct {
	Name             string `json:"name"              yaml:"name"              toml:"name"`
	CurrentVersion   string `json:"current_version"   yaml:"current_version"   toml:"current_version"`
	LatestVersion    string `json:"latest_version"    yaml:"latest_version"    toml:"latest_version"`
	UploadTime       string `json:"upload_time"       yaml:"upload_time"       toml:"upload_time"`
	UpgradeAvailable bool   `json:"upgrade_available" yaml:"upgrade_available" toml:"upgrade_available"`
}

// Requirement returns the record in pip requirement syntax, pinned to the
// latest version.
func (p PackageRecord) Requirement() string {
	return p.Name + "==" + p.LatestVersion
}
