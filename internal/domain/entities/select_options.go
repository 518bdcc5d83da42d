package entities

import "strings"

// AllPackages is the "-p" value that selects every upgradeable package.
const AllPackages = "all"

// SelectOptions holds the parsed command-line choices that affect selection.
type SelectOptions struct {
	// Requested is the "-p" value: package names, or the single token "all".
	Requested []string
}

// IsNonInteractive reports whether "-p" was given with a value.
func (o SelectOptions) IsNonInteractive() bool {
	return len(o.Requested) > 0
}

// RequestsAll reports whether "-p" is exactly ["all"].
func (o SelectOptions) RequestsAll() bool {
	return len(o.Requested) == 1 && o.Requested[0] == AllPackages
}

// Matches reports whether the requested name refers to record, ignoring case
// and surrounding whitespace.
func (o SelectOptions) Matches(requested string, record PackageRecord) bool {
	return normalizeName(requested) == normalizeName(record.Name)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
