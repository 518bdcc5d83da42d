package entities

// Selection accumulates the packages chosen for upgrade, in the order they
// were accepted. The same package may appear more than once.
type Selection struct {
	packages []PackageRecord
}

// NewSelection creates an empty Selection.
func NewSelection() *Selection {
	return &Selection{packages: []PackageRecord{}}
}

// Pick appends the record of every index present in candidates and reports a
// true flag for each one. Unknown indices are skipped without a flag.
func (s *Selection) Pick(candidates *IndexedPackages, indices []int) []bool {
	picked := make([]bool, 0, len(indices))
	for _, index := range indices {
		record, ok := candidates.Get(index)
		if !ok {
			continue
		}
		s.packages = append(s.packages, record)
		picked = append(picked, true)
	}
	return picked
}

// Packages returns a copy of the selected records.
func (s *Selection) Packages() []PackageRecord {
	packages := make([]PackageRecord, len(s.packages))
	copy(packages, s.packages)
	return packages
}

// Len returns the number of selected records.
func (s *Selection) Len() int { return len(s.packages) }
