package entities

// IndexedPackages maps the 1-based display index to an upgradeable package.
// Indices are assigned once, in PackageMap order, and never renumbered.
type IndexedPackages struct {
	indices []int
	records map[int]PackageRecord
}

// NewIndexedPackages indexes every record of packages with an upgrade available.
func NewIndexedPackages(packages *PackageMap) *IndexedPackages {
	indexed := &IndexedPackages{
		indices: []int{},
		records: make(map[int]PackageRecord),
	}

	index := 1
	for _, record := range packages.Records() {
		if !record.UpgradeAvailable {
			continue
		}
		indexed.indices = append(indexed.indices, index)
		indexed.records[index] = record
		index++
	}

	return indexed
}

// Len returns the number of indexed packages.
func (p *IndexedPackages) Len() int { return len(p.indices) }

// IsEmpty reports whether no package has an upgrade available.
func (p *IndexedPackages) IsEmpty() bool { return len(p.indices) == 0 }

// Indices returns every display index in ascending order.
func (p *IndexedPackages) Indices() []int {
	indices := make([]int, len(p.indices))
	copy(indices, p.indices)
	return indices
}

// Get returns the record shown under index.
func (p *IndexedPackages) Get(index int) (PackageRecord, bool) {
	record, ok := p.records[index]
	return record, ok
}
