package entities

// PackageMap is an insertion-ordered mapping of package name to record.
type PackageMap struct {
	names   []string
	records map[string]PackageRecord
}

// NewPackageMap creates a PackageMap holding the given records in order.
func NewPackageMap(records ...PackageRecord) *PackageMap {
	packages := &PackageMap{
		names:   make([]string, 0, len(records)),
		records: make(map[string]PackageRecord, len(records)),
	}
	for _, record := range records {
		packages.Set(record.Name, record)
	}
	return packages
}

// Set stores the record under name. An existing name keeps its position.
func (m *PackageMap) Set(name string, record PackageRecord) {
	if m.records == nil {
		m.records = make(map[string]PackageRecord)
	}
	if _, exists := m.records[name]; !exists {
		m.names = append(m.names, name)
	}
	m.records[name] = record
}

// Get returns the record stored under name.
func (m *PackageMap) Get(name string) (PackageRecord, bool) {
	record, ok := m.records[name]
	return record, ok
}

// Len returns the number of records.
func (m *PackageMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the package names in insertion order.
func (m *PackageMap) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Records returns the records in insertion order.
func (m *PackageMap) Records() []PackageRecord {
	if m == nil {
		return nil
	}
	records := make([]PackageRecord, 0, len(m.names))
	for _, name := range m.names {
		records = append(records, m.records[name])
	}
	return records
}
