package entities

import "strconv"

// UpgradeTableHeaders are the column titles of the upgrade table.
var UpgradeTableHeaders = []string{ //nolint:gochecknoglobals // fixed table layout
	"No.",
	"Package",
	"Current version",
	"Latest version",
	"Release date",
}

// UpgradeTable is the undecorated content of the upgrade table.
type UpgradeTable struct {
	Headers []string
	Rows    [][]string
}

// NewUpgradeTable lays out one row per candidate in display order.
func NewUpgradeTable(candidates *IndexedPackages) UpgradeTable {
	headers := make([]string, len(UpgradeTableHeaders))
	copy(headers, UpgradeTableHeaders)

	rows := make([][]string, 0, candidates.Len())
	for _, index := range candidates.Indices() {
		record, _ := candidates.Get(index)
		rows = append(rows, []string{
			strconv.Itoa(index),
			record.Name,
			record.CurrentVersion,
			record.LatestVersion,
			record.UploadTime,
		})
	}

	return UpgradeTable{Headers: headers, Rows: rows}
}

// Records returns the header followed by every row.
func (t UpgradeTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Headers)
	records = append(records, t.Rows...)
	return records
}
