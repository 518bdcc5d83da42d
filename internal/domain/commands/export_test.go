package commands

// ParseIndices exports parseIndices for testing.
var ParseIndices = parseIndices //nolint:gochecknoglobals // test export

// FormatSelection exports formatSelection for testing.
var FormatSelection = formatSelection //nolint:gochecknoglobals // test export
