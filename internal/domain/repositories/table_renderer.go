package repositories

// TableRenderer lays out rows under headers as text. It knows nothing about
// colours: decorated cells are passed through as-is.
type TableRenderer interface {
	Render(headers []string, rows [][]string) string
}
