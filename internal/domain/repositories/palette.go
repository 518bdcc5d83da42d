package repositories

// Palette decorates console text. Decoration is cosmetic and must never be
// needed to interpret the output.
type Palette interface {
	Header(text string) string
	Index(text string) string
	Name(text string) string
	Success(text string) string
	Failure(text string) string
}

// PlainPalette leaves every text undecorated.
type PlainPalette struct{}

var _ Palette = PlainPalette{}

func (PlainPalette) Header(text string) string  { return text }
func (PlainPalette) Index(text string) string   { return text }
func (PlainPalette) Name(text string) string    { return text }
func (PlainPalette) Success(text string) string { return text }
func (PlainPalette) Failure(text string) string { return text }
