package packagesfile

import (
	"sort"
	"strings"

	"github.com/rios0rios0/upgradeselect/internal/domain/entities"
)

// Decoder turns the content of a packages file into an ordered PackageMap.
type Decoder func(data []byte) (*entities.PackageMap, error)

// DecoderRegistry manages the packages file decoders by file extension.
type DecoderRegistry struct {
	decoders map[string]Decoder
}

// NewDecoderRegistry creates an empty decoder registry.
func NewDecoderRegistry() *DecoderRegistry {
	return &DecoderRegistry{
		decoders: make(map[string]Decoder),
	}
}

// NewDefaultDecoderRegistry registers the YAML, JSON and TOML decoders.
func NewDefaultDecoderRegistry() *DecoderRegistry {
	reg := NewDecoderRegistry()
	reg.Register(".yaml", decodeMapping)
	reg.Register(".yml", decodeMapping)
	reg.Register(".json", decodeMapping)
	reg.Register(".toml", decodeTOML)
	return reg
}

// Register adds a decoder for ext (e.g. ".yaml"). Extensions are case-insensitive.
func (r *DecoderRegistry) Register(ext string, decoder Decoder) {
	r.decoders[strings.ToLower(ext)] = decoder
}

// Get returns the decoder for ext, or nil if none is registered.
func (r *DecoderRegistry) Get(ext string) Decoder {
	return r.decoders[strings.ToLower(ext)]
}

// Extensions returns the registered extensions in sorted order.
func (r *DecoderRegistry) Extensions() []string {
	extensions := make([]string, 0, len(r.decoders))
	for ext := range r.decoders {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}
