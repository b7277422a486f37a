// Package texture allocates texture slots in an exported glTF document and
// resolves them back to textures on import.
package texture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Texture is a source texture referenced by material properties. Identity
// is the pointer: two properties referencing the same *Texture share a slot.
type Texture struct {
	Name     string
	Path     string
	MimeType string
	Data     []byte
}

// Load creates a texture backed by a file. The file is read lazily.
func Load(path string) *Texture {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Texture{Name: name, Path: path}
}

// Bytes returns the encoded image bytes, reading them from Path on first use.
func (t *Texture) Bytes() ([]byte, error) {
	if t.Data != nil {
		return t.Data, nil
	}
	if t.Path == "" {
		return nil, fmt.Errorf("texture %q has no data", t.Name)
	}
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("reading texture %q: %w", t.Name, err)
	}
	t.Data = data
	return data, nil
}

// ColorSpace is the color space a copied texture is read in.
type ColorSpace int

// Color spaces.
const (
	SRGB ColorSpace = iota
	Linear
)

// String returns the color space name.
func (c ColorSpace) String() string {
	if c == Linear {
		return "linear"
	}
	return "srgb"
}

// Format is the encoding used for textures that have to be re-encoded.
type Format string

// Output formats.
const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatWebP:
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("unknown texture format %q", s)
	}
}
