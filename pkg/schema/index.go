package schema

import (
	"bytes"
	"encoding/json"
)

// TextureIndex is an optional reference to a glTF texture slot.
// The zero value means "no texture" and is omitted on the wire.
type TextureIndex struct {
	index int
	valid bool
}

// NoTexture is the absent texture index.
var NoTexture TextureIndex

// TextureAt returns a present index. Negative values are treated as absent,
// which is how older files encode a missing texture.
func TextureAt(i int) TextureIndex {
	if i < 0 {
		return NoTexture
	}
	return TextureIndex{index: i, valid: true}
}

// Get returns the index and whether it is present.
func (t TextureIndex) Get() (int, bool) {
	return t.index, t.valid
}

// Valid reports whether the index is present.
func (t TextureIndex) Valid() bool {
	return t.valid
}

// IsZero reports whether the index is absent. It drives `omitzero`.
func (t TextureIndex) IsZero() bool {
	return !t.valid
}

// Ptr returns the index as a glTF optional index.
func (t TextureIndex) Ptr() *int {
	if !t.valid {
		return nil
	}
	i := t.index
	return &i
}

// MarshalJSON encodes a present index as a number and an absent one as null.
func (t TextureIndex) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.index)
}

// UnmarshalJSON accepts a number or null. Negative numbers decode as absent.
func (t *TextureIndex) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = NoTexture
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*t = TextureAt(i)
	return nil
}
