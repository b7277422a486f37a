// Package schema defines the VGO records carried in glTF extensions blocks
// and registers their decoders with the glTF library.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/qmuntal/gltf"
)

// Extension keys.
const (
	ExtVGO               = "VGO"
	ExtMaterials         = "VGO_materials"
	ExtMaterialsParticle = "VGO_materials_particle"
	ExtMaterialsSkybox   = "VGO_materials_skybox"
	ExtMaterialsMToon    = "VRMC_materials_mtoon"
	ExtNodes             = "VGO_nodes"
	ExtTextureWebP       = "EXT_texture_webp"
)

func init() {
	gltf.RegisterExtension(ExtVGO, decoder[Root])
	gltf.RegisterExtension(ExtMaterials, decoder[Materials])
	gltf.RegisterExtension(ExtMaterialsParticle, decoder[MaterialParticle])
	gltf.RegisterExtension(ExtMaterialsSkybox, decoder[MaterialSkybox])
	gltf.RegisterExtension(ExtMaterialsMToon, decoder[MaterialMToon])
	gltf.RegisterExtension(ExtNodes, decoder[Nodes])
	gltf.RegisterExtension(ExtTextureWebP, decoder[TextureWebP])
}

func decoder[T any](data []byte) (any, error) {
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns the extension stored under key as *T.
// Decoded documents hold *T (registered decoders); documents that went
// through another decoder may hold the raw JSON instead, which is decoded here.
func Get[T any](ext gltf.Extensions, key string) (*T, error) {
	if ext == nil {
		return nil, nil
	}
	raw, ok := ext[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case *T:
		return v, nil
	case T:
		return &v, nil
	case json.RawMessage:
		out := new(T)
		if err := json.Unmarshal(v, out); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		return out, nil
	case []byte:
		out := new(T)
		if err := json.Unmarshal(v, out); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		return out, nil
	default:
		// Generic JSON value (map[string]any etc.): re-encode and decode.
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("re-encoding %s: %w", key, err)
		}
		out := new(T)
		if err := json.Unmarshal(data, out); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		return out, nil
	}
}

// Has reports whether key is present in ext.
func Has(ext gltf.Extensions, key string) bool {
	if ext == nil {
		return false
	}
	_, ok := ext[key]
	return ok
}

// MarkUsed appends name to the document's extensionsUsed list once.
func MarkUsed(doc *gltf.Document, name string) {
	for _, used := range doc.ExtensionsUsed {
		if used == name {
			return
		}
	}
	doc.ExtensionsUsed = append(doc.ExtensionsUsed, name)
}

// TextureWebP is the EXT_texture_webp texture extension.
type TextureWebP struct {
	Source *int `json:"source,omitempty"`
}
