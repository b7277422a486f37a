package texture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/univgo/pkg/schema"
)

var (
	// ErrTextureNotFound is returned for texture indices outside the document.
	ErrTextureNotFound = errors.New("texture not found")

	// ErrImageOutsideDir is returned for image URIs that leave the
	// document's directory.
	ErrImageOutsideDir = errors.New("image URI outside document directory")
)

// Resolver maps glTF texture indices of an imported document back to
// textures. Each index resolves to the same *Texture on every call.
type Resolver struct {
	doc   *gltf.Document
	dir   string
	cache map[int]*Texture
}

// NewResolver creates a resolver. dir is used for images stored as
// relative file URIs.
func NewResolver(doc *gltf.Document, dir string) *Resolver {
	return &Resolver{doc: doc, dir: dir, cache: make(map[int]*Texture)}
}

// Resolve returns the texture for idx, or nil when idx is absent.
func (r *Resolver) Resolve(idx schema.TextureIndex) (*Texture, error) {
	i, ok := idx.Get()
	if !ok {
		return nil, nil
	}
	return r.ResolveIndex(i)
}

// ResolveIndex returns the texture stored at glTF texture index i.
func (r *Resolver) ResolveIndex(i int) (*Texture, error) {
	if tex, ok := r.cache[i]; ok {
		return tex, nil
	}
	if i < 0 || i >= len(r.doc.Textures) {
		return nil, fmt.Errorf("%w: %d", ErrTextureNotFound, i)
	}

	gt := r.doc.Textures[i]
	source, err := r.imageIndex(gt)
	if err != nil {
		return nil, err
	}
	if source < 0 || source >= len(r.doc.Images) {
		return nil, fmt.Errorf("%w: texture %d has no image", ErrTextureNotFound, i)
	}

	img := r.doc.Images[source]
	data, err := r.imageData(img)
	if err != nil {
		return nil, fmt.Errorf("reading image %d: %w", source, err)
	}

	name := img.Name
	if name == "" {
		name = gt.Name
	}
	if name == "" {
		name = fmt.Sprintf("texture_%d", i)
	}

	tex := &Texture{Name: name, MimeType: img.MimeType, Data: data}
	r.cache[i] = tex
	return tex, nil
}

func (r *Resolver) imageIndex(gt *gltf.Texture) (int, error) {
	webp, err := schema.Get[schema.TextureWebP](gt.Extensions, schema.ExtTextureWebP)
	if err != nil {
		return -1, err
	}
	if webp != nil && webp.Source != nil {
		return *webp.Source, nil
	}
	if gt.Source != nil {
		return *gt.Source, nil
	}
	return -1, nil
}

func (r *Resolver) imageData(img *gltf.Image) ([]byte, error) {
	if img.BufferView != nil {
		bvIdx := *img.BufferView
		if bvIdx < 0 || bvIdx >= len(r.doc.BufferViews) {
			return nil, fmt.Errorf("buffer view %d out of range", bvIdx)
		}
		bv := r.doc.BufferViews[bvIdx]
		if bv.Buffer < 0 || bv.Buffer >= len(r.doc.Buffers) {
			return nil, fmt.Errorf("buffer %d out of range", bv.Buffer)
		}
		buf := r.doc.Buffers[bv.Buffer].Data
		end := bv.ByteOffset + bv.ByteLength
		if bv.ByteOffset < 0 || end > len(buf) {
			return nil, fmt.Errorf("buffer view %d exceeds buffer", bvIdx)
		}
		return buf[bv.ByteOffset:end], nil
	}

	if img.IsEmbeddedResource() {
		return img.MarshalData()
	}
	if strings.HasPrefix(img.URI, "data:") {
		return nil, fmt.Errorf("%w: embedded %s", ErrUnsupportedImage, mediaType(img.URI))
	}

	if img.URI == "" {
		return nil, errors.New("image has neither buffer view nor URI")
	}
	path, err := r.localPath(img.URI)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// localPath resolves uri against the document directory. URIs that climb
// out of it are rejected.
func (r *Resolver) localPath(uri string) (string, error) {
	dir := filepath.Clean(r.dir)
	path := filepath.Join(dir, filepath.FromSlash(uri))
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrImageOutsideDir, uri)
	}
	return path, nil
}

// mediaType returns the media type of a data URI.
func mediaType(uri string) string {
	mt, _, _ := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	mt, _, _ = strings.Cut(mt, ";")
	return mt
}
