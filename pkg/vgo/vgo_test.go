package vgo

import (
	"bytes"
	"context"
	"image"
	stdcolor "image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"

	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/scene"
	"github.com/Faultbox/univgo/pkg/texture"
)

// createTestPNG encodes a w x h image filled with c.
func createTestPNG(t *testing.T, w, h int, c stdcolor.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func createTestTexture(t *testing.T, name string) *texture.Texture {
	t.Helper()
	return &texture.Texture{
		Name: name,
		Data: createTestPNG(t, 4, 4, stdcolor.NRGBA{R: 128, G: 128, B: 255, A: 255}),
	}
}

// roundTrip exports the materials (and root, when given) to a .vgo file and
// imports it again.
func roundTrip(t *testing.T, root *scene.GameObject, materials ...*scene.Material) *scene.Scene {
	t.Helper()

	exp := &Exporter{}
	doc, err := exp.Export(root, materials)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.vgo")
	if err := Save(doc, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	imp := &Importer{}
	s, err := imp.Load(context.Background(), path, ImportOptions{ShowMeshes: true})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func exportOne(t *testing.T, m *scene.Material) (*gltf.Material, *texture.Table) {
	t.Helper()
	tbl := texture.NewTable(gltf.NewDocument())
	gm, err := MaterialExporter{}.Export(m, tbl)
	if err != nil {
		t.Fatalf("Export(%s) failed: %v", m.Shader, err)
	}
	return gm, tbl
}

const colorEpsilon = 1e-5

func near(a, b float32) bool {
	return math32.Abs(a-b) <= colorEpsilon
}

func colorNear(a, b color.Color) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}
