package texture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/univgo/pkg/schema"
)

// createTestPNG encodes a w x h image filled with c.
func createTestPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
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

// createTestTGA builds an uncompressed 24-bit top-left origin TGA.
func createTestTGA(w, h int, c color.NRGBA) []byte {
	buf := new(bytes.Buffer)
	header := make([]byte, 18)
	header[2] = 2 // uncompressed true-color
	header[12] = byte(w)
	header[13] = byte(w >> 8)
	header[14] = byte(h)
	header[15] = byte(h >> 8)
	header[16] = 24
	header[17] = 0x20 // top-left origin
	buf.Write(header)
	for i := 0; i < w*h; i++ {
		buf.Write([]byte{c.B, c.G, c.R})
	}
	return buf.Bytes()
}

func TestCopyNilTexture(t *testing.T) {
	tbl := NewTable(gltf.NewDocument())

	idx, err := tbl.Copy(nil, SRGB)
	if err != nil {
		t.Fatalf("Copy(nil) failed: %v", err)
	}
	if idx.Valid() {
		t.Error("nil texture must yield no index")
	}

	idx, err = tbl.Convert(nil, NormalConverter{})
	if err != nil || idx.Valid() {
		t.Errorf("Convert(nil) = %v, %v; want no index", idx, err)
	}
	if tbl.Len() != 0 {
		t.Errorf("expected empty table, got %d slots", tbl.Len())
	}
}

func TestCopyDeduplicates(t *testing.T) {
	doc := gltf.NewDocument()
	tbl := NewTable(doc)
	tex := &Texture{Name: "albedo", Data: createTestPNG(t, 2, 2, color.NRGBA{255, 0, 0, 255})}

	first, err := tbl.Copy(tex, SRGB)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	second, err := tbl.Copy(tex, SRGB)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	if first != second {
		t.Errorf("same texture must reuse its slot: %v vs %v", first, second)
	}
	if len(doc.Textures) != 1 || len(doc.Images) != 1 {
		t.Errorf("expected 1 texture and 1 image, got %d and %d", len(doc.Textures), len(doc.Images))
	}
	if doc.Images[0].MimeType != MimePNG {
		t.Errorf("expected png passthrough, got %s", doc.Images[0].MimeType)
	}
	if tbl.Source(0) != tex {
		t.Error("slot 0 must map back to the source texture")
	}
}

func TestCopyDistinctTextures(t *testing.T) {
	tbl := NewTable(gltf.NewDocument())
	data := createTestPNG(t, 1, 1, color.NRGBA{0, 0, 0, 255})
	a := &Texture{Name: "a", Data: data}
	b := &Texture{Name: "b", Data: data}

	ia, _ := tbl.Copy(a, SRGB)
	ib, _ := tbl.Copy(b, SRGB)

	if ia == ib {
		t.Error("distinct textures must get distinct slots")
	}
}

func TestConvertGetsOwnSlot(t *testing.T) {
	tbl := NewTable(gltf.NewDocument())
	tex := &Texture{Name: "normal", Data: createTestPNG(t, 2, 2, color.NRGBA{128, 128, 255, 255})}

	copied, err := tbl.Copy(tex, SRGB)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	converted, err := tbl.Convert(tex, NormalConverter{})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	again, _ := tbl.Convert(tex, NormalConverter{})

	if copied == converted {
		t.Error("conversion must not share the copy slot")
	}
	if converted != again {
		t.Error("repeated conversion must reuse its slot")
	}
}

func TestCopyTGAReencodes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sky.tga")
	if err := os.WriteFile(path, createTestTGA(2, 2, color.NRGBA{10, 20, 30, 255}), 0644); err != nil {
		t.Fatalf("writing tga: %v", err)
	}

	doc := gltf.NewDocument()
	tbl := NewTable(doc)
	tex := Load(path)
	if tex.Name != "sky" {
		t.Errorf("expected name sky, got %s", tex.Name)
	}

	idx, err := tbl.Copy(tex, SRGB)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if !idx.Valid() {
		t.Fatal("expected a slot")
	}
	if doc.Images[0].MimeType != MimePNG {
		t.Errorf("tga must be re-encoded as png, got %s", doc.Images[0].MimeType)
	}
}

func TestCopyWebP(t *testing.T) {
	doc := gltf.NewDocument()
	tbl := NewTable(doc, WithFormat(FormatWebP))
	tex := &Texture{Name: "tga", Path: "x.tga", Data: createTestTGA(2, 2, color.NRGBA{1, 2, 3, 255})}

	idx, err := tbl.Copy(tex, SRGB)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	i, _ := idx.Get()
	gt := doc.Textures[i]
	if gt.Source != nil {
		t.Error("webp texture must reference its image through EXT_texture_webp")
	}
	if _, ok := gt.Extensions[schema.ExtTextureWebP]; !ok {
		t.Error("missing EXT_texture_webp extension")
	}

	res := NewResolver(doc, "")
	back, err := res.Resolve(idx)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if back.MimeType != MimeWebP {
		t.Errorf("expected webp mime, got %s", back.MimeType)
	}
}

func TestCopyUnsupportedData(t *testing.T) {
	tbl := NewTable(gltf.NewDocument())
	_, err := tbl.Copy(&Texture{Name: "junk", Data: []byte("not an image")}, SRGB)
	if err == nil {
		t.Error("expected error for undecodable data")
	}
}

func TestResolverRoundTrip(t *testing.T) {
	doc := gltf.NewDocument()
	tbl := NewTable(doc)
	data := createTestPNG(t, 1, 1, color.NRGBA{1, 2, 3, 255})
	tex := &Texture{Name: "body", Data: data}

	idx, err := tbl.Copy(tex, SRGB)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	res := NewResolver(doc, "")
	got, err := res.Resolve(idx)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Name != "body" {
		t.Errorf("expected name body, got %s", got.Name)
	}
	if !bytes.Equal(got.Data, data) {
		t.Error("resolved bytes differ from the embedded image")
	}

	again, _ := res.Resolve(idx)
	if again != got {
		t.Error("resolver must return the same texture for the same index")
	}

	if none, err := res.Resolve(schema.NoTexture); none != nil || err != nil {
		t.Errorf("Resolve(NoTexture) = %v, %v", none, err)
	}
	if _, err := res.ResolveIndex(42); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

// createImageDoc builds a document with one texture per image URI.
func createImageDoc(uris ...string) *gltf.Document {
	doc := gltf.NewDocument()
	for i, uri := range uris {
		doc.Images = append(doc.Images, &gltf.Image{URI: uri})
		doc.Textures = append(doc.Textures, &gltf.Texture{Source: gltf.Index(i)})
	}
	return doc
}

func TestResolverDataURI(t *testing.T) {
	data := createTestPNG(t, 1, 1, color.NRGBA{4, 5, 6, 255})
	doc := createImageDoc(
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(data),
		"data:image/webp;base64,AAAA",
	)
	res := NewResolver(doc, "")

	got, err := res.ResolveIndex(0)
	if err != nil {
		t.Fatalf("ResolveIndex(0) failed: %v", err)
	}
	if !bytes.Equal(got.Data, data) {
		t.Error("decoded bytes differ from the embedded image")
	}

	if _, err := res.ResolveIndex(1); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("expected ErrUnsupportedImage for a webp data URI, got %v", err)
	}
}

func TestResolverFileURI(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "model")
	if err := os.MkdirAll(filepath.Join(dir, "tex"), 0755); err != nil {
		t.Fatal(err)
	}
	data := createTestPNG(t, 2, 2, color.NRGBA{7, 8, 9, 255})
	if err := os.WriteFile(filepath.Join(dir, "tex", "a.png"), data, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "secret.png"), data, 0644); err != nil {
		t.Fatal(err)
	}

	doc := createImageDoc("tex/a.png", "tex/../tex/a.png", "../secret.png", "tex/../../secret.png")
	res := NewResolver(doc, dir)

	for _, i := range []int{0, 1} {
		got, err := res.ResolveIndex(i)
		if err != nil {
			t.Fatalf("ResolveIndex(%d) failed: %v", i, err)
		}
		if !bytes.Equal(got.Data, data) {
			t.Errorf("texture %d: bytes differ from the file", i)
		}
	}
	for _, i := range []int{2, 3} {
		if _, err := res.ResolveIndex(i); !errors.Is(err, ErrImageOutsideDir) {
			t.Errorf("ResolveIndex(%d): expected ErrImageOutsideDir, got %v", i, err)
		}
	}
}

func TestNormalConverter(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
	}{
		{"rgb", color.NRGBA{128, 128, 255, 255}},
		{"packed", color.NRGBA{0, 128, 0, 128}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			src.SetNRGBA(0, 0, tc.in)

			out := NormalConverter{}.Convert(src).(*image.NRGBA)
			c := out.NRGBAAt(0, 0)

			if absDiff(c.R, 128) > 1 || absDiff(c.G, 128) > 1 || c.B < 254 || c.A != 255 {
				t.Errorf("expected flat normal, got %v", c)
			}
		})
	}
}

func TestMetallicRoughnessConverter(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 0, B: 0, A: 255})

	out := MetallicRoughnessConverter{SmoothnessScale: 1}.Convert(src).(*image.NRGBA)
	c := out.NRGBAAt(0, 0)

	if c.B != 200 {
		t.Errorf("metallic must move to blue: got %d", c.B)
	}
	if c.G != 0 {
		t.Errorf("full smoothness must be zero roughness: got %d", c.G)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"", FormatPNG, false},
		{"WEBP", FormatWebP, false},
		{"gif", "", true},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
