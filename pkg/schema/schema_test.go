package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestTextureIndexOmittedWhenAbsent(t *testing.T) {
	rec := MaterialParticle{MainTexIndex: TextureAt(3)}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(data)

	if !strings.Contains(s, `"mainTexIndex":3`) {
		t.Errorf("expected mainTexIndex 3 in %s", s)
	}
	if strings.Contains(s, "bumpMapIndex") {
		t.Errorf("absent bumpMapIndex must be omitted: %s", s)
	}
}

func TestTextureIndexLegacySentinel(t *testing.T) {
	var rec MaterialParticle
	err := json.Unmarshal([]byte(`{"mainTexIndex":-1,"bumpMapIndex":2,"emissionMapIndex":null}`), &rec)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if rec.MainTexIndex.Valid() {
		t.Error("legacy -1 must decode as absent")
	}
	if i, ok := rec.BumpMapIndex.Get(); !ok || i != 2 {
		t.Errorf("expected bumpMapIndex 2, got %d (%v)", i, ok)
	}
	if rec.EmissionMapIndex.Valid() {
		t.Error("null must decode as absent")
	}
}

func TestTextureIndexPtr(t *testing.T) {
	if NoTexture.Ptr() != nil {
		t.Error("absent index must have nil pointer")
	}
	p := TextureAt(0).Ptr()
	if p == nil || *p != 0 {
		t.Errorf("expected pointer to 0, got %v", p)
	}
	if TextureAt(-5).Valid() {
		t.Error("negative index must be absent")
	}
}

func TestGetVariants(t *testing.T) {
	ext := gltf.Extensions{
		"ptr":   &Materials{ShaderName: "A"},
		"value": Materials{ShaderName: "B"},
		"raw":   json.RawMessage(`{"shaderName":"C"}`),
		"map":   map[string]any{"shaderName": "D"},
	}

	tests := []struct {
		key  string
		want string
	}{
		{"ptr", "A"},
		{"value", "B"},
		{"raw", "C"},
		{"map", "D"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			m, err := Get[Materials](ext, tc.key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if m == nil || m.ShaderName != tc.want {
				t.Errorf("expected shader %s, got %+v", tc.want, m)
			}
		})
	}

	if m, err := Get[Materials](ext, "missing"); m != nil || err != nil {
		t.Errorf("missing key: got %v, %v", m, err)
	}
	if m, err := Get[Materials](nil, "ptr"); m != nil || err != nil {
		t.Errorf("nil extensions: got %v, %v", m, err)
	}
}

func TestRegisteredDecoder(t *testing.T) {
	v, err := decoder[Nodes]([]byte(`{"colliders":[{"type":"Sphere","radius":0.5}]}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	nodes, ok := v.(*Nodes)
	if !ok {
		t.Fatalf("expected *Nodes, got %T", v)
	}
	if len(nodes.Colliders) != 1 || nodes.Colliders[0].Type != ColliderSphere {
		t.Errorf("unexpected colliders: %+v", nodes.Colliders)
	}
}

func TestMarkUsed(t *testing.T) {
	doc := &gltf.Document{}
	MarkUsed(doc, ExtVGO)
	MarkUsed(doc, ExtVGO)
	MarkUsed(doc, ExtNodes)

	if len(doc.ExtensionsUsed) != 2 {
		t.Errorf("expected 2 used extensions, got %v", doc.ExtensionsUsed)
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("0.3.0")
	if err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}
	if v != CurrentVersion {
		t.Errorf("expected %s, got %s", CurrentVersion, v)
	}

	if _, err := ParseVersion("not-a-version"); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("expected ErrInvalidVersion, got %v", err)
	}
}

func TestCheckCompatibility(t *testing.T) {
	reader := Version{0, 3, 0}

	tests := []struct {
		file    Version
		want    Compatibility
		wantErr bool
	}{
		{Version{0, 3, 0}, Compatible, false},
		{Version{0, 3, 7}, Compatible, false},
		{Version{0, 2, 1}, Compatible, false},
		{Version{0, 4, 0}, NewerMinor, false},
		{Version{1, 0, 0}, Compatible, true},
	}

	for _, tc := range tests {
		got, err := CheckCompatibility(tc.file, reader)
		if tc.wantErr {
			if !errors.Is(err, ErrIncompatibleVersion) {
				t.Errorf("%s: expected ErrIncompatibleVersion, got %v", tc.file, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.file, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.file, tc.want, got)
		}
	}
}

func TestCullModeDoubleSided(t *testing.T) {
	tests := []struct {
		mode   CullMode
		double bool
		ok     bool
	}{
		{CullOff, true, true},
		{CullFront, false, true},
		{CullBack, false, true},
		{CullMode(7), false, false},
	}

	for _, tc := range tests {
		double, ok := tc.mode.DoubleSided()
		if double != tc.double || ok != tc.ok {
			t.Errorf("CullMode(%d).DoubleSided() = %v, %v; want %v, %v", tc.mode, double, ok, tc.double, tc.ok)
		}
	}
}
