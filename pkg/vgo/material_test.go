package vgo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/unlit"

	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/scene"
	"github.com/Faultbox/univgo/pkg/shader"
	"github.com/Faultbox/univgo/pkg/texture"
)

func TestExportNilMaterial(t *testing.T) {
	gm, err := MaterialExporter{}.Export(nil, texture.NewTable(gltf.NewDocument()))
	if gm != nil || err != nil {
		t.Errorf("Export(nil) = %v, %v; want nil, nil", gm, err)
	}
}

func TestExportUnknownShader(t *testing.T) {
	doc := gltf.NewDocument()
	tbl := texture.NewTable(doc)

	m := scene.NewMaterial("custom", "Custom/Toon")
	m.SetTexture(shader.PropMainTex, shader.TextureSlot{Texture: createTestTexture(t, "main")})

	gm, err := MaterialExporter{}.Export(m, tbl)
	if gm != nil {
		t.Error("unknown shader must not produce a record")
	}
	var target *shader.UnsupportedShaderError
	if !errors.As(err, &target) || target.Shader != "Custom/Toon" {
		t.Errorf("error = %v, want UnsupportedShaderError", err)
	}
	if tbl.Len() != 0 || len(doc.Images) != 0 {
		t.Errorf("unknown shader allocated %d textures", tbl.Len())
	}
}

func TestBuildSkyboxUnsupported(t *testing.T) {
	tbl := texture.NewTable(gltf.NewDocument())
	m := scene.NewMaterial("sky", "Skybox/Unknown")

	for _, name := range []string{"Skybox/Unknown", shader.Standard, ""} {
		rec, err := BuildSkybox(name, m, tbl)
		if rec != nil {
			t.Errorf("BuildSkybox(%q) returned a record", name)
		}
		if !errors.Is(err, shader.ErrUnsupportedShader) {
			t.Errorf("BuildSkybox(%q) error = %v", name, err)
		}
	}

	if _, err := (MaterialExporter{}).Export(m, tbl); !errors.Is(err, shader.ErrUnsupportedShader) {
		t.Errorf("Export unknown skybox error = %v", err)
	}
}

func TestParticleAlphaMode(t *testing.T) {
	tests := []struct {
		mode       schema.ParticleBlendMode
		alpha      gltf.AlphaMode
		withCutoff bool
	}{
		{schema.ParticleOpaque, gltf.AlphaOpaque, false},
		{schema.ParticleCutout, gltf.AlphaMask, true},
		{schema.ParticleFade, gltf.AlphaBlend, false},
		{schema.ParticleTransparent, gltf.AlphaBlend, false},
		{schema.ParticleAdditive, gltf.AlphaBlend, false},
		{schema.ParticleSubtractive, gltf.AlphaBlend, false},
		{schema.ParticleModulate, gltf.AlphaBlend, false},
	}

	for _, tt := range tests {
		m := scene.NewMaterial("p", shader.ParticlesStandardSurface)
		m.SetFloat(shader.PropMode, float32(tt.mode))
		m.SetFloat(shader.PropCutoff, 0.25)

		gm, _ := exportOne(t, m)
		if gm.AlphaMode != tt.alpha {
			t.Errorf("%v: AlphaMode = %v, want %v", tt.mode, gm.AlphaMode, tt.alpha)
		}
		if (gm.AlphaCutoff != nil) != tt.withCutoff {
			t.Errorf("%v: AlphaCutoff set = %v, want %v", tt.mode, gm.AlphaCutoff != nil, tt.withCutoff)
		}
		if tt.withCutoff && *gm.AlphaCutoff != 0.25 {
			t.Errorf("%v: AlphaCutoff = %v, want 0.25", tt.mode, *gm.AlphaCutoff)
		}
	}
}

func TestParticleExport(t *testing.T) {
	main := createTestTexture(t, "main")
	emission := createTestTexture(t, "emission")

	m := scene.NewMaterial("fx", shader.ParticlesStandardUnlit)
	m.SetFloat(shader.PropCull, float32(schema.CullOff))
	m.SetColor(shader.PropColor, color.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5})
	m.SetTexture(shader.PropMainTex, shader.TextureSlot{Texture: main, Scale: math.Vec2{X: 1, Y: 1}})
	m.SetTexture(shader.PropEmissionMap, shader.TextureSlot{Texture: emission})
	m.SetColor(shader.PropEmissionColor, color.Color{R: 1, G: 0, B: 0, A: 1})

	gm, tbl := exportOne(t, m)

	if !gm.DoubleSided {
		t.Error("cull Off should export double sided")
	}
	if !schema.Has(gm.Extensions, unlit.ExtensionName) {
		t.Error("Particles/Standard Unlit should carry KHR_materials_unlit")
	}
	if gm.PBRMetallicRoughness == nil || gm.PBRMetallicRoughness.BaseColorTexture == nil {
		t.Fatal("base color texture missing")
	}
	bc := *gm.PBRMetallicRoughness.BaseColorFactor
	if want := float64(color.ToLinear(0.5)); bc[0] < want-1e-6 || bc[0] > want+1e-6 || bc[3] != 0.5 {
		t.Errorf("BaseColorFactor = %v, want linear rgb and alpha 0.5", bc)
	}
	if gm.EmissiveTexture != nil || gm.EmissiveFactor != [3]float64{} {
		t.Error("emission exported while disabled")
	}
	if tbl.Len() != 2 {
		t.Errorf("allocated %d textures, want 2", tbl.Len())
	}

	rec, err := schema.Get[schema.MaterialParticle](gm.Extensions, schema.ExtMaterialsParticle)
	if err != nil || rec == nil {
		t.Fatalf("particle payload missing: %v", err)
	}
	if !rec.MainTexIndex.Valid() || !rec.EmissionMapIndex.Valid() {
		t.Error("texture indices not allocated")
	}
	if rec.GrabTextureIndex.Valid() || rec.BumpMapIndex.Valid() || rec.MetallicGlossMapIndex.Valid() {
		t.Error("absent textures must have no index")
	}

	m.SetFloat(shader.PropEmissionEnabled, 1)
	gm, _ = exportOne(t, m)
	if gm.EmissiveTexture == nil || gm.EmissiveFactor[0] != 1 {
		t.Errorf("emission not exported when enabled: %v", gm.EmissiveFactor)
	}

	m.Shader = shader.ParticlesStandardSurface
	gm, _ = exportOne(t, m)
	if schema.Has(gm.Extensions, unlit.ExtensionName) {
		t.Error("Particles/Standard Surface must not carry KHR_materials_unlit")
	}
}

func TestParticleRoundTrip(t *testing.T) {
	main := createTestTexture(t, "main")
	bump := createTestTexture(t, "bump")

	m := scene.NewMaterial("fx", shader.ParticlesStandardSurface)
	m.SetFloat(shader.PropMode, float32(schema.ParticleFade))
	m.SetFloat(shader.PropColorMode, float32(schema.ParticleColorOverlay))
	m.SetFloat(shader.PropFlipbookMode, float32(schema.FlipBookBlended))
	m.SetFloat(shader.PropSoftParticlesEnabled, 1)
	m.SetVector(shader.PropSoftParticleFadeParams, math.Vec4{X: 0.5, Y: 2})
	m.SetFloat(shader.PropDistortionStrengthScaled, 0.75)
	m.SetColor(shader.PropColor, color.Color{R: 0.25, G: 0.5, B: 0.75, A: 1})
	m.SetTexture(shader.PropMainTex, shader.TextureSlot{Texture: main, Scale: math.Vec2{X: 2, Y: 3}, Offset: math.Vec2{X: 0.5}})
	m.SetTexture(shader.PropBumpMap, shader.TextureSlot{Texture: bump})
	m.SetFloat(shader.PropBumpScale, 0.5)

	s := roundTrip(t, nil, m)
	if len(s.Materials) != 1 {
		t.Fatalf("got %d materials, want 1", len(s.Materials))
	}
	got := shader.ParticleFrom(s.Materials[0])
	want := shader.ParticleFrom(m)

	if got.RenderMode != want.RenderMode || got.ColorMode != want.ColorMode || got.FlipBookMode != want.FlipBookMode {
		t.Errorf("modes = %v/%v/%v, want %v/%v/%v", got.RenderMode, got.ColorMode, got.FlipBookMode,
			want.RenderMode, want.ColorMode, want.FlipBookMode)
	}
	if !got.SoftParticlesEnabled || got.SoftParticleFadeParams != want.SoftParticleFadeParams {
		t.Errorf("soft particles = %v %v", got.SoftParticlesEnabled, got.SoftParticleFadeParams)
	}
	if got.DistortionStrengthScaled != 0.75 || got.BumpScale != 0.5 {
		t.Errorf("floats = %v %v", got.DistortionStrengthScaled, got.BumpScale)
	}
	if !colorNear(got.Color, want.Color) {
		t.Errorf("Color = %v, want %v", got.Color, want.Color)
	}
	if got.MainTex.Texture == nil || got.MainTex.Texture.Name != "main" {
		t.Errorf("main texture = %+v", got.MainTex.Texture)
	}
	if got.MainTex.Scale != want.MainTex.Scale || got.MainTex.Offset != want.MainTex.Offset {
		t.Errorf("main texture ST = %v %v", got.MainTex.Scale, got.MainTex.Offset)
	}
	if got.BumpMap == nil || got.GrabTexture != nil {
		t.Errorf("bump=%v grab=%v", got.BumpMap, got.GrabTexture)
	}
}

func TestSkyboxRoundTrip(t *testing.T) {
	front := createTestTexture(t, "front")
	up := createTestTexture(t, "up")

	six := scene.NewMaterial("six", shader.Skybox6Sided)
	six.SetTexture(shader.PropFrontTex, shader.TextureSlot{Texture: front})
	six.SetTexture(shader.PropUpTex, shader.TextureSlot{Texture: up})
	six.SetFloat(shader.PropRotation, 90)

	pano := scene.NewMaterial("pano", shader.SkyboxPanoramic)
	pano.SetFloat(shader.PropMapping, float32(schema.SkyboxMappingLatitudeLongitudeLayout))
	pano.SetFloat(shader.PropImageType, float32(schema.SkyboxImage180))
	pano.SetFloat(shader.PropMirrorOnBack, 1)
	pano.SetFloat(shader.PropLayout, float32(schema.SkyboxLayoutOverUnder))

	proc := scene.NewMaterial("proc", shader.SkyboxProcedural)
	proc.SetFloat(shader.PropSunDisk, float32(schema.SkyboxSunDiskSimple))
	proc.SetFloat(shader.PropSunSize, 0.125)
	proc.SetColor(shader.PropSkyTint, color.Color{R: 0.25, G: 0.5, B: 1, A: 1})

	cube := scene.NewMaterial("cube", shader.SkyboxCubemap)
	cube.SetFloat(shader.PropExposure, 2)

	s := roundTrip(t, nil, six, pano, proc, cube)
	if len(s.Materials) != 4 {
		t.Fatalf("got %d materials, want 4", len(s.Materials))
	}

	d, err := shader.SkyboxFrom(shader.SkyboxShape6Sided, s.Materials[0])
	if err != nil {
		t.Fatal(err)
	}
	if d.SixSided.Rotation != 90 || d.SixSided.FrontTex == nil || d.SixSided.UpTex == nil || d.SixSided.BackTex != nil {
		t.Errorf("6 sided = %+v", d.SixSided)
	}

	d, _ = shader.SkyboxFrom(shader.SkyboxShapePanoramic, s.Materials[1])
	p := d.Panoramic
	if p.Mapping != schema.SkyboxMappingLatitudeLongitudeLayout || p.ImageType != schema.SkyboxImage180 ||
		!p.MirrorOnBack || p.Layout != schema.SkyboxLayoutOverUnder {
		t.Errorf("panoramic = %+v", p)
	}

	d, _ = shader.SkyboxFrom(shader.SkyboxShapeProcedural, s.Materials[2])
	if d.Procedural.SunDisk != schema.SkyboxSunDiskSimple || d.Procedural.SunSize != 0.125 {
		t.Errorf("procedural = %+v", d.Procedural)
	}
	if !colorNear(d.Procedural.SkyTint, color.Color{R: 0.25, G: 0.5, B: 1, A: 1}) {
		t.Errorf("SkyTint = %v", d.Procedural.SkyTint)
	}

	d, _ = shader.SkyboxFrom(shader.SkyboxShapeCubemap, s.Materials[3])
	if d.Cubemap.Exposure != 2 || d.Cubemap.Tex != nil {
		t.Errorf("cubemap = %+v", d.Cubemap)
	}
}

func TestMToonExport(t *testing.T) {
	lit := createTestTexture(t, "lit")
	normal := createTestTexture(t, "normal")

	m := scene.NewMaterial("toon", shader.VRMMToon)
	m.SetFloat(shader.PropBlendMode, float32(schema.MToonCutout))
	m.SetFloat(shader.PropCutoff, 0.25)
	m.SetFloat(shader.PropCullMode, float32(schema.CullOff))
	m.SetTexture(shader.PropMainTex, shader.TextureSlot{Texture: lit, Scale: math.Vec2{X: 1, Y: 1}})
	m.SetTexture(shader.PropBumpMap, shader.TextureSlot{Texture: normal})
	m.SetFloat(shader.PropBumpScale, 0.5)
	m.SetColor(shader.PropEmissionColor, color.Color{R: 1, G: 1, B: 0, A: 1})
	m.SetRenderQueue(2460)

	gm, _ := exportOne(t, m)
	if gm.AlphaMode != gltf.AlphaMask || gm.AlphaCutoff == nil || *gm.AlphaCutoff != 0.25 {
		t.Errorf("alpha = %v %v", gm.AlphaMode, gm.AlphaCutoff)
	}
	if !gm.DoubleSided {
		t.Error("cull Off should export double sided")
	}
	if gm.NormalTexture == nil || gm.NormalTexture.Scale == nil || *gm.NormalTexture.Scale != 0.5 {
		t.Errorf("normal texture = %+v", gm.NormalTexture)
	}
	if gm.EmissiveFactor != [3]float64{1, 1, 0} {
		t.Errorf("EmissiveFactor = %v", gm.EmissiveFactor)
	}

	rec, _ := schema.Get[schema.MaterialMToon](gm.Extensions, schema.ExtMaterialsMToon)
	if rec == nil {
		t.Fatal("mtoon payload missing")
	}
	if rec.RenderQueueOffsetNumber != 0 {
		t.Errorf("cutout offset = %d, want 0", rec.RenderQueueOffsetNumber)
	}
	if rec.Version != "38" {
		t.Errorf("Version = %q", rec.Version)
	}
}

func TestMToonRoundTrip(t *testing.T) {
	m := scene.NewMaterial("toon", shader.VRMMToon)
	m.SetFloat(shader.PropBlendMode, float32(schema.MToonTransparentWithZWrite))
	m.SetFloat(shader.PropOutlineWidthMode, float32(schema.MToonOutlineWidthWorldCoordinates))
	m.SetFloat(shader.PropOutlineWidth, 0.25)
	m.SetFloat(shader.PropRimFresnelPower, 4)
	m.SetColor(shader.PropShadeColor, color.Color{R: 0.5, G: 0.25, B: 0.75, A: 1})
	m.SetColor(shader.PropRimColor, color.Color{R: 0.1, G: 0.2, B: 0.3, A: 1})
	m.SetTexture(shader.PropShadeTexture, shader.TextureSlot{Texture: createTestTexture(t, "shade")})
	m.SetTexture(shader.PropMainTex, shader.TextureSlot{Scale: math.Vec2{X: 2, Y: 2}, Offset: math.Vec2{X: 0.5, Y: 0.25}})
	m.SetRenderQueue(shader.QueueZWrite + 4)

	s := roundTrip(t, nil, m)
	got := shader.MToonFrom(s.Materials[0])
	want := shader.MToonFrom(m)

	if got.Rendering != want.Rendering {
		t.Errorf("Rendering = %+v, want %+v", got.Rendering, want.Rendering)
	}
	if got.Rendering.RenderQueueOffsetNumber != 4 {
		t.Errorf("queue offset = %d, want 4", got.Rendering.RenderQueueOffsetNumber)
	}
	if got.Outline.OutlineWidthMode != want.Outline.OutlineWidthMode || got.Outline.OutlineWidthValue != 0.25 {
		t.Errorf("Outline = %+v", got.Outline)
	}
	if got.Rim.RimFresnelPowerValue != 4 || !colorNear(got.Rim.RimColor, want.Rim.RimColor) {
		t.Errorf("Rim = %+v", got.Rim)
	}
	if !colorNear(got.Color.ShadeColor, want.Color.ShadeColor) {
		t.Errorf("ShadeColor = %v, want %v", got.Color.ShadeColor, want.Color.ShadeColor)
	}
	if got.Color.ShadeMultiplyTexture == nil || got.Color.ShadeMultiplyTexture.Name != "shade" {
		t.Errorf("shade texture = %+v", got.Color.ShadeMultiplyTexture)
	}
	if got.TextureOption.MainTextureLeftBottomOriginScale != want.TextureOption.MainTextureLeftBottomOriginScale ||
		got.TextureOption.MainTextureLeftBottomOriginOffset != want.TextureOption.MainTextureLeftBottomOriginOffset {
		t.Errorf("TextureOption = %+v", got.TextureOption)
	}
}

func TestStandardRoundTrip(t *testing.T) {
	m := scene.NewMaterial("std", shader.Standard)
	m.SetFloat(shader.PropMode, float32(shader.StandardCutout))
	m.SetFloat(shader.PropCutoff, 0.25)
	m.SetFloat(shader.PropMetallic, 0.5)
	m.SetFloat(shader.PropGlossiness, 0.75)
	m.SetColor(shader.PropColor, color.Color{R: 1, G: 0.5, B: 0, A: 1})
	m.SetTexture(shader.PropMainTex, shader.TextureSlot{Texture: createTestTexture(t, "albedo")})
	m.SetTexture(shader.PropOcclusionMap, shader.TextureSlot{Texture: createTestTexture(t, "ao")})
	m.SetFloat(shader.PropOcclusionStrength, 0.5)
	m.SetKeyword(shader.KeywordEmission, true)
	m.SetColor(shader.PropEmissionColor, color.Color{R: 0, G: 0.5, B: 0, A: 1})

	gm, _ := exportOne(t, m)
	if gm.AlphaMode != gltf.AlphaMask || *gm.AlphaCutoff != 0.25 {
		t.Errorf("alpha = %v %v", gm.AlphaMode, gm.AlphaCutoff)
	}
	if *gm.PBRMetallicRoughness.RoughnessFactor != 0.25 {
		t.Errorf("RoughnessFactor = %v, want 0.25", *gm.PBRMetallicRoughness.RoughnessFactor)
	}

	s := roundTrip(t, nil, m)
	got := shader.StandardFrom(s.Materials[0])
	if got.Mode != shader.StandardCutout || got.Cutoff != 0.25 || got.Metallic != 0.5 || got.Glossiness != 0.75 {
		t.Errorf("StandardFrom = %+v", got)
	}
	if !colorNear(got.Color, color.Color{R: 1, G: 0.5, B: 0, A: 1}) {
		t.Errorf("Color = %v", got.Color)
	}
	if got.MainTex.Texture == nil || got.OcclusionMap == nil || got.OcclusionStrength != 0.5 {
		t.Errorf("textures = %+v", got)
	}
	if !got.EmissionEnabled || !colorNear(got.EmissionColor, color.Color{R: 0, G: 0.5, B: 0, A: 1}) {
		t.Errorf("emission = %v %v", got.EmissionEnabled, got.EmissionColor)
	}
}

func TestStandardModeRoundTrip(t *testing.T) {
	tests := []struct {
		mode  shader.StandardMode
		alpha gltf.AlphaMode
	}{
		{shader.StandardOpaque, gltf.AlphaOpaque},
		{shader.StandardCutout, gltf.AlphaMask},
		{shader.StandardFade, gltf.AlphaBlend},
		{shader.StandardTransparent, gltf.AlphaBlend},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(int(tt.mode)), func(t *testing.T) {
			m := scene.NewMaterial("std", shader.Standard)
			m.SetFloat(shader.PropMode, float32(tt.mode))

			gm, _ := exportOne(t, m)
			if gm.AlphaMode != tt.alpha {
				t.Errorf("AlphaMode = %v, want %v", gm.AlphaMode, tt.alpha)
			}

			s := roundTrip(t, nil, m)
			if got := shader.StandardFrom(s.Materials[0]).Mode; got != tt.mode {
				t.Errorf("Mode = %d, want %d", got, tt.mode)
			}
		})
	}
}

func TestStandardModeWithoutRecord(t *testing.T) {
	gm := &gltf.Material{Name: "plain", AlphaMode: gltf.AlphaBlend}
	m, err := MaterialImporter{}.Import(gm, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := shader.StandardFrom(m).Mode; got != shader.StandardFade {
		t.Errorf("Mode = %d, want Fade for a plain BLEND material", got)
	}
}

func TestUnlitRoundTrip(t *testing.T) {
	tests := []struct {
		shader string
		alpha  gltf.AlphaMode
	}{
		{shader.UnlitTexture, gltf.AlphaOpaque},
		{shader.UnlitTransparent, gltf.AlphaBlend},
		{shader.UnlitTransparentCutout, gltf.AlphaMask},
		{shader.VRMUnlitTransparentZWrite, gltf.AlphaBlend},
		{shader.UniUnlit, gltf.AlphaMask},
	}

	for _, tt := range tests {
		t.Run(tt.shader, func(t *testing.T) {
			m := scene.NewMaterial("u", tt.shader)
			m.SetFloat(shader.PropBlendMode, float32(schema.MToonCutout))
			m.SetColor(shader.PropColor, color.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})

			gm, _ := exportOne(t, m)
			if gm.AlphaMode != tt.alpha {
				t.Errorf("AlphaMode = %v, want %v", gm.AlphaMode, tt.alpha)
			}
			if !schema.Has(gm.Extensions, unlit.ExtensionName) {
				t.Error("KHR_materials_unlit missing")
			}

			s := roundTrip(t, nil, m)
			im := s.Materials[0]
			if im.Shader != tt.shader {
				t.Errorf("Shader = %q, want %q", im.Shader, tt.shader)
			}
			got := shader.UnlitFrom(shader.Lookup(im.Shader), im)
			want := shader.UnlitFrom(shader.Lookup(tt.shader), m)
			if got.RenderMode != want.RenderMode || !colorNear(got.Color, want.Color) {
				t.Errorf("UnlitFrom = %+v, want %+v", got, want)
			}
		})
	}
}

func TestImportPlainGLTFMaterial(t *testing.T) {
	plain := &gltf.Material{Name: "plain", PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(0.5),
	}}
	unlitMat := &gltf.Material{Name: "flat", Extensions: gltf.Extensions{unlit.ExtensionName: unlit.Unlit{}}}

	m, err := MaterialImporter{}.Import(plain, nil)
	if err != nil || m.Shader != shader.Standard {
		t.Errorf("plain material = %v, %v", m, err)
	}
	if g, _ := m.Float(shader.PropGlossiness); g != 0.5 {
		t.Errorf("_Glossiness = %v, want 0.5", g)
	}

	m, err = MaterialImporter{}.Import(unlitMat, nil)
	if err != nil || m.Shader != shader.UniUnlit {
		t.Errorf("unlit material = %v, %v", m, err)
	}

	if m, err := (MaterialImporter{}).Import(nil, nil); m != nil || err != nil {
		t.Errorf("Import(nil) = %v, %v", m, err)
	}
}

func TestImportErrors(t *testing.T) {
	unknown := &gltf.Material{Extensions: gltf.Extensions{
		schema.ExtMaterials: &schema.Materials{ShaderName: "Custom/Thing"},
	}}
	if _, err := (MaterialImporter{}).Import(unknown, nil); !errors.Is(err, shader.ErrUnsupportedShader) {
		t.Errorf("unknown shader error = %v", err)
	}

	missing := &gltf.Material{Extensions: gltf.Extensions{
		schema.ExtMaterials: &schema.Materials{ShaderName: shader.VRMMToon},
	}}
	if _, err := (MaterialImporter{}).Import(missing, nil); !errors.Is(err, ErrMissingPayload) {
		t.Errorf("missing payload error = %v", err)
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.01, 0.04045, 0.2, 0.5, 0.8, 1} {
		c := color.Color{R: v, G: v, B: v, A: v}
		got := gamma(linear(c), color.Black)
		if !colorNear(got, c) {
			t.Errorf("round trip %v = %v", c, got)
		}
	}
}
