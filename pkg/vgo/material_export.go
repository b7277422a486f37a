package vgo

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/unlit"
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/scene"
	"github.com/Faultbox/univgo/pkg/shader"
	"github.com/Faultbox/univgo/pkg/texture"
)

// MaterialExporter converts scene materials into glTF materials carrying the
// VGO extensions.
type MaterialExporter struct {
	Log *zap.Logger
}

// Export converts m, allocating its textures in tbl. A nil material returns
// nil. Shaders outside the known families return
// *shader.UnsupportedShaderError and no record.
func (e MaterialExporter) Export(m *scene.Material, tbl *texture.Table) (*gltf.Material, error) {
	if m == nil {
		return nil, nil
	}

	info := shader.Lookup(m.Shader)

	var (
		gm  *gltf.Material
		err error
	)
	rec := &schema.Materials{ShaderName: m.Shader}
	switch info.Family {
	case shader.FamilyStandard:
		def := shader.StandardFrom(m)
		mode := int(def.Mode)
		rec.RenderMode = &mode
		gm, err = exportStandard(def, tbl)
	case shader.FamilyUnlit:
		gm, err = exportUnlit(shader.UnlitFrom(info, m), tbl)
	case shader.FamilyParticle:
		gm, err = exportParticle(info, shader.ParticleFrom(m), tbl)
	case shader.FamilySkybox:
		gm, err = exportSkybox(m, tbl)
	case shader.FamilyMToon:
		gm, err = exportMToon(shader.MToonFrom(m), tbl)
	default:
		return nil, &shader.UnsupportedShaderError{Shader: m.Shader}
	}
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", m.Name, err)
	}

	gm.Name = m.Name
	setExtension(&gm.Extensions, schema.ExtMaterials, rec)

	logger(e.Log).Debug("material exported",
		zap.String("material", m.Name),
		zap.String("shader", m.Shader),
		zap.Stringer("family", info.Family))

	return gm, nil
}

func exportStandard(def shader.StandardDefinition, tbl *texture.Table) (*gltf.Material, error) {
	slots := &textureSlots{tbl: tbl}
	gm := &gltf.Material{PBRMetallicRoughness: &gltf.PBRMetallicRoughness{}}
	pbr := gm.PBRMetallicRoughness

	switch def.Mode {
	case shader.StandardCutout:
		gm.AlphaMode = gltf.AlphaMask
		gm.AlphaCutoff = gltf.Float(float64(def.Cutoff))
	case shader.StandardFade, shader.StandardTransparent:
		gm.AlphaMode = gltf.AlphaBlend
	default:
		gm.AlphaMode = gltf.AlphaOpaque
	}

	pbr.BaseColorFactor = factor4(linear(def.Color))
	if idx := slots.copy(def.MainTex.Texture, texture.SRGB); idx.Valid() {
		pbr.BaseColorTexture = textureInfo(idx)
	}

	if def.MetallicGlossMap != nil {
		idx := slots.convert(def.MetallicGlossMap, texture.MetallicRoughnessConverter{SmoothnessScale: def.GlossMapScale})
		if idx.Valid() {
			pbr.MetallicRoughnessTexture = textureInfo(idx)
		}
		pbr.MetallicFactor = gltf.Float(1)
		pbr.RoughnessFactor = gltf.Float(1)
	} else {
		pbr.MetallicFactor = gltf.Float(float64(def.Metallic))
		pbr.RoughnessFactor = gltf.Float(float64(1 - def.Glossiness))
	}

	if idx := slots.convert(def.BumpMap, texture.NormalConverter{}); idx.Valid() {
		gm.NormalTexture = &gltf.NormalTexture{Index: idx.Ptr(), Scale: gltf.Float(float64(def.BumpScale))}
	}
	if idx := slots.copy(def.OcclusionMap, texture.Linear); idx.Valid() {
		gm.OcclusionTexture = &gltf.OcclusionTexture{Index: idx.Ptr(), Strength: gltf.Float(float64(def.OcclusionStrength))}
	}

	if def.EmissionActive() {
		gm.EmissiveFactor = def.EmissionColor.Linear().RGB()
		if idx := slots.copy(def.EmissionMap, texture.SRGB); idx.Valid() {
			gm.EmissiveTexture = textureInfo(idx)
		}
	}

	if slots.err != nil {
		return nil, slots.err
	}
	return gm, nil
}

func exportUnlit(def shader.UnlitDefinition, tbl *texture.Table) (*gltf.Material, error) {
	slots := &textureSlots{tbl: tbl}
	gm := renderModeMaterial(def.RenderMode, def.Cutoff)
	gm.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{
		BaseColorFactor: factor4(linear(def.Color)),
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	if idx := slots.copy(def.MainTex.Texture, texture.SRGB); idx.Valid() {
		gm.PBRMetallicRoughness.BaseColorTexture = textureInfo(idx)
	}
	if def.ModeFromProperty {
		if ds, ok := def.CullMode.DoubleSided(); ok {
			gm.DoubleSided = ds
		}
	}
	setExtension(&gm.Extensions, unlit.ExtensionName, unlit.Unlit{})

	if slots.err != nil {
		return nil, slots.err
	}
	return gm, nil
}

func exportParticle(info shader.Info, def shader.ParticleDefinition, tbl *texture.Table) (*gltf.Material, error) {
	rec, err := BuildParticle(def, tbl)
	if err != nil {
		return nil, err
	}

	gm := &gltf.Material{}
	if mode, ok := particleAlphaMode(rec.RenderMode); ok {
		gm.AlphaMode = mode
	}
	if rec.RenderMode == schema.ParticleCutout {
		gm.AlphaCutoff = gltf.Float(float64(rec.Cutoff))
	}
	if ds, ok := rec.CullMode.DoubleSided(); ok {
		gm.DoubleSided = ds
	}

	if rec.Color != nil || rec.MainTexIndex.Valid() {
		gm.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{BaseColorFactor: factor4(rec.Color)}
		if rec.MainTexIndex.Valid() {
			gm.PBRMetallicRoughness.BaseColorTexture = textureInfo(rec.MainTexIndex)
		}
	}
	if rec.BumpMapIndex.Valid() {
		gm.NormalTexture = &gltf.NormalTexture{Index: rec.BumpMapIndex.Ptr()}
	}
	if rec.EmissionEnabled {
		gm.EmissiveFactor = factor3(rec.EmissionColor)
		if rec.EmissionMapIndex.Valid() {
			gm.EmissiveTexture = textureInfo(rec.EmissionMapIndex)
		}
	}

	setExtension(&gm.Extensions, schema.ExtMaterialsParticle, rec)
	if info.Name == shader.ParticlesStandardUnlit {
		setExtension(&gm.Extensions, unlit.ExtensionName, unlit.Unlit{})
	}
	return gm, nil
}

func exportSkybox(m *scene.Material, tbl *texture.Table) (*gltf.Material, error) {
	rec, err := BuildSkybox(m.Shader, m, tbl)
	if err != nil {
		return nil, err
	}
	gm := &gltf.Material{PBRMetallicRoughness: &gltf.PBRMetallicRoughness{}}
	setExtension(&gm.Extensions, schema.ExtMaterialsSkybox, rec)
	return gm, nil
}

func exportMToon(def shader.MToonDefinition, tbl *texture.Table) (*gltf.Material, error) {
	rec, err := BuildMToon(def, tbl)
	if err != nil {
		return nil, err
	}

	gm := renderModeMaterial(rec.RenderMode, rec.CutoutThresholdFactor)
	if ds, ok := rec.CullMode.DoubleSided(); ok {
		gm.DoubleSided = ds
	}

	gm.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{BaseColorFactor: factor4(rec.LitFactor)}
	if rec.LitMultiplyTexture.Valid() {
		gm.PBRMetallicRoughness.BaseColorTexture = textureInfo(rec.LitMultiplyTexture)
	}
	if rec.NormalTexture.Valid() {
		gm.NormalTexture = &gltf.NormalTexture{
			Index: rec.NormalTexture.Ptr(),
			Scale: gltf.Float(float64(rec.NormalScaleFactor)),
		}
	}
	gm.EmissiveFactor = factor3(rec.EmissionFactor)
	if rec.EmissionMultiplyTexture.Valid() {
		gm.EmissiveTexture = textureInfo(rec.EmissionMultiplyTexture)
	}

	setExtension(&gm.Extensions, schema.ExtMaterialsMToon, rec)
	return gm, nil
}

// renderModeMaterial returns a material with the alpha fields of a toon or
// unlit render mode.
func renderModeMaterial(mode schema.MToonRenderMode, cutoff float32) *gltf.Material {
	gm := &gltf.Material{}
	switch mode {
	case schema.MToonOpaque:
		gm.AlphaMode = gltf.AlphaOpaque
	case schema.MToonCutout:
		gm.AlphaMode = gltf.AlphaMask
		gm.AlphaCutoff = gltf.Float(float64(cutoff))
	case schema.MToonTransparent, schema.MToonTransparentWithZWrite:
		gm.AlphaMode = gltf.AlphaBlend
	}
	return gm
}

// particleAlphaMode maps a particle blend mode to a glTF alpha mode. The
// second result is false for unrecognised modes.
func particleAlphaMode(m schema.ParticleBlendMode) (gltf.AlphaMode, bool) {
	switch m {
	case schema.ParticleOpaque:
		return gltf.AlphaOpaque, true
	case schema.ParticleCutout:
		return gltf.AlphaMask, true
	case schema.ParticleFade, schema.ParticleTransparent, schema.ParticleAdditive,
		schema.ParticleSubtractive, schema.ParticleModulate:
		return gltf.AlphaBlend, true
	default:
		return gltf.AlphaOpaque, false
	}
}

func textureInfo(idx schema.TextureIndex) *gltf.TextureInfo {
	i, _ := idx.Get()
	return &gltf.TextureInfo{Index: i}
}
