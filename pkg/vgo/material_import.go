package vgo

import (
	"fmt"
	"strconv"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/unlit"
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/scene"
	"github.com/Faultbox/univgo/pkg/shader"
	"github.com/Faultbox/univgo/pkg/texture"
)

// MaterialImporter rebuilds scene materials from glTF materials.
type MaterialImporter struct {
	Log *zap.Logger
}

// ShaderName returns the shader recorded on gm. Plain glTF materials map to
// UniUnlit when they carry KHR_materials_unlit and to Standard otherwise.
func ShaderName(gm *gltf.Material) (string, error) {
	rec, err := schema.Get[schema.Materials](gm.Extensions, schema.ExtMaterials)
	if err != nil {
		return "", err
	}
	if rec != nil && rec.ShaderName != "" {
		return rec.ShaderName, nil
	}
	if schema.Has(gm.Extensions, unlit.ExtensionName) {
		return shader.UniUnlit, nil
	}
	return shader.Standard, nil
}

// Import converts gm into a scene material, resolving texture indices with
// res. A nil material returns nil.
func (im MaterialImporter) Import(gm *gltf.Material, res *texture.Resolver) (*scene.Material, error) {
	if gm == nil {
		return nil, nil
	}

	name, err := ShaderName(gm)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", gm.Name, err)
	}
	info := shader.Lookup(name)
	m := scene.NewMaterial(gm.Name, name)
	refs := &textureRefs{res: res}

	switch info.Family {
	case shader.FamilyStandard:
		def := importStandard(gm, refs)
		if mode, ok, err := standardMode(gm); err != nil {
			return nil, fmt.Errorf("material %q: %w", gm.Name, err)
		} else if ok {
			def.Mode = mode
		}
		def.Apply(m)

	case shader.FamilyUnlit:
		importUnlit(info, gm, refs).Apply(m)

	case shader.FamilyParticle:
		rec, err := schema.Get[schema.MaterialParticle](gm.Extensions, schema.ExtMaterialsParticle)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", gm.Name, err)
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: %s on material %q", ErrMissingPayload, schema.ExtMaterialsParticle, gm.Name)
		}
		particleDefinition(rec, refs).Apply(m)

	case shader.FamilySkybox:
		rec, err := schema.Get[schema.MaterialSkybox](gm.Extensions, schema.ExtMaterialsSkybox)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", gm.Name, err)
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: %s on material %q", ErrMissingPayload, schema.ExtMaterialsSkybox, gm.Name)
		}
		skyboxDefinition(info.Skybox, rec, refs).Apply(m)

	case shader.FamilyMToon:
		rec, err := schema.Get[schema.MaterialMToon](gm.Extensions, schema.ExtMaterialsMToon)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", gm.Name, err)
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: %s on material %q", ErrMissingPayload, schema.ExtMaterialsMToon, gm.Name)
		}
		mtoonDefinition(rec, refs).Apply(m)

	default:
		return nil, &shader.UnsupportedShaderError{Shader: name}
	}

	if refs.err != nil {
		return nil, fmt.Errorf("material %q: %w", gm.Name, refs.err)
	}

	logger(im.Log).Debug("material imported",
		zap.String("material", m.Name),
		zap.String("shader", name))

	return m, nil
}

func baseColor(gm *gltf.Material) color.Color {
	if gm.PBRMetallicRoughness == nil || gm.PBRMetallicRoughness.BaseColorFactor == nil {
		return color.White
	}
	return color.FromFloat64(*gm.PBRMetallicRoughness.BaseColorFactor).Gamma()
}

func baseTexture(gm *gltf.Material, refs *textureRefs) *texture.Texture {
	if gm.PBRMetallicRoughness == nil || gm.PBRMetallicRoughness.BaseColorTexture == nil {
		return nil
	}
	return refs.index(gm.PBRMetallicRoughness.BaseColorTexture.Index)
}

func cutoff(gm *gltf.Material) float32 {
	if gm.AlphaCutoff == nil {
		return 0.5
	}
	return float32(*gm.AlphaCutoff)
}

func cullMode(doubleSided bool) schema.CullMode {
	if doubleSided {
		return schema.CullOff
	}
	return schema.CullBack
}

func importStandard(gm *gltf.Material, refs *textureRefs) shader.StandardDefinition {
	def := shader.StandardDefinition{
		Color:             baseColor(gm),
		MainTex:           shader.TextureSlot{Texture: baseTexture(gm, refs), Scale: shader.DefaultSlot.Scale},
		Cutoff:            cutoff(gm),
		GlossMapScale:     1,
		BumpScale:         1,
		OcclusionStrength: 1,
		EmissionColor:     color.Black,
	}

	switch gm.AlphaMode {
	case gltf.AlphaMask:
		def.Mode = shader.StandardCutout
	case gltf.AlphaBlend:
		def.Mode = shader.StandardFade
	default:
		def.Mode = shader.StandardOpaque
	}

	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		metallic, roughness := 1.0, 1.0
		if pbr.MetallicFactor != nil {
			metallic = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			roughness = *pbr.RoughnessFactor
		}
		def.Metallic = float32(metallic)
		def.Glossiness = float32(1 - roughness)
		if pbr.MetallicRoughnessTexture != nil {
			def.MetallicGlossMap = refs.index(pbr.MetallicRoughnessTexture.Index)
		}
	}

	if nt := gm.NormalTexture; nt != nil && nt.Index != nil {
		def.BumpMap = refs.index(*nt.Index)
		if nt.Scale != nil {
			def.BumpScale = float32(*nt.Scale)
		}
	}
	if ot := gm.OcclusionTexture; ot != nil && ot.Index != nil {
		def.OcclusionMap = refs.index(*ot.Index)
		if ot.Strength != nil {
			def.OcclusionStrength = float32(*ot.Strength)
		}
	}

	emissive := color.FromFloat64([4]float64{gm.EmissiveFactor[0], gm.EmissiveFactor[1], gm.EmissiveFactor[2], 1})
	if !emissive.IsBlack() || gm.EmissiveTexture != nil {
		def.EmissionEnabled = true
		def.EmissionColor = emissive.Gamma()
		if gm.EmissiveTexture != nil {
			def.EmissionMap = refs.index(gm.EmissiveTexture.Index)
		}
	}

	return def
}

// standardMode returns the Standard render mode recorded in VGO_materials.
func standardMode(gm *gltf.Material) (shader.StandardMode, bool, error) {
	rec, err := schema.Get[schema.Materials](gm.Extensions, schema.ExtMaterials)
	if err != nil || rec == nil || rec.RenderMode == nil {
		return 0, false, err
	}
	mode := shader.StandardMode(*rec.RenderMode)
	switch mode {
	case shader.StandardOpaque, shader.StandardCutout, shader.StandardFade, shader.StandardTransparent:
		return mode, true, nil
	}
	return 0, false, nil
}

func importUnlit(info shader.Info, gm *gltf.Material, refs *textureRefs) shader.UnlitDefinition {
	def := shader.UnlitDefinition{
		RenderMode:       info.UnlitMode,
		Color:            baseColor(gm),
		MainTex:          shader.TextureSlot{Texture: baseTexture(gm, refs), Scale: shader.DefaultSlot.Scale},
		Cutoff:           cutoff(gm),
		CullMode:         cullMode(gm.DoubleSided),
		ModeFromProperty: info.UnlitModeFromProperty,
	}
	if info.UnlitModeFromProperty {
		switch gm.AlphaMode {
		case gltf.AlphaMask:
			def.RenderMode = schema.MToonCutout
		case gltf.AlphaBlend:
			def.RenderMode = schema.MToonTransparent
		default:
			def.RenderMode = schema.MToonOpaque
		}
	}
	return def
}

func particleDefinition(rec *schema.MaterialParticle, refs *textureRefs) shader.ParticleDefinition {
	return shader.ParticleDefinition{
		RenderMode:               rec.RenderMode,
		ColorMode:                rec.ColorMode,
		FlipBookMode:             rec.FlipBookMode,
		CullMode:                 rec.CullMode,
		SoftParticlesEnabled:     rec.SoftParticlesEnabled,
		SoftParticleFadeParams:   math.Vec4FromArray(rec.SoftParticleFadeParams),
		CameraFadingEnabled:      rec.CameraFadingEnabled,
		CameraFadeParams:         math.Vec4FromArray(rec.CameraFadeParams),
		DistortionEnabled:        rec.DistortionEnabled,
		GrabTexture:              refs.get(rec.GrabTextureIndex),
		DistortionStrengthScaled: rec.DistortionStrengthScaled,
		DistortionBlend:          rec.DistortionBlend,
		ColorAddSubDiff:          gamma(rec.ColorAddSubDiff, color.Clear),
		MainTex:                  shader.SlotFromST(refs.get(rec.MainTexIndex), rec.MainTexSt),
		Color:                    gamma(rec.Color, color.White),
		Cutoff:                   rec.Cutoff,
		MetallicGlossMap:         refs.get(rec.MetallicGlossMapIndex),
		Metallic:                 rec.Metallic,
		Glossiness:               rec.Glossiness,
		BumpMap:                  refs.get(rec.BumpMapIndex),
		BumpScale:                rec.BumpScale,
		LightingEnabled:          rec.LightingEnabled,
		EmissionEnabled:          rec.EmissionEnabled,
		EmissionColor:            gamma(rec.EmissionColor, color.Black),
		EmissionMap:              refs.get(rec.EmissionMapIndex),
	}
}

func skyboxDefinition(shape shader.SkyboxShape, rec *schema.MaterialSkybox, refs *textureRefs) shader.SkyboxDefinition {
	def := shader.SkyboxDefinition{Shape: shape}
	tint := gamma(rec.Tint, color.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5})

	switch shape {
	case shader.SkyboxShape6Sided:
		def.SixSided = &shader.Skybox6SidedDefinition{
			Tint:     tint,
			Exposure: rec.Exposure,
			Rotation: rec.Rotation,
			FrontTex: refs.get(rec.FrontTexIndex),
			BackTex:  refs.get(rec.BackTexIndex),
			LeftTex:  refs.get(rec.LeftTexIndex),
			RightTex: refs.get(rec.RightTexIndex),
			UpTex:    refs.get(rec.UpTexIndex),
			DownTex:  refs.get(rec.DownTexIndex),
		}
	case shader.SkyboxShapeCubemap:
		def.Cubemap = &shader.SkyboxCubemapDefinition{
			Tint:     tint,
			Exposure: rec.Exposure,
			Rotation: rec.Rotation,
			Tex:      refs.get(rec.TexIndex),
		}
	case shader.SkyboxShapePanoramic:
		def.Panoramic = &shader.SkyboxPanoramicDefinition{
			Tint:         tint,
			Exposure:     rec.Exposure,
			Rotation:     rec.Rotation,
			MainTex:      refs.get(rec.MainTexIndex),
			Mapping:      rec.Mapping,
			ImageType:    rec.ImageType,
			MirrorOnBack: rec.MirrorOnBack,
			Layout:       rec.Layout,
		}
	case shader.SkyboxShapeProcedural:
		def.Procedural = &shader.SkyboxProceduralDefinition{
			SunDisk:             rec.SunDisk,
			SunSize:             rec.SunSize,
			SunSizeConvergence:  rec.SunSizeConvergence,
			AtmosphereThickness: rec.AtmosphereThickness,
			SkyTint:             gamma(rec.SkyTint, color.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}),
			GroundColor:         gamma(rec.GroundColor, color.Black),
			Exposure:            rec.Exposure,
		}
	}
	return def
}

func mtoonDefinition(rec *schema.MaterialMToon, refs *textureRefs) shader.MToonDefinition {
	version, err := strconv.Atoi(rec.Version)
	if err != nil {
		version = shader.MToonVersion
	}
	scale := math.Vec2{X: 1, Y: 1}
	if len(rec.MainTextureLeftBottomOriginScale) > 0 {
		scale = math.Vec2FromArray(rec.MainTextureLeftBottomOriginScale)
	}

	return shader.MToonDefinition{
		Meta: shader.MToonMeta{VersionNumber: version},
		Rendering: shader.MToonRendering{
			RenderMode:              rec.RenderMode,
			CullMode:                rec.CullMode,
			RenderQueueOffsetNumber: shader.ClampQueueOffset(rec.RenderMode, rec.RenderQueueOffsetNumber),
		},
		Color: shader.MToonColor{
			LitColor:             gamma(rec.LitFactor, color.White),
			LitMultiplyTexture:   refs.get(rec.LitMultiplyTexture),
			ShadeColor:           gamma(rec.ShadeFactor, color.White),
			ShadeMultiplyTexture: refs.get(rec.ShadeMultiplyTexture),
			CutoutThresholdValue: rec.CutoutThresholdFactor,
		},
		Lighting: shader.MToonLighting{
			LitAndShadeMixing: shader.MToonLitAndShadeMixing{
				ShadingShiftValue:                          rec.ShadingShiftFactor,
				ShadingToonyValue:                          rec.ShadingToonyFactor,
				ShadowReceiveMultiplierValue:               rec.ShadowReceiveMultiplierFactor,
				ShadowReceiveMultiplierMultiplyTexture:     refs.get(rec.ShadowReceiveMultiplierMultiplyTexture),
				LitAndShadeMixingMultiplierValue:           rec.LitAndShadeMixingMultiplierFactor,
				LitAndShadeMixingMultiplierMultiplyTexture: refs.get(rec.LitAndShadeMixingMultiplierMultiplyTexture),
			},
			LightingInfluence: shader.MToonLightingInfluence{
				LightColorAttenuationValue: rec.LightColorAttenuationFactor,
				GiIntensityValue:           rec.GiIntensityFactor,
			},
			Normal: shader.MToonNormal{
				NormalTexture:    refs.get(rec.NormalTexture),
				NormalScaleValue: rec.NormalScaleFactor,
			},
		},
		Emission: shader.MToonEmission{
			EmissionColor:           gamma(rec.EmissionFactor, color.Black),
			EmissionMultiplyTexture: refs.get(rec.EmissionMultiplyTexture),
		},
		MatCap: shader.MToonMatCap{
			AdditiveTexture: refs.get(rec.AdditiveTexture),
		},
		Rim: shader.MToonRim{
			RimColor:             gamma(rec.RimFactor, color.Black),
			RimMultiplyTexture:   refs.get(rec.RimMultiplyTexture),
			RimLightingMixValue:  rec.RimLightingMixFactor,
			RimFresnelPowerValue: rec.RimFresnelPowerFactor,
			RimLiftValue:         rec.RimLiftFactor,
		},
		Outline: shader.MToonOutline{
			OutlineWidthMode:              rec.OutlineWidthMode,
			OutlineWidthValue:             rec.OutlineWidthFactor,
			OutlineWidthMultiplyTexture:   refs.get(rec.OutlineWidthMultiplyTexture),
			OutlineScaledMaxDistanceValue: rec.OutlineScaledMaxDistanceFactor,
			OutlineColorMode:              rec.OutlineColorMode,
			OutlineColor:                  gamma(rec.OutlineFactor, color.Black),
			OutlineLightingMixValue:       rec.OutlineLightingMixFactor,
		},
		TextureOption: shader.MToonTextureOption{
			MainTextureLeftBottomOriginScale:  scale,
			MainTextureLeftBottomOriginOffset: math.Vec2FromArray(rec.MainTextureLeftBottomOriginOffset),
			UvAnimationMaskTexture:            refs.get(rec.UvAnimationMaskTexture),
			UvAnimationScrollXSpeedValue:      rec.UvAnimationScrollXSpeedFactor,
			UvAnimationScrollYSpeedValue:      rec.UvAnimationScrollYSpeedFactor,
			UvAnimationRotationSpeedValue:     rec.UvAnimationRotationSpeedFactor,
		},
	}
}
