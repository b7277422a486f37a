package vgo

import (
	"strconv"

	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/shader"
	"github.com/Faultbox/univgo/pkg/texture"
)

// BuildParticle converts a particle definition into its extension record,
// allocating its five textures in tbl.
func BuildParticle(def shader.ParticleDefinition, tbl *texture.Table) (*schema.MaterialParticle, error) {
	slots := &textureSlots{tbl: tbl}

	rec := &schema.MaterialParticle{
		RenderMode:               def.RenderMode,
		ColorMode:                def.ColorMode,
		FlipBookMode:             def.FlipBookMode,
		CullMode:                 def.CullMode,
		SoftParticlesEnabled:     def.SoftParticlesEnabled,
		SoftParticleFadeParams:   def.SoftParticleFadeParams.ToArray(),
		CameraFadingEnabled:      def.CameraFadingEnabled,
		CameraFadeParams:         def.CameraFadeParams.ToArray(),
		DistortionEnabled:        def.DistortionEnabled,
		GrabTextureIndex:         slots.copy(def.GrabTexture, texture.SRGB),
		DistortionStrengthScaled: def.DistortionStrengthScaled,
		DistortionBlend:          def.DistortionBlend,
		ColorAddSubDiff:          linear(def.ColorAddSubDiff),
		MainTexIndex:             slots.copy(def.MainTex.Texture, texture.SRGB),
		MainTexSt:                def.MainTex.ST().ToArray(),
		Color:                    linear(def.Color),
		Cutoff:                   def.Cutoff,
		MetallicGlossMapIndex:    slots.copy(def.MetallicGlossMap, texture.SRGB),
		Metallic:                 def.Metallic,
		Glossiness:               def.Glossiness,
		BumpMapIndex:             slots.convert(def.BumpMap, texture.NormalConverter{}),
		BumpScale:                def.BumpScale,
		LightingEnabled:          def.LightingEnabled,
		EmissionEnabled:          def.EmissionEnabled,
		EmissionColor:            linear(def.EmissionColor),
		EmissionMapIndex:         slots.copy(def.EmissionMap, texture.SRGB),
	}
	if slots.err != nil {
		return nil, slots.err
	}
	return rec, nil
}

// BuildSkybox extracts and converts the skybox parameters of the named
// shader. Names outside the skybox family return *shader.UnsupportedShaderError.
func BuildSkybox(shaderName string, p shader.Properties, tbl *texture.Table) (*schema.MaterialSkybox, error) {
	info := shader.Lookup(shaderName)
	if info.Family != shader.FamilySkybox {
		return nil, &shader.UnsupportedShaderError{Shader: shaderName}
	}
	def, err := shader.SkyboxFrom(info.Skybox, p)
	if err != nil {
		return nil, &shader.UnsupportedShaderError{Shader: shaderName}
	}

	slots := &textureSlots{tbl: tbl}
	var rec *schema.MaterialSkybox

	switch {
	case def.SixSided != nil:
		v := def.SixSided
		rec = &schema.MaterialSkybox{
			Tint:          linear(v.Tint),
			Exposure:      v.Exposure,
			Rotation:      v.Rotation,
			FrontTexIndex: slots.copy(v.FrontTex, texture.SRGB),
			BackTexIndex:  slots.copy(v.BackTex, texture.SRGB),
			LeftTexIndex:  slots.copy(v.LeftTex, texture.SRGB),
			RightTexIndex: slots.copy(v.RightTex, texture.SRGB),
			UpTexIndex:    slots.copy(v.UpTex, texture.SRGB),
			DownTexIndex:  slots.copy(v.DownTex, texture.SRGB),
		}
	case def.Cubemap != nil:
		v := def.Cubemap
		rec = &schema.MaterialSkybox{
			Tint:     linear(v.Tint),
			Exposure: v.Exposure,
			Rotation: v.Rotation,
			TexIndex: slots.copy(v.Tex, texture.SRGB),
		}
	case def.Panoramic != nil:
		v := def.Panoramic
		rec = &schema.MaterialSkybox{
			Tint:         linear(v.Tint),
			Exposure:     v.Exposure,
			Rotation:     v.Rotation,
			MainTexIndex: slots.copy(v.MainTex, texture.SRGB),
			Mapping:      v.Mapping,
			ImageType:    v.ImageType,
			MirrorOnBack: v.MirrorOnBack,
			Layout:       v.Layout,
		}
	case def.Procedural != nil:
		v := def.Procedural
		rec = &schema.MaterialSkybox{
			SunDisk:             v.SunDisk,
			SunSize:             v.SunSize,
			SunSizeConvergence:  v.SunSizeConvergence,
			AtmosphereThickness: v.AtmosphereThickness,
			SkyTint:             linear(v.SkyTint),
			GroundColor:         linear(v.GroundColor),
			Exposure:            v.Exposure,
		}
	}

	if slots.err != nil {
		return nil, slots.err
	}
	return rec, nil
}

// BuildMToon converts a toon definition into the VRMC_materials_mtoon record.
func BuildMToon(def shader.MToonDefinition, tbl *texture.Table) (*schema.MaterialMToon, error) {
	slots := &textureSlots{tbl: tbl}
	mix := def.Lighting.LitAndShadeMixing
	opt := def.TextureOption

	rec := &schema.MaterialMToon{
		Version: strconv.Itoa(def.Meta.VersionNumber),

		RenderMode:              def.Rendering.RenderMode,
		CullMode:                def.Rendering.CullMode,
		RenderQueueOffsetNumber: shader.ClampQueueOffset(def.Rendering.RenderMode, def.Rendering.RenderQueueOffsetNumber),

		LitFactor:             linear(def.Color.LitColor),
		LitMultiplyTexture:    slots.copy(def.Color.LitMultiplyTexture, texture.SRGB),
		ShadeFactor:           linear(def.Color.ShadeColor),
		ShadeMultiplyTexture:  slots.copy(def.Color.ShadeMultiplyTexture, texture.SRGB),
		CutoutThresholdFactor: def.Color.CutoutThresholdValue,

		ShadingShiftFactor:                         mix.ShadingShiftValue,
		ShadingToonyFactor:                         mix.ShadingToonyValue,
		ShadowReceiveMultiplierFactor:              mix.ShadowReceiveMultiplierValue,
		ShadowReceiveMultiplierMultiplyTexture:     slots.copy(mix.ShadowReceiveMultiplierMultiplyTexture, texture.SRGB),
		LitAndShadeMixingMultiplierFactor:          mix.LitAndShadeMixingMultiplierValue,
		LitAndShadeMixingMultiplierMultiplyTexture: slots.copy(mix.LitAndShadeMixingMultiplierMultiplyTexture, texture.SRGB),
		LightColorAttenuationFactor:                def.Lighting.LightingInfluence.LightColorAttenuationValue,
		GiIntensityFactor:                          def.Lighting.LightingInfluence.GiIntensityValue,
		NormalTexture:                              slots.convert(def.Lighting.Normal.NormalTexture, texture.NormalConverter{}),
		NormalScaleFactor:                          def.Lighting.Normal.NormalScaleValue,

		EmissionFactor:          linear(def.Emission.EmissionColor),
		EmissionMultiplyTexture: slots.copy(def.Emission.EmissionMultiplyTexture, texture.SRGB),

		AdditiveTexture: slots.copy(def.MatCap.AdditiveTexture, texture.SRGB),

		RimFactor:             linear(def.Rim.RimColor),
		RimMultiplyTexture:    slots.copy(def.Rim.RimMultiplyTexture, texture.SRGB),
		RimLightingMixFactor:  def.Rim.RimLightingMixValue,
		RimFresnelPowerFactor: def.Rim.RimFresnelPowerValue,
		RimLiftFactor:         def.Rim.RimLiftValue,

		OutlineWidthMode:               def.Outline.OutlineWidthMode,
		OutlineWidthFactor:             def.Outline.OutlineWidthValue,
		OutlineWidthMultiplyTexture:    slots.copy(def.Outline.OutlineWidthMultiplyTexture, texture.SRGB),
		OutlineScaledMaxDistanceFactor: def.Outline.OutlineScaledMaxDistanceValue,
		OutlineColorMode:               def.Outline.OutlineColorMode,
		OutlineFactor:                  linear(def.Outline.OutlineColor),
		OutlineLightingMixFactor:       def.Outline.OutlineLightingMixValue,

		MainTextureLeftBottomOriginScale:  opt.MainTextureLeftBottomOriginScale.ToArray(),
		MainTextureLeftBottomOriginOffset: opt.MainTextureLeftBottomOriginOffset.ToArray(),
		UvAnimationMaskTexture:            slots.copy(opt.UvAnimationMaskTexture, texture.SRGB),
		UvAnimationScrollXSpeedFactor:     opt.UvAnimationScrollXSpeedValue,
		UvAnimationScrollYSpeedFactor:     opt.UvAnimationScrollYSpeedValue,
		UvAnimationRotationSpeedFactor:    opt.UvAnimationRotationSpeedValue,
	}
	if slots.err != nil {
		return nil, slots.err
	}
	return rec, nil
}
