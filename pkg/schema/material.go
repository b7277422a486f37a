package schema

// Materials is the VGO_materials extension present on every exported material.
type Materials struct {
	ShaderName string `json:"shaderName"`

	// RenderMode is the Standard shader _Mode. glTF alpha modes cannot tell
	// Fade from Transparent.
	RenderMode *int `json:"renderMode,omitempty"`
}

// CullMode is the face culling mode shared by particle and toon materials.
type CullMode int

// Cull modes.
const (
	CullOff   CullMode = 0
	CullFront CullMode = 1
	CullBack  CullMode = 2
)

// DoubleSided reports whether the cull mode renders both faces.
// The second result is false for unrecognised values.
func (c CullMode) DoubleSided() (doubleSided bool, ok bool) {
	switch c {
	case CullOff:
		return true, true
	case CullFront, CullBack:
		return false, true
	default:
		return false, false
	}
}

// ParticleBlendMode is the particle render (blend) mode.
type ParticleBlendMode int

// Particle blend modes.
const (
	ParticleOpaque      ParticleBlendMode = 0
	ParticleCutout      ParticleBlendMode = 1
	ParticleFade        ParticleBlendMode = 2
	ParticleTransparent ParticleBlendMode = 3
	ParticleAdditive    ParticleBlendMode = 4
	ParticleSubtractive ParticleBlendMode = 5
	ParticleModulate    ParticleBlendMode = 6
)

// String returns the blend mode name.
func (m ParticleBlendMode) String() string {
	switch m {
	case ParticleOpaque:
		return "Opaque"
	case ParticleCutout:
		return "Cutout"
	case ParticleFade:
		return "Fade"
	case ParticleTransparent:
		return "Transparent"
	case ParticleAdditive:
		return "Additive"
	case ParticleSubtractive:
		return "Subtractive"
	case ParticleModulate:
		return "Modulate"
	default:
		return "Unknown"
	}
}

// ParticleColorMode controls how the particle color is blended with the albedo.
type ParticleColorMode int

// Particle color modes.
const (
	ParticleColorMultiply    ParticleColorMode = 0
	ParticleColorAdditive    ParticleColorMode = 1
	ParticleColorSubtractive ParticleColorMode = 2
	ParticleColorOverlay     ParticleColorMode = 3
	ParticleColorColor       ParticleColorMode = 4
	ParticleColorDifference  ParticleColorMode = 5
)

// ParticleFlipBookMode selects flip-book frame blending.
type ParticleFlipBookMode int

// Flip-book modes.
const (
	FlipBookSimple  ParticleFlipBookMode = 0
	FlipBookBlended ParticleFlipBookMode = 1
)

// MaterialParticle is the VGO_materials_particle extension.
// Colors are linear.
type MaterialParticle struct {
	RenderMode               ParticleBlendMode    `json:"renderMode"`
	ColorMode                ParticleColorMode    `json:"colorMode"`
	FlipBookMode             ParticleFlipBookMode `json:"flipBookMode"`
	CullMode                 CullMode             `json:"cullMode"`
	SoftParticlesEnabled     bool                 `json:"softParticlesEnabled"`
	SoftParticleFadeParams   []float32            `json:"softParticleFadeParams,omitempty"`
	CameraFadingEnabled      bool                 `json:"cameraFadingEnabled"`
	CameraFadeParams         []float32            `json:"cameraFadeParams,omitempty"`
	DistortionEnabled        bool                 `json:"distortionEnabled"`
	GrabTextureIndex         TextureIndex         `json:"grabTextureIndex,omitzero"`
	DistortionStrengthScaled float32              `json:"distortionStrengthScaled"`
	DistortionBlend          float32              `json:"distortionBlend"`
	ColorAddSubDiff          []float32            `json:"colorAddSubDiff,omitempty"`
	MainTexIndex             TextureIndex         `json:"mainTexIndex,omitzero"`
	MainTexSt                []float32            `json:"mainTexSt,omitempty"`
	Color                    []float32            `json:"color,omitempty"`
	Cutoff                   float32              `json:"cutoff"`
	MetallicGlossMapIndex    TextureIndex         `json:"metallicGlossMapIndex,omitzero"`
	Metallic                 float32              `json:"metallic"`
	Glossiness               float32              `json:"glossiness"`
	BumpMapIndex             TextureIndex         `json:"bumpMapIndex,omitzero"`
	BumpScale                float32              `json:"bumpScale"`
	LightingEnabled          bool                 `json:"lightingEnabled"`
	EmissionEnabled          bool                 `json:"emissionEnabled"`
	EmissionColor            []float32            `json:"emissionColor,omitempty"`
	EmissionMapIndex         TextureIndex         `json:"emissionMapIndex,omitzero"`
}

// Skybox enums.
type (
	SkyboxMapping   int
	SkyboxImageType int
	SkyboxLayout    int
	SkyboxSunDisk   int
)

// Skybox mapping, image type, 3D layout and sun disk values.
const (
	SkyboxMappingSixFramesLayout         SkyboxMapping = 0
	SkyboxMappingLatitudeLongitudeLayout SkyboxMapping = 1

	SkyboxImage360 SkyboxImageType = 0
	SkyboxImage180 SkyboxImageType = 1

	SkyboxLayoutNone       SkyboxLayout = 0
	SkyboxLayoutSideBySide SkyboxLayout = 1
	SkyboxLayoutOverUnder  SkyboxLayout = 2

	SkyboxSunDiskNone        SkyboxSunDisk = 0
	SkyboxSunDiskSimple      SkyboxSunDisk = 1
	SkyboxSunDiskHighQuality SkyboxSunDisk = 2
)

// MaterialSkybox is the VGO_materials_skybox extension. Which fields are
// populated depends on the skybox shader named in VGO_materials.
type MaterialSkybox struct {
	// 6 Sided, Cubemap, Panoramic
	Tint     []float32 `json:"tint,omitempty"`
	Exposure float32   `json:"exposure"`
	Rotation float32   `json:"rotation,omitempty"`

	// 6 Sided
	FrontTexIndex TextureIndex `json:"frontTexIndex,omitzero"`
	BackTexIndex  TextureIndex `json:"backTexIndex,omitzero"`
	LeftTexIndex  TextureIndex `json:"leftTexIndex,omitzero"`
	RightTexIndex TextureIndex `json:"rightTexIndex,omitzero"`
	UpTexIndex    TextureIndex `json:"upTexIndex,omitzero"`
	DownTexIndex  TextureIndex `json:"downTexIndex,omitzero"`

	// Cubemap
	TexIndex TextureIndex `json:"texIndex,omitzero"`

	// Panoramic
	MainTexIndex TextureIndex    `json:"mainTexIndex,omitzero"`
	Mapping      SkyboxMapping   `json:"mapping,omitempty"`
	ImageType    SkyboxImageType `json:"imageType,omitempty"`
	MirrorOnBack bool            `json:"mirrorOnBack,omitempty"`
	Layout       SkyboxLayout    `json:"layout,omitempty"`

	// Procedural
	SunDisk             SkyboxSunDisk `json:"sunDisk,omitempty"`
	SunSize             float32       `json:"sunSize,omitempty"`
	SunSizeConvergence  float32       `json:"sunSizeConvergence,omitempty"`
	AtmosphereThickness float32       `json:"atmosphereThickness,omitempty"`
	SkyTint             []float32     `json:"skyTint,omitempty"`
	GroundColor         []float32     `json:"groundColor,omitempty"`
}

// MToon enums.
type (
	MToonRenderMode       int
	MToonOutlineWidthMode int
	MToonOutlineColorMode int
)

// MToon render, outline width and outline color modes.
const (
	MToonOpaque                MToonRenderMode = 0
	MToonCutout                MToonRenderMode = 1
	MToonTransparent           MToonRenderMode = 2
	MToonTransparentWithZWrite MToonRenderMode = 3

	MToonOutlineWidthNone              MToonOutlineWidthMode = 0
	MToonOutlineWidthWorldCoordinates  MToonOutlineWidthMode = 1
	MToonOutlineWidthScreenCoordinates MToonOutlineWidthMode = 2

	MToonOutlineColorFixed         MToonOutlineColorMode = 0
	MToonOutlineColorMixedLighting MToonOutlineColorMode = 1
)

// String returns the render mode name.
func (m MToonRenderMode) String() string {
	switch m {
	case MToonOpaque:
		return "Opaque"
	case MToonCutout:
		return "Cutout"
	case MToonTransparent:
		return "Transparent"
	case MToonTransparentWithZWrite:
		return "TransparentWithZWrite"
	default:
		return "Unknown"
	}
}

// MaterialMToon is the VRMC_materials_mtoon extension. Colors are linear.
type MaterialMToon struct {
	Version string `json:"version"`

	// Rendering
	RenderMode              MToonRenderMode `json:"renderMode"`
	CullMode                CullMode        `json:"cullMode"`
	RenderQueueOffsetNumber int             `json:"renderQueueOffsetNumber"`

	// Color
	LitFactor             []float32    `json:"litFactor,omitempty"`
	LitMultiplyTexture    TextureIndex `json:"litMultiplyTexture,omitzero"`
	ShadeFactor           []float32    `json:"shadeFactor,omitempty"`
	ShadeMultiplyTexture  TextureIndex `json:"shadeMultiplyTexture,omitzero"`
	CutoutThresholdFactor float32      `json:"cutoutThresholdFactor"`

	// Lighting
	ShadingShiftFactor                         float32      `json:"shadingShiftFactor"`
	ShadingToonyFactor                         float32      `json:"shadingToonyFactor"`
	ShadowReceiveMultiplierFactor              float32      `json:"shadowReceiveMultiplierFactor"`
	ShadowReceiveMultiplierMultiplyTexture     TextureIndex `json:"shadowReceiveMultiplierMultiplyTexture,omitzero"`
	LitAndShadeMixingMultiplierFactor          float32      `json:"litAndShadeMixingMultiplierFactor"`
	LitAndShadeMixingMultiplierMultiplyTexture TextureIndex `json:"litAndShadeMixingMultiplierMultiplyTexture,omitzero"`
	LightColorAttenuationFactor                float32      `json:"lightColorAttenuationFactor"`
	GiIntensityFactor                          float32      `json:"giIntensityFactor"`
	NormalTexture                              TextureIndex `json:"normalTexture,omitzero"`
	NormalScaleFactor                          float32      `json:"normalScaleFactor"`

	// Emission
	EmissionFactor          []float32    `json:"emissionFactor,omitempty"`
	EmissionMultiplyTexture TextureIndex `json:"emissionMultiplyTexture,omitzero"`

	// MatCap
	AdditiveTexture TextureIndex `json:"additiveTexture,omitzero"`

	// Rim
	RimFactor             []float32    `json:"rimFactor,omitempty"`
	RimMultiplyTexture    TextureIndex `json:"rimMultiplyTexture,omitzero"`
	RimLightingMixFactor  float32      `json:"rimLightingMixFactor"`
	RimFresnelPowerFactor float32      `json:"rimFresnelPowerFactor"`
	RimLiftFactor         float32      `json:"rimLiftFactor"`

	// Outline
	OutlineWidthMode               MToonOutlineWidthMode `json:"outlineWidthMode"`
	OutlineWidthFactor             float32               `json:"outlineWidthFactor"`
	OutlineWidthMultiplyTexture    TextureIndex          `json:"outlineWidthMultiplyTexture,omitzero"`
	OutlineScaledMaxDistanceFactor float32               `json:"outlineScaledMaxDistanceFactor"`
	OutlineColorMode               MToonOutlineColorMode `json:"outlineColorMode"`
	OutlineFactor                  []float32             `json:"outlineFactor,omitempty"`
	OutlineLightingMixFactor       float32               `json:"outlineLightingMixFactor"`

	// Texture options
	MainTextureLeftBottomOriginScale  []float32    `json:"mainTextureLeftBottomOriginScale,omitempty"`
	MainTextureLeftBottomOriginOffset []float32    `json:"mainTextureLeftBottomOriginOffset,omitempty"`
	UvAnimationMaskTexture            TextureIndex `json:"uvAnimationMaskTexture,omitzero"`
	UvAnimationScrollXSpeedFactor     float32      `json:"uvAnimationScrollXSpeedFactor"`
	UvAnimationScrollYSpeedFactor     float32      `json:"uvAnimationScrollYSpeedFactor"`
	UvAnimationRotationSpeedFactor    float32      `json:"uvAnimationRotationSpeedFactor"`
}
