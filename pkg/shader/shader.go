// Package shader maps engine shader names to shader families and extracts
// flat parameter definitions from a material's shader properties.
package shader

import (
	"errors"
	"fmt"

	"github.com/Faultbox/univgo/pkg/schema"
)

// Shader names.
const (
	Standard = "Standard"

	UnlitColor             = "Unlit/Color"
	UnlitTexture           = "Unlit/Texture"
	UnlitTransparent       = "Unlit/Transparent"
	UnlitTransparentCutout = "Unlit/Transparent Cutout"
	UniUnlit               = "UniGLTF/UniUnlit"

	VRMUnlitTexture           = "VRM/UnlitTexture"
	VRMUnlitTransparent       = "VRM/UnlitTransparent"
	VRMUnlitCutout            = "VRM/UnlitCutout"
	VRMUnlitTransparentZWrite = "VRM/UnlitTransparentZWrite"
	VRMMToon                  = "VRM/MToon"

	ParticlesStandardSurface = "Particles/Standard Surface"
	ParticlesStandardUnlit   = "Particles/Standard Unlit"

	Skybox6Sided     = "Skybox/6 Sided"
	SkyboxCubemap    = "Skybox/Cubemap"
	SkyboxPanoramic  = "Skybox/Panoramic"
	SkyboxProcedural = "Skybox/Procedural"
)

// ErrUnsupportedShader is wrapped by UnsupportedShaderError.
var ErrUnsupportedShader = errors.New("shader not supported")

// UnsupportedShaderError names a shader no export or import path handles.
type UnsupportedShaderError struct {
	Shader string
}

func (e *UnsupportedShaderError) Error() string {
	return fmt.Sprintf("shader not supported: %q", e.Shader)
}

// Unwrap returns ErrUnsupportedShader.
func (e *UnsupportedShaderError) Unwrap() error {
	return ErrUnsupportedShader
}

// Family is a closed set of shader families.
type Family int

// Shader families.
const (
	FamilyUnknown Family = iota
	FamilyStandard
	FamilyUnlit
	FamilyParticle
	FamilySkybox
	FamilyMToon
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyStandard:
		return "standard"
	case FamilyUnlit:
		return "unlit"
	case FamilyParticle:
		return "particle"
	case FamilySkybox:
		return "skybox"
	case FamilyMToon:
		return "mtoon"
	default:
		return "unknown"
	}
}

// SkyboxShape selects the skybox variant.
type SkyboxShape int

// Skybox shapes.
const (
	SkyboxNone SkyboxShape = iota
	SkyboxShape6Sided
	SkyboxShapeCubemap
	SkyboxShapePanoramic
	SkyboxShapeProcedural
)

// Info describes a known shader.
type Info struct {
	Name   string
	Family Family

	// Skybox is set for FamilySkybox.
	Skybox SkyboxShape

	// UnlitMode is the fixed render mode of unlit shaders. When
	// UnlitModeFromProperty is set the mode is read from _BlendMode instead.
	UnlitMode             schema.MToonRenderMode
	UnlitModeFromProperty bool
	UnlitTextured         bool
}

var table = map[string]Info{
	Standard: {Family: FamilyStandard},

	UnlitColor:                {Family: FamilyUnlit, UnlitMode: schema.MToonOpaque},
	UnlitTexture:              {Family: FamilyUnlit, UnlitMode: schema.MToonOpaque, UnlitTextured: true},
	UnlitTransparent:          {Family: FamilyUnlit, UnlitMode: schema.MToonTransparent, UnlitTextured: true},
	UnlitTransparentCutout:    {Family: FamilyUnlit, UnlitMode: schema.MToonCutout, UnlitTextured: true},
	UniUnlit:                  {Family: FamilyUnlit, UnlitModeFromProperty: true, UnlitTextured: true},
	VRMUnlitTexture:           {Family: FamilyUnlit, UnlitMode: schema.MToonOpaque, UnlitTextured: true},
	VRMUnlitTransparent:       {Family: FamilyUnlit, UnlitMode: schema.MToonTransparent, UnlitTextured: true},
	VRMUnlitCutout:            {Family: FamilyUnlit, UnlitMode: schema.MToonCutout, UnlitTextured: true},
	VRMUnlitTransparentZWrite: {Family: FamilyUnlit, UnlitMode: schema.MToonTransparentWithZWrite, UnlitTextured: true},

	ParticlesStandardSurface: {Family: FamilyParticle},
	ParticlesStandardUnlit:   {Family: FamilyParticle},

	Skybox6Sided:     {Family: FamilySkybox, Skybox: SkyboxShape6Sided},
	SkyboxCubemap:    {Family: FamilySkybox, Skybox: SkyboxShapeCubemap},
	SkyboxPanoramic:  {Family: FamilySkybox, Skybox: SkyboxShapePanoramic},
	SkyboxProcedural: {Family: FamilySkybox, Skybox: SkyboxShapeProcedural},

	VRMMToon: {Family: FamilyMToon},
}

// Lookup returns the shader info for name. Unknown names return an Info
// with FamilyUnknown.
func Lookup(name string) Info {
	info, ok := table[name]
	if !ok {
		return Info{Name: name, Family: FamilyUnknown}
	}
	info.Name = name
	return info
}

// Names returns every known shader name.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}
