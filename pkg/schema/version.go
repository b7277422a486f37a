package schema

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version errors.
var (
	ErrInvalidVersion      = errors.New("invalid VGO version")
	ErrIncompatibleVersion = errors.New("incompatible VGO version")
)

// Version is a major.minor.patch version marker.
type Version struct {
	Major int
	Minor int
	Patch int
}

// CurrentVersion is the version written into exported files.
var CurrentVersion = Version{Major: 0, Minor: 3, Patch: 0}

// String returns the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses a "major.minor.patch" string.
func ParseVersion(s string) (Version, error) {
	sv, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	return Version{Major: int(sv.Major()), Minor: int(sv.Minor()), Patch: int(sv.Patch())}, nil
}

// Compatibility is the result of comparing a file version with the reader's.
type Compatibility int

// Compatibility levels.
const (
	Compatible Compatibility = iota
	// NewerMinor means the file may use fields this reader ignores.
	NewerMinor
)

// CheckCompatibility compares a file version against reader.
// A differing major version is an error; a newer minor version is reported
// as NewerMinor.
func CheckCompatibility(file, reader Version) (Compatibility, error) {
	if file.Major != reader.Major {
		return Compatible, fmt.Errorf("%w: file %s, reader %s", ErrIncompatibleVersion, file, reader)
	}
	if file.Minor > reader.Minor {
		return NewerMinor, nil
	}
	return Compatible, nil
}

// Root is the document-level VGO extension.
type Root struct {
	GenVersion string `json:"genVersion"`
	Right      *Right `json:"right,omitempty"`
}

// Right describes authorship and licensing of the exported asset.
type Right struct {
	Title           string `json:"title,omitempty" yaml:"title"`
	Author          string `json:"author,omitempty" yaml:"author"`
	Organization    string `json:"organization,omitempty" yaml:"organization"`
	CreatedDate     string `json:"createdDate,omitempty" yaml:"created_date"`
	UpdatedDate     string `json:"updatedDate,omitempty" yaml:"updated_date"`
	Version         string `json:"version,omitempty" yaml:"version"`
	DistributionURL string `json:"distributionUrl,omitempty" yaml:"distribution_url"`
	LicenseURL      string `json:"licenseUrl,omitempty" yaml:"license_url"`
}
