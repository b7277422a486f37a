package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// MIME types.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeWebP = "image/webp"
	MimeBMP  = "image/bmp"
	MimeTGA  = "image/x-tga"
)

// ErrUnsupportedImage is returned for image data no decoder recognises.
var ErrUnsupportedImage = errors.New("unsupported image format")

// Sniff returns the MIME type of encoded image data. TGA has no magic
// number, so it is recognised by the file extension hint.
func Sniff(data []byte, nameHint string) string {
	kind, err := filetype.Match(data)
	if err == nil && kind.MIME.Value != "" {
		return kind.MIME.Value
	}
	if strings.EqualFold(filepath.Ext(nameHint), ".tga") {
		return MimeTGA
	}
	return ""
}

// Decode decodes image data of the given MIME type.
func Decode(data []byte, mime string) (image.Image, error) {
	r := bytes.NewReader(data)
	switch mime {
	case MimePNG:
		return png.Decode(r)
	case MimeJPEG:
		return jpeg.Decode(r)
	case MimeWebP:
		return webp.Decode(r)
	case MimeBMP:
		return bmp.Decode(r)
	case MimeTGA:
		return tga.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImage, mime)
	}
}

// Encode encodes img in the given format and returns the bytes and MIME type.
func Encode(img image.Image, format Format) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return nil, "", fmt.Errorf("encoding webp: %w", err)
		}
		return buf.Bytes(), MimeWebP, nil
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encoding png: %w", err)
		}
		return buf.Bytes(), MimePNG, nil
	}
}

// passthrough reports whether data of this MIME type can be embedded as-is.
func passthrough(mime string, format Format) bool {
	switch mime {
	case MimePNG, MimeJPEG:
		return true
	case MimeWebP:
		return format == FormatWebP
	default:
		return false
	}
}
