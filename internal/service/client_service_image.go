package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

const (
	defaultImageByteCeiling = 64 << 10

	// initialMaxWidth is the first downscale target; each ladder step
	// halves it until the encoded image fits or minMaxWidth is reached.
	initialMaxWidth = 512
	minMaxWidth     = 64

	initialJPEGQuality = 80
	minJPEGQuality     = 30
)

type imageService struct {
	byteCeiling int
}

// NewImageService builds the inline-image preparer with the given byte
// ceiling for encoded output.
func NewImageService(byteCeiling int) ImageService {
	if byteCeiling <= 0 {
		byteCeiling = defaultImageByteCeiling
	}
	return &imageService{byteCeiling: byteCeiling}
}

// Prepare implements [ImageService]. The input is decoded (PNG or JPEG),
// then re-encoded as JPEG at progressively smaller dimensions and lower
// quality until the result fits the ceiling. The output is a data URI
// suitable for embedding directly in a card draft.
func (s *imageService) Prepare(raw []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	for maxWidth := initialMaxWidth; maxWidth >= minMaxWidth; maxWidth /= 2 {
		scaled := downscale(img, maxWidth)

		for quality := initialJPEGQuality; quality >= minJPEGQuality; quality -= 10 {
			var buf bytes.Buffer
			if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: quality}); err != nil {
				return "", fmt.Errorf("encode image: %w", err)
			}

			if buf.Len() <= s.byteCeiling {
				return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
			}
		}
	}

	return "", ErrImageTooLarge
}

// ShrinkEmbedded implements [ImageService]. Data URIs already under the
// ceiling pass through untouched; oversized ones have their payload decoded
// and run through the same downscale/re-encode ladder as Prepare.
func (s *imageService) ShrinkEmbedded(dataURI string) (string, error) {
	idx := strings.Index(dataURI, ";base64,")
	if idx == -1 || !strings.HasPrefix(dataURI, "data:image/") {
		return "", fmt.Errorf("%w: not an embedded image data URI", ErrUnsupportedImage)
	}

	payload := dataURI[idx+len(";base64,"):]
	if base64.StdEncoding.DecodedLen(len(payload)) <= s.byteCeiling {
		return dataURI, nil
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	return s.Prepare(raw)
}

// downscale resizes img so its width does not exceed maxWidth, preserving
// the aspect ratio. Images already small enough pass through untouched.
func downscale(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth {
		return img
	}

	newWidth := maxWidth
	newHeight := int(float64(height) * float64(maxWidth) / float64(width))
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
