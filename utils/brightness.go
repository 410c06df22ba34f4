package utils

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// TooDarkThreshold is the 0-255 brightness below which a captured photo
// is rejected.
const TooDarkThreshold = 60

// ErrBrightnessUnavailable means the image could not be decoded or
// sampled; the estimate degrades to "unavailable", it is never fatal.
var ErrBrightnessUnavailable = errors.New("brightness unavailable")

const sampleSize = 8

// EstimateBrightness decodes a photo, downscales it to an 8x8 sample and
// returns the average luma (0.299R + 0.587G + 0.114B) over the 64
// pixels, rounded to the nearest integer on the 0-255 scale.
func EstimateBrightness(r io.Reader) (float64, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return 0, ErrBrightnessUnavailable
	}
	if src.Bounds().Empty() {
		return 0, ErrBrightnessUnavailable
	}

	small := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), src, src.Bounds(), draw.Src, nil)

	var sum float64
	var count int
	for y := 0; y < sampleSize; y++ {
		for x := 0; x < sampleSize; x++ {
			px := small.RGBAAt(x, y)
			sum += Luma(px.R, px.G, px.B)
			count++
		}
	}
	if count == 0 {
		return 0, ErrBrightnessUnavailable
	}
	return math.Round(sum / float64(count)), nil
}

// EstimateBrightnessFile estimates the brightness of an on-device photo
// by path.
func EstimateBrightnessFile(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, ErrBrightnessUnavailable
	}
	defer f.Close()
	return EstimateBrightness(f)
}

// Luma is the Rec. 601 weighted brightness of one pixel.
func Luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// IsTooDark reports whether a capture at this brightness should be
// rejected.
func IsTooDark(brightness float64) bool { return brightness < TooDarkThreshold }

// DisplayLux converts a stored 0-255 brightness into the approximate
// illuminance figure shown next to a photo. The x4 factor is the app's
// historical display convention, not a physical unit conversion.
func DisplayLux(brightness float64) int { return int(math.Round(brightness * 4)) }
