package animation

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"

	"github.com/disintegration/imaging"
)

// ErrNoFrames indicates an animation without any frames.
var ErrNoFrames = errors.New("animation has no frames")

// DecodeGIF decodes every frame of an animated GIF, composited the way a
// viewer would show it, and resizes each to width x height. A non-positive
// width or height keeps the original size.
func DecodeGIF(data []byte, width, height int) ([]image.Image, error) {
	decoded, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}
	if len(decoded.Image) == 0 {
		return nil, ErrNoFrames
	}

	bounds := image.Rect(0, 0, decoded.Config.Width, decoded.Config.Height)
	if bounds.Empty() {
		bounds = decoded.Image[0].Bounds()
	}
	canvas := image.NewNRGBA(bounds)

	frames := make([]image.Image, 0, len(decoded.Image))
	for index, frame := range decoded.Image {
		var previous *image.NRGBA
		disposal := disposalAt(decoded, index)
		if disposal == gif.DisposalPrevious {
			previous = imaging.Clone(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, resize(canvas, width, height))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return frames, nil
}

func disposalAt(decoded *gif.GIF, index int) byte {
	if index < len(decoded.Disposal) {
		return decoded.Disposal[index]
	}
	return 0
}

func resize(src *image.NRGBA, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return imaging.Clone(src)
	}
	return imaging.Resize(src, width, height, imaging.Lanczos)
}
