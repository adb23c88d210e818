// Package baking implements the reference layer compositor. It flattens a
// bake job's source faces onto a tinted canvas and returns the encoded
// result. Image plumbing goes through the imaging library; bmp and webp
// sources decode via the extended image codecs.
package baking

import (
	"bytes"
	"context"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"weft/internal/assets"
	"weft/internal/logging"
	"weft/internal/services"
)

// Compositor is the in-process assets.Baker.
type Compositor struct {
	log *slog.Logger
}

func New(logger *slog.Logger) *Compositor {
	return &Compositor{log: logging.NewComponentLogger(logger, "baking")}
}

// Bake composites the job's inputs in paint order over a canvas primed with
// the layer tint. Inputs without decoded bytes fall through to the canvas,
// which is the default-substitution behavior the pipeline expects.
func (c *Compositor) Bake(ctx context.Context, job assets.BakeJob) ([]byte, error) {
	if job.Width <= 0 || job.Height <= 0 {
		return nil, services.Wrap(services.ErrValidation, "baking", "bake", "non-positive canvas dimensions", nil)
	}

	canvas := imaging.New(job.Width, job.Height, tintColor(job.Tint))
	composited := 0
	for _, input := range job.Inputs {
		if err := ctx.Err(); err != nil {
			return nil, services.Wrap(services.ErrTimeout, "baking", "bake", "bake cancelled", err)
		}
		if len(input.Data) == 0 {
			continue
		}
		src, err := imaging.Decode(bytes.NewReader(input.Data))
		if err != nil {
			c.log.Debug("source face decode failed",
				logging.Args(logging.Int(logging.FieldFace, input.Face), logging.Error(err))...)
			continue
		}
		if src.Bounds().Dx() != job.Width || src.Bounds().Dy() != job.Height {
			src = imaging.Resize(src, job.Width, job.Height, imaging.Lanczos)
		}
		opacity := float64(clampWeight(input.AlphaWeight)) * float64(maskOpacity(job.AlphaMasks))
		canvas = imaging.Overlay(canvas, src, src.Bounds().Min, opacity)
		composited++
	}

	tinted := imaging.AdjustFunc(canvas, func(px color.NRGBA) color.NRGBA {
		px.R = scaleChannel(px.R, job.Tint.R)
		px.G = scaleChannel(px.G, job.Tint.G)
		px.B = scaleChannel(px.B, job.Tint.B)
		return px
	})

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, tinted, imaging.PNG); err != nil {
		return nil, services.Wrap(services.ErrDecode, "baking", "encode", "encode baked layer", err)
	}
	c.log.Debug("layer composited",
		logging.Args(
			logging.Int(logging.FieldLayer, job.Layer),
			logging.Int("inputs", len(job.Inputs)),
			logging.Int("composited", composited),
			logging.Int("bytes", buf.Len()))...)
	return buf.Bytes(), nil
}

func tintColor(t assets.TintRGB) color.NRGBA {
	return color.NRGBA{
		R: floatChannel(t.R),
		G: floatChannel(t.G),
		B: floatChannel(t.B),
		A: 255,
	}
}

// maskOpacity folds the accumulated alpha mask weights into one scalar; an
// empty accumulator leaves sources fully opaque.
func maskOpacity(masks map[string]float32) float32 {
	opacity := float32(1)
	for _, weight := range masks {
		opacity *= clampWeight(weight)
	}
	return opacity
}

func clampWeight(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func floatChannel(v float32) uint8 {
	scaled := int(v*255 + 0.5)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func scaleChannel(c uint8, factor float32) uint8 {
	return floatChannel(float32(c) / 255.0 * clampWeight(factor))
}
