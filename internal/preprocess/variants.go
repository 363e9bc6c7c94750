package preprocess

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Variant is one preprocessed rendering of a source image, labeled for
// provenance tagging in the OCR corpus.
type Variant struct {
	Label string
	Image image.Image
}

// upscaleBelow is the dimension under which a scan is considered too small
// for reliable character recognition and gets a 2x cubic upscale.
const upscaleBelow = 1000

// Generate produces the ordered preprocessing variants for one source
// image.
//
// Low-quality ID scans defeat any single preprocessing recipe: lighting,
// laminate glare, and sensor noise vary too much between documents. The
// pipeline trades compute for recall by emitting every transform family
// independently and letting the OCR sweep discover which rendering reads
// cleanly. The original image always comes first as a guaranteed fallback;
// a transform that cannot apply (an adaptive block larger than the image,
// for example) is skipped, never propagated.
//
// Variant order is insertion order; no quality heuristic reorders them.
func Generate(img image.Image) []Variant {
	variants := []Variant{{Label: "original", Image: img}}
	add := func(label string, v image.Image) {
		if v != nil {
			variants = append(variants, Variant{Label: label, Image: v})
		}
	}

	bounds := img.Bounds()
	if bounds.Dx() < upscaleBelow || bounds.Dy() < upscaleBelow {
		add("upscale2x", imaging.Resize(img, bounds.Dx()*2, bounds.Dy()*2, imaging.CatmullRom))
	}

	gray := toGray(img)
	add("grayscale", gray)
	add("rgb", imaging.Clone(img))

	for _, gain := range []float64{1.5, 2.0, 2.5} {
		add(fmt.Sprintf("contrast%.1f", gain), stretchContrast(gray, gain))
	}

	otsuLevel := otsuThreshold(gray)
	add("otsu", segment.Threshold(gray, otsuLevel))

	for _, cut := range []uint8{100, 127, 150, 180} {
		add(fmt.Sprintf("threshold%d", cut), segment.Threshold(gray, cut))
	}
	add("threshold127inv", effect.Invert(segment.Threshold(gray, 127)))

	for _, block := range []int{11, 15, 21, 31, 41} {
		if block < bounds.Dx() && block < bounds.Dy() {
			add(fmt.Sprintf("adaptive%d", block), adaptiveThreshold(gray, block, 2))
		}
	}

	for _, clip := range []float64{2.0, 3.0, 4.0} {
		eq := equalizeLocal(gray, clip, 8)
		add(fmt.Sprintf("clahe%.0f", clip), eq)
		add(fmt.Sprintf("clahe%.0f_otsu", clip), segment.Threshold(eq, otsuThreshold(eq)))
	}

	denoised := denoiseNLMeans(gray, 10, 1, 5)
	add("nlmeans", denoised)
	add("nlmeans_otsu", segment.Threshold(denoised, otsuThreshold(denoised)))
	add("bilateral", bilateralFilter(gray, 4, 75, 75))

	// Close is dilate followed by erode with the same small element.
	add("morph_close", effect.Erode(effect.Dilate(gray, 1), 1))
	add("erode", effect.Erode(gray, 1))
	add("dilate", effect.Dilate(gray, 1))

	add("sharpen", effect.Sharpen(gray))
	blurred := blur.Gaussian(gray, 2)
	add("blur_otsu", segment.Threshold(blurred, otsuThreshold(toGray(blurred))))

	return variants
}

// Load decodes the image at path. Unlike the transforms, an unreadable
// source is a real error the caller must see.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// toGray converts any image to 8-bit grayscale.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// stretchContrast applies a linear gain around zero, clamping to [0,255]
// (the convertScaleAbs-style stretch: out = gain*in).
func stretchContrast(gray *image.Gray, gain float64) *image.Gray {
	bounds := gray.Bounds()
	out := image.NewGray(bounds)
	for i, v := range gray.Pix {
		scaled := gain * float64(v)
		if scaled > 255 {
			scaled = 255
		}
		out.Pix[i] = uint8(scaled)
	}
	return out
}
