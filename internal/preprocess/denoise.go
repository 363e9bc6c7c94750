package preprocess

import (
	"image"
	"math"
)

// denoiseNLMeans is a non-local-means filter over a grayscale image.
//
// For each pixel it averages pixels within searchRadius whose surrounding
// patch (patchRadius each side) looks similar, weighted by exp(-d²/h²)
// where d² is the mean squared patch difference. Text edges survive because
// only genuinely similar neighborhoods contribute; film grain and sensor
// noise average out. h controls how aggressively dissimilar patches are
// discounted.
func denoiseNLMeans(gray *image.Gray, h float64, patchRadius, searchRadius int) *image.Gray {
	bounds := gray.Bounds()
	w, ht := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)
	h2 := h * h

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= ht {
			y = ht - 1
		}
		return float64(gray.Pix[y*gray.Stride+x])
	}

	patchDiff := func(x1, y1, x2, y2 int) float64 {
		var sum float64
		n := 0
		for dy := -patchRadius; dy <= patchRadius; dy++ {
			for dx := -patchRadius; dx <= patchRadius; dx++ {
				d := at(x1+dx, y1+dy) - at(x2+dx, y2+dy)
				sum += d * d
				n++
			}
		}
		return sum / float64(n)
	}

	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			var totalWeight, value float64
			for sy := -searchRadius; sy <= searchRadius; sy++ {
				for sx := -searchRadius; sx <= searchRadius; sx++ {
					weight := math.Exp(-patchDiff(x, y, x+sx, y+sy) / h2)
					totalWeight += weight
					value += weight * at(x+sx, y+sy)
				}
			}
			out.Pix[y*out.Stride+x] = uint8(value/totalWeight + 0.5)
		}
	}
	return out
}

// bilateralFilter smooths while preserving edges: each pixel is replaced by
// a weighted mean of its radius-neighborhood, where weights fall off both
// with spatial distance and with intensity difference (sigmaSpace and
// sigmaColor respectively). Strong edges keep their contrast because pixels
// across the edge are too different in intensity to contribute.
func bilateralFilter(gray *image.Gray, radius int, sigmaColor, sigmaSpace float64) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)

	twoSigmaColor2 := 2 * sigmaColor * sigmaColor
	twoSigmaSpace2 := 2 * sigmaSpace * sigmaSpace

	// Spatial weights depend only on the offset; precompute them.
	size := 2*radius + 1
	spatial := make([]float64, size*size)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			spatial[(dy+radius)*size+(dx+radius)] =
				math.Exp(-float64(dx*dx+dy*dy) / twoSigmaSpace2)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := float64(gray.Pix[y*gray.Stride+x])
			var totalWeight, value float64
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					neighbor := float64(gray.Pix[ny*gray.Stride+nx])
					diff := neighbor - center
					weight := spatial[(dy+radius)*size+(dx+radius)] *
						math.Exp(-diff*diff/twoSigmaColor2)
					totalWeight += weight
					value += weight * neighbor
				}
			}
			out.Pix[y*out.Stride+x] = uint8(value/totalWeight + 0.5)
		}
	}
	return out
}
