package preprocess

import "image"

// equalizeLocal applies contrast-limited histogram equalization over a
// tiles×tiles grid.
//
// Each tile's histogram is clipped at clipLimit times the uniform bin
// height before building the equalization mapping, which stops near-flat
// regions (laminate glare, paper background) from being amplified into
// noise the way plain equalization would. The excess above the clip is
// redistributed evenly across all bins. Tiles are mapped independently;
// the seams this leaves are harmless to character recognition.
func equalizeLocal(gray *image.Gray, clipLimit float64, tiles int) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)

	tileW := (w + tiles - 1) / tiles
	tileH := (h + tiles - 1) / tiles
	if tileW == 0 || tileH == 0 {
		copy(out.Pix, gray.Pix)
		return out
	}

	for ty := 0; ty < h; ty += tileH {
		for tx := 0; tx < w; tx += tileW {
			x2 := min(tx+tileW, w)
			y2 := min(ty+tileH, h)

			var hist [256]float64
			pixels := 0
			for y := ty; y < y2; y++ {
				for x := tx; x < x2; x++ {
					hist[gray.Pix[y*gray.Stride+x]]++
					pixels++
				}
			}

			// Clip and redistribute.
			clip := clipLimit * float64(pixels) / 256.0
			var excess float64
			for i := range hist {
				if hist[i] > clip {
					excess += hist[i] - clip
					hist[i] = clip
				}
			}
			bonus := excess / 256.0
			for i := range hist {
				hist[i] += bonus
			}

			// Cumulative mapping to the full grayscale range.
			var lut [256]uint8
			var cum float64
			for i := range hist {
				cum += hist[i]
				lut[i] = uint8(cum / float64(pixels) * 255.0)
			}

			for y := ty; y < y2; y++ {
				for x := tx; x < x2; x++ {
					out.Pix[y*out.Stride+x] = lut[gray.Pix[y*gray.Stride+x]]
				}
			}
		}
	}
	return out
}
