package preprocess

import "image"

// otsuThreshold computes the global binarization level that maximizes the
// between-class variance of the grayscale histogram (Otsu's method).
func otsuThreshold(gray *image.Gray) uint8 {
	var hist [256]int
	for _, v := range gray.Pix {
		hist[v]++
	}

	total := len(gray.Pix)
	if total == 0 {
		return 127
	}

	var sum float64
	for i, count := range hist {
		sum += float64(i) * float64(count)
	}

	var sumBack, weightBack float64
	var maxVariance float64
	var best uint8

	for t := 0; t < 256; t++ {
		weightBack += float64(hist[t])
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(t) * float64(hist[t])

		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore
		variance := weightBack * weightFore * (meanBack - meanFore) * (meanBack - meanFore)
		if variance > maxVariance {
			maxVariance = variance
			best = uint8(t)
		}
	}
	return best
}

// adaptiveThreshold binarizes against the local mean of a block×block
// neighborhood minus a constant c. A summed-area table keeps the window
// mean O(1) per pixel regardless of block size.
func adaptiveThreshold(gray *image.Gray, block, c int) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// integral[y][x] holds the sum of the w×h prefix ending at (x-1, y-1).
	integral := make([][]int64, h+1)
	integral[0] = make([]int64, w+1)
	for y := 0; y < h; y++ {
		integral[y+1] = make([]int64, w+1)
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(gray.Pix[y*gray.Stride+x])
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	radius := block / 2
	out := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x1, y1 := max(0, x-radius), max(0, y-radius)
			x2, y2 := min(w-1, x+radius), min(h-1, y+radius)
			area := int64((x2 - x1 + 1) * (y2 - y1 + 1))
			sum := integral[y2+1][x2+1] - integral[y1][x2+1] - integral[y2+1][x1] + integral[y1][x1]
			mean := sum / area

			v := int64(gray.Pix[y*gray.Stride+x])
			if v > mean-int64(c) {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}
