// Package preprocess generates the image variants fed to the OCR sweep.
//
// OCR accuracy on scanned ID photographs is hostage to lighting, laminate
// glare, and noise, and no single preprocessing recipe works across all
// documents. This package takes the opposite approach: apply every
// transform family independently (contrast stretch, global and adaptive
// thresholding, local equalization, denoising, morphology, sharpening) and
// emit each result as its own variant, letting the downstream sweep find
// whichever rendering Tesseract reads best.
//
// Transforms that the library stack covers come from bild and imaging;
// Otsu's method, adaptive mean thresholding, contrast-limited local
// equalization, non-local-means, and the bilateral filter are implemented
// here directly over *image.Gray.
//
// Generate never fails: a transform that cannot apply is skipped, and the
// original image is always the first variant.
package preprocess
