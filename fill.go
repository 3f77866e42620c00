package raster

// Image is the destination surface for a colored fill: a rectangular grid
// of 4-byte premultiplied RGBA pixels. Implementations own their pixel
// storage; the core only reads/writes through this interface.
type Image interface {
	Width() int
	Height() int
	// Pix returns the raw pixel buffer (row-major, 4 bytes per pixel) for
	// direct block writes.
	Pix() []byte
	// DataIndex returns the byte offset of pixel (x,y) within Pix.
	DataIndex(x, y int) int
}

// Mask is the destination surface for an alpha-only fill: one byte per
// pixel, 0 meaning fully transparent and 255 fully covered.
type Mask interface {
	Width() int
	Height() int
	Pix() []byte
	DataIndex(x, y int) int
	// ApplyOpacity scales every byte in the mask by opacity (0..1).
	ApplyOpacity(opacity float64)
}

// BlendMode selects how a source color combines with the destination.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendDarken
	BlendLighten
	// BlendMask treats the destination as coverage-only: the written value
	// replaces rather than blends, and the region outside the filled bounds
	// is cleared to zero (see rasterizeMask and clearMaskOutside).
	BlendMask
)

type blendFunc func(dst, src [4]byte) [4]byte

func lookupBlend(mode BlendMode) blendFunc {
	switch mode {
	case BlendMultiply:
		return blendMultiply
	case BlendScreen:
		return blendScreen
	case BlendDarken:
		return blendDarken
	case BlendLighten:
		return blendLighten
	default:
		return blendNormal
	}
}

func blendNormal(dst, src [4]byte) [4]byte {
	a := uint16(src[3])
	inv := 255 - a
	var out [4]byte
	for i := 0; i < 3; i++ {
		out[i] = uint8((uint16(src[i])*a + uint16(dst[i])*inv) / 255)
	}
	out[3] = uint8((uint16(src[3])*255 + uint16(dst[3])*inv) / 255)
	return out
}

func blendMultiply(dst, src [4]byte) [4]byte {
	var mixed [4]byte
	for i := 0; i < 3; i++ {
		mixed[i] = uint8(uint16(dst[i]) * uint16(src[i]) / 255)
	}
	mixed[3] = src[3]
	return blendNormal(dst, mixed)
}

func blendScreen(dst, src [4]byte) [4]byte {
	var mixed [4]byte
	for i := 0; i < 3; i++ {
		mixed[i] = uint8(255 - uint16(255-dst[i])*uint16(255-src[i])/255)
	}
	mixed[3] = src[3]
	return blendNormal(dst, mixed)
}

func blendDarken(dst, src [4]byte) [4]byte {
	var mixed [4]byte
	for i := 0; i < 3; i++ {
		if src[i] < dst[i] {
			mixed[i] = src[i]
		} else {
			mixed[i] = dst[i]
		}
	}
	mixed[3] = src[3]
	return blendNormal(dst, mixed)
}

func blendLighten(dst, src [4]byte) [4]byte {
	var mixed [4]byte
	for i := 0; i < 3; i++ {
		if src[i] > dst[i] {
			mixed[i] = src[i]
		} else {
			mixed[i] = dst[i]
		}
	}
	mixed[3] = src[3]
	return blendNormal(dst, mixed)
}

// compositeScanlineImage applies one scanline's coverage to dst at row y,
// compositing the premultiplied color scaled by each pixel's coverage
// through blend. x0 is the first destination column cov[0] maps to.
func compositeScanlineImage(dst Image, y, x0 int, cov []uint8, color [4]byte, blend BlendMode) {
	if y < 0 || y >= dst.Height() {
		return
	}
	width := dst.Width()
	pix := dst.Pix()
	blendFn := lookupBlend(blend)
	blockApplyImage(pix, dst, y, x0, width, cov, color, blendFn, blend == BlendNormal)
}

func writePixel(pix []byte, dst Image, x, y int, color [4]byte) {
	i := dst.DataIndex(x, y)
	copy(pix[i:i+4], color[:])
}

func applyPixel(pix []byte, dst Image, x, y int, coverage uint8, color [4]byte, blend blendFunc) {
	if coverage == 0 {
		return
	}
	i := dst.DataIndex(x, y)
	var dstColor [4]byte
	copy(dstColor[:], pix[i:i+4])
	src := color
	if coverage != 255 {
		for k := 0; k < 4; k++ {
			src[k] = uint8(uint16(color[k]) * uint16(coverage) / 255)
		}
	}
	out := blend(dstColor, src)
	copy(pix[i:i+4], out[:])
}

func applyMaskPixel(pix []byte, dst Mask, x, y int, coverage uint8) {
	i := dst.DataIndex(x, y)
	if coverage > pix[i] {
		pix[i] = coverage
	}
}

// compositeScanlineMask writes one scanline's coverage directly into a Mask,
// taking the maximum of existing and new coverage (so repeated fills union).
func compositeScanlineMask(dst Mask, y, x0 int, cov []uint8) {
	if y < 0 || y >= dst.Height() {
		return
	}
	width := dst.Width()
	pix := dst.Pix()
	blockApplyMask(pix, dst, y, x0, width, cov)
}

// compositeScanlinePaint is compositeScanlineImage's Paint-sampling
// counterpart: instead of one fixed color, it evaluates paint.At for
// every covered pixel. A SolidPaint is special-cased back into the
// fixed-color path so it still gets the 16-pixel block fast path.
func compositeScanlinePaint(dst Image, y, x0 int, cov []uint8, paint Paint, blend BlendMode) {
	if solid, ok := paint.(SolidPaint); ok {
		compositeScanlineImage(dst, y, x0, cov, solid.Color, blend)
		return
	}
	if y < 0 || y >= dst.Height() {
		return
	}
	pix := dst.Pix()
	blendFn := lookupBlend(blend)
	for i, c := range cov {
		if c == 0 {
			continue
		}
		x := x0 + i
		color := paint.At(float64(x)+0.5, float64(y)+0.5)
		applyPixel(pix, dst, x, y, c, color, blendFn)
	}
}

// clearMaskOutside zeroes every pixel of dst outside [x0,x1)x[y0,y1), which
// is how BlendMask's global-clear semantics are realized: the caller fills
// the in-bounds region first, then calls this to zero everything else.
func clearMaskOutside(dst Mask, x0, x1, y0, y1 int) {
	w, h := dst.Width(), dst.Height()
	pix := dst.Pix()
	for y := 0; y < h; y++ {
		if y >= y0 && y < y1 {
			for x := 0; x < x0; x++ {
				pix[dst.DataIndex(x, y)] = 0
			}
			for x := x1; x < w; x++ {
				pix[dst.DataIndex(x, y)] = 0
			}
			continue
		}
		for x := 0; x < w; x++ {
			pix[dst.DataIndex(x, y)] = 0
		}
	}
}
