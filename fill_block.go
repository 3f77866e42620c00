//go:build !nosimd

package raster

const blockWidth = 16

// blockApplyImage walks cov in blockWidth-pixel chunks, fast-pathing the
// common all-zero (skip) and all-255-opaque-normal (direct color write)
// cases; a chunk is accumulated the slow way (blend per pixel) only when it
// has partial coverage or the pixel isn't a trivial opaque overwrite. The
// blocking is a vectorization shape, not a different algorithm: output must
// match the nosimd scalar path byte for byte.
func blockApplyImage(pix []byte, dst Image, y, x0, width int, cov []uint8, color [4]byte, blend blendFunc, isNormal bool) {
	srcOpaqueNormal := isNormal && color[3] == 255
	n := len(cov)
	for base := 0; base < n; base += blockWidth {
		end := base + blockWidth
		if end > n {
			end = n
		}
		allZero := true
		allFull := true
		for i := base; i < end; i++ {
			if cov[i] != 0 {
				allZero = false
			}
			if cov[i] != 255 {
				allFull = false
			}
		}
		if allZero {
			continue
		}
		if allFull && srcOpaqueNormal {
			for i := base; i < end; i++ {
				writePixel(pix, dst, x0+i, y, color)
			}
			continue
		}
		for i := base; i < end; i++ {
			applyPixel(pix, dst, x0+i, y, cov[i], color, blend)
		}
	}
}

func blockApplyMask(pix []byte, dst Mask, y, x0, width int, cov []uint8) {
	n := len(cov)
	for base := 0; base < n; base += blockWidth {
		end := base + blockWidth
		if end > n {
			end = n
		}
		allZero := true
		for i := base; i < end; i++ {
			if cov[i] != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			continue
		}
		for i := base; i < end; i++ {
			if cov[i] == 0 {
				continue
			}
			applyMaskPixel(pix, dst, x0+i, y, cov[i])
		}
	}
}
