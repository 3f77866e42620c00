package raster

// FillPath fills path into dst with color, compositing through blend.
// transform, if non-nil, is applied to the path before flattening.
func FillPath(dst Image, path *Path, color [4]byte, transform *Matrix, rule FillRule, blend BlendMode) {
	shapes, _ := flattenForFill(path, transform)
	rasterizeImage(dst, shapes, rule, color, blend)
}

// StrokePath strokes path into dst with color, compositing through blend.
func StrokePath(dst Image, path *Path, color [4]byte, transform *Matrix, strokeWidth float64, cap LineCap, join LineJoin, miterLimit float64, dashes Dashes, rule FillRule, blend BlendMode) {
	shapes, _ := flattenForStroke(path, transform, strokeWidth, cap, join, miterLimit, dashes)
	rasterizeImage(dst, shapes, rule, color, blend)
}

// FillPathPaint fills path into dst, sampling color from paint per pixel
// instead of a single fixed color, so gradients and images can be used
// as fill sources.
func FillPathPaint(dst Image, path *Path, paint Paint, transform *Matrix, rule FillRule, blend BlendMode) {
	shapes, _ := flattenForFill(path, transform)
	rasterizePaint(dst, shapes, rule, paint, blend)
}

// FillPathMask fills path into a Mask destination. Under BlendMask the new
// coverage replaces dst's values inside the filled bounds and everything
// outside them is cleared to zero; under any other mode the coverage is
// unioned (per-pixel maximum) with dst.
func FillPathMask(dst Mask, path *Path, transform *Matrix, rule FillRule, blend BlendMode) {
	shapes, _ := flattenForFill(path, transform)
	rasterizeMask(dst, shapes, rule, blend)
}

// StrokePathMask strokes path into a Mask destination.
func StrokePathMask(dst Mask, path *Path, transform *Matrix, strokeWidth float64, cap LineCap, join LineJoin, miterLimit float64, dashes Dashes, rule FillRule, blend BlendMode) {
	shapes, _ := flattenForStroke(path, transform, strokeWidth, cap, join, miterLimit, dashes)
	rasterizeMask(dst, shapes, rule, blend)
}

// FillMask is a fast path equivalent to FillPathMask with no transform and
// BlendMask compositing, sized to whatever dst already is.
func FillMask(dst Mask, path *Path, rule FillRule) {
	shapes, _ := flattenForFill(path, nil)
	rasterizeMask(dst, shapes, rule, BlendMask)
}

// FillImage is a fast path equivalent to FillPath with no transform and
// normal-blend solid color compositing, sized to whatever dst already is.
func FillImage(dst Image, path *Path, color [4]byte, rule FillRule) {
	shapes, _ := flattenForFill(path, nil)
	rasterizeImage(dst, shapes, rule, color, BlendNormal)
}

func flattenForFill(path *Path, transform *Matrix) ([]Shape, float64) {
	p := path
	pixelScale := 1.0
	if transform != nil {
		p = path.Copy().Transform(*transform)
		pixelScale = transform.PixelScale()
	}
	return Flatten(p, pixelScale, true), pixelScale
}

func flattenForStroke(path *Path, transform *Matrix, strokeWidth float64, cap LineCap, join LineJoin, miterLimit float64, dashes Dashes) ([]Shape, float64) {
	p := path
	pixelScale := 1.0
	if transform != nil {
		p = path.Copy().Transform(*transform)
		pixelScale = transform.PixelScale()
	}
	shapes := Flatten(p, pixelScale, false)
	return Stroke(shapes, strokeWidth, cap, join, miterLimit, dashes, pixelScale), pixelScale
}

// rasterizeImage partitions shapes' segments and composites each covered
// scanline into dst, clipped to dst's dimensions and the shapes' bounds.
func rasterizeImage(dst Image, shapes []Shape, rule FillRule, color [4]byte, blend BlendMode) {
	if color[3] == 0 {
		return
	}
	segs := SegmentsAll(shapes)
	if len(segs) == 0 {
		return
	}
	bounds := boundsOfShapes(shapes).SnapToPixels()
	if bounds.Empty() {
		return
	}
	part := Partition(segs)

	width, height := dst.Width(), dst.Height()
	x0 := clampIndex(int(bounds.X), width)
	x1 := clampIndex(int(bounds.X+bounds.W), width+1)
	if x1 < x0 {
		x1 = x0
	}
	y0 := maxInt(0, int(bounds.Y))
	y1 := int(bounds.Y + bounds.H)
	if y1 > height {
		y1 = height
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	cov := make([]uint8, x1)
	for y := y0; y < y1; y++ {
		ScanlineCoverage(&part, rule, y, x1, cov)
		compositeScanlineImage(dst, y, x0, cov[x0:], color, blend)
	}
}

// rasterizePaint is rasterizeImage's Paint-sampling analogue, used by
// FillPathPaint for gradients, images and tiled images.
func rasterizePaint(dst Image, shapes []Shape, rule FillRule, paint Paint, blend BlendMode) {
	segs := SegmentsAll(shapes)
	if len(segs) == 0 {
		return
	}
	bounds := boundsOfShapes(shapes).SnapToPixels()
	if bounds.Empty() {
		return
	}
	part := Partition(segs)

	width, height := dst.Width(), dst.Height()
	x0 := clampIndex(int(bounds.X), width)
	x1 := clampIndex(int(bounds.X+bounds.W), width+1)
	if x1 < x0 {
		x1 = x0
	}
	y0 := maxInt(0, int(bounds.Y))
	y1 := int(bounds.Y + bounds.H)
	if y1 > height {
		y1 = height
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	cov := make([]uint8, x1)
	for y := y0; y < y1; y++ {
		ScanlineCoverage(&part, rule, y, x1, cov)
		compositeScanlinePaint(dst, y, x0, cov[x0:], paint, blend)
	}
}

// rasterizeMask is rasterizeImage's Mask-destination analogue. Under
// BlendMask the new coverage replaces the old values inside the filled
// bounds and every pixel outside them is cleared, realizing the "global
// clear" semantics a Mask destination guarantees; other modes union.
func rasterizeMask(dst Mask, shapes []Shape, rule FillRule, blend BlendMode) {
	segs := SegmentsAll(shapes)
	width, height := dst.Width(), dst.Height()
	if len(segs) == 0 {
		if blend == BlendMask {
			clearMaskOutside(dst, 0, 0, 0, 0)
		}
		return
	}
	bounds := boundsOfShapes(shapes).SnapToPixels()
	if bounds.Empty() {
		if blend == BlendMask {
			clearMaskOutside(dst, 0, 0, 0, 0)
		}
		return
	}
	part := Partition(segs)

	x0 := clampIndex(int(bounds.X), width)
	x1 := clampIndex(int(bounds.X+bounds.W), width+1)
	if x1 < x0 {
		x1 = x0
	}
	y0 := maxInt(0, int(bounds.Y))
	y1 := int(bounds.Y + bounds.H)
	if y1 > height {
		y1 = height
	}

	cov := make([]uint8, x1)
	for y := y0; y < y1; y++ {
		ScanlineCoverage(&part, rule, y, x1, cov)
		if blend == BlendMask {
			pix := dst.Pix()
			for x := x0; x < x1; x++ {
				pix[dst.DataIndex(x, y)] = 0
			}
		}
		compositeScanlineMask(dst, y, x0, cov[x0:])
	}
	if blend == BlendMask {
		clearMaskOutside(dst, x0, x1, y0, y1)
	}
}
