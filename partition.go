package raster

import "math"

// PartitionEntry is a segment together with its line equation cached as
// slope m and intercept b, so the coverage engine can evaluate x at a
// given y without recomputing the division each scanline. Vertical edges
// set m = 0 and store the (constant) x-coordinate in b.
type PartitionEntry struct {
	Segment
	M, B float64
}

func newPartitionEntry(s Segment) PartitionEntry {
	dy := s.To.Y - s.At.Y
	if Equal(dy, 0.0) {
		return PartitionEntry{Segment: s, M: 0, B: s.At.X}
	}
	if Equal(s.To.X, s.At.X) {
		return PartitionEntry{Segment: s, M: 0, B: s.At.X}
	}
	m := (s.To.X - s.At.X) / dy
	b := s.At.X - m*s.At.Y
	return PartitionEntry{Segment: s, M: m, B: b}
}

// xAt returns the entry's x-coordinate at height y (valid only within the
// entry's y-extent).
func (e PartitionEntry) xAt(y float64) float64 {
	if Equal(e.M, 0.0) {
		return e.B
	}
	return e.M*y + e.B
}

// Strip is a horizontal band of the raster together with the entries whose
// y-extent overlaps it.
type Strip struct {
	Y0, Y1               float64
	Entries              []PartitionEntry
	RequiresAntiAliasing bool
}

// Partitioning is an ordered list of strips covering a path's y-range,
// built once per fill/stroke call and consumed by the coverage engine.
type Partitioning struct {
	Strips      []Strip
	StartY      float64
	StripHeight float64
}

// Partition bins segs into horizontal strips. Strip count is
// clamp(1, height/4, len(segs)/2); strip height is totalHeight/stripCount.
func Partition(segs []Segment) Partitioning {
	if len(segs) == 0 {
		return Partitioning{}
	}
	minY, maxY := segs[0].At.Y, segs[0].To.Y
	for _, s := range segs {
		minY = math.Min(minY, s.At.Y)
		maxY = math.Max(maxY, s.To.Y)
	}
	height := maxY - minY
	if height <= 0.0 {
		height = 1.0
	}

	count := maxInt(1, int(height/4.0))
	if m := maxInt(1, len(segs)/2); m < count {
		count = m
	}
	stripHeight := height / float64(count)

	strips := make([]Strip, count)
	for i := range strips {
		strips[i].Y0 = minY + float64(i)*stripHeight
		strips[i].Y1 = minY + float64(i+1)*stripHeight
		strips[i].RequiresAntiAliasing = false
	}

	for _, s := range segs {
		entry := newPartitionEntry(s)
		i0 := clampIndex(int((s.At.Y-minY)/stripHeight), count)
		i1 := clampIndex(int((s.To.Y-minY)/stripHeight), count)
		if i1 < i0 {
			i0, i1 = i1, i0
		}
		axisAligned := isAxisAlignedInteger(s)
		for i := i0; i <= i1; i++ {
			strips[i].Entries = append(strips[i].Entries, entry)
			if !axisAligned {
				strips[i].RequiresAntiAliasing = true
			}
		}
	}

	return Partitioning{Strips: strips, StartY: minY, StripHeight: stripHeight}
}

func isAxisAlignedInteger(s Segment) bool {
	if !Equal(s.At.X, s.To.X) {
		return false
	}
	return isInt(s.At.X) && isInt(s.At.Y) && isInt(s.To.Y)
}

func isInt(f float64) bool {
	return Equal(f, math.Round(f))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
