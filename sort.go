package raster

// hit is one scanline crossing: an x position plus the winding contributed
// by the edge that produced it.
type hit struct {
	X       float64
	Winding int8
}

const insertionSortCutoff = 32

// sortHits sorts hits ascending by X in place using a hybrid quicksort
// (median-of-three pivot) that falls back to insertion sort for runs of
// insertionSortCutoff elements or fewer. Stability is not required: hits
// sharing an x with opposite winding are coalesced explicitly by the
// caller, not relied upon to stay in input order.
func sortHits(hits []hit) {
	quicksortHits(hits, 0, len(hits)-1)
}

func quicksortHits(h []hit, lo, hi int) {
	for lo < hi {
		if hi-lo+1 <= insertionSortCutoff {
			insertionSortHits(h, lo, hi)
			return
		}
		p := partitionHits(h, lo, hi)
		// recurse into the smaller side, loop over the larger to bound stack depth
		if p-lo < hi-p {
			quicksortHits(h, lo, p-1)
			lo = p + 1
		} else {
			quicksortHits(h, p+1, hi)
			hi = p - 1
		}
	}
}

func partitionHits(h []hit, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if h[mid].X < h[lo].X {
		h[mid], h[lo] = h[lo], h[mid]
	}
	if h[hi].X < h[lo].X {
		h[hi], h[lo] = h[lo], h[hi]
	}
	if h[hi].X < h[mid].X {
		h[hi], h[mid] = h[mid], h[hi]
	}
	pivot := h[mid].X
	h[mid], h[hi-1] = h[hi-1], h[mid]

	i, j := lo, hi-1
	for {
		for i++; h[i].X < pivot; i++ {
		}
		for j--; j > lo && pivot < h[j].X; j-- {
		}
		if i >= j {
			break
		}
		h[i], h[j] = h[j], h[i]
	}
	h[i], h[hi-1] = h[hi-1], h[i]
	return i
}

func insertionSortHits(h []hit, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		v := h[i]
		j := i - 1
		for j >= lo && h[j].X > v.X {
			h[j+1] = h[j]
			j--
		}
		h[j+1] = v
	}
}
