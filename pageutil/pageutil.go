// Package pageutil provides pagination index math.
//
// Pages are numbered from 1; element indexes are numbered from 0.
package pageutil

// PageRange converts a page number and page size into the half-open
// element index range [start, end).
func PageRange(page, size int) (start, end int) {
	return (page - 1) * size, page * size
}

// TotalPages returns the number of pages needed to hold total
// elements, rounding up.
func TotalPages(total, size int) int {
	return (total + size - 1) / size
}

// Rainbow returns the window of page numbers to display around
// pageNo: up to displayCount consecutive pages, centered on the
// current page and clamped to [1, totalPages].
func Rainbow(pageNo, totalPages, displayCount int) []int {
	even := displayCount&1 == 0
	left := displayCount >> 1
	right := displayCount >> 1
	length := displayCount

	if even {
		right++
	}
	if totalPages < displayCount {
		length = totalPages
	}

	result := make([]int, 0, length)

	if totalPages >= displayCount {
		switch {
		case pageNo <= left:
			for i := 0; i < length; i++ {
				result = append(result, i+1)
			}
		case pageNo > totalPages-right:
			for i := 0; i < length; i++ {
				result = append(result, i+totalPages-displayCount+1)
			}
		default:
			shift := 0
			if even {
				shift = 1
			}
			for i := 0; i < length; i++ {
				result = append(result, i+pageNo-left+shift)
			}
		}
	} else {
		for i := 0; i < length; i++ {
			result = append(result, i+1)
		}
	}

	return result
}
