package meeting

import (
	"errors"
	"iter"
)

// Default chunking parameters for long transcripts.
const (
	DefaultChunkSize    = 30_000
	DefaultChunkOverlap = 1_000
)

// Chunks returns a lazy, in-order sequence of overlapping windows over text.
// Lengths are in runes. If the text fits within size, the sequence is exactly
// the whole text. Otherwise each window ends at the last newline (preferred)
// or space inside it when one exists past the overlap region, else exactly at
// the size limit; the next window starts exactly overlap runes before the
// previous end. Consecutive chunks therefore share exactly overlap runes, and
// concatenating chunks with overlaps removed reconstructs the input.
//
// Chunks assumes validated parameters (size > 0, 0 <= overlap < size); use
// SplitText when the inputs are untrusted.
func Chunks(text string, size, overlap int) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(text)
		if len(runes) <= size {
			yield(text)
			return
		}

		start := 0
		for start < len(runes) {
			end := start + size
			if end >= len(runes) {
				end = len(runes)
			} else {
				end = boundaryCut(runes, start, end, overlap)
			}
			if !yield(string(runes[start:end])) {
				return
			}
			if end == len(runes) {
				return
			}
			start = end - overlap
		}
	}
}

// boundaryCut moves the window end back to just after the last newline or
// space inside (start+overlap, end), so chunks break at natural boundaries
// when possible. The lower bound keeps every step strictly larger than the
// overlap, which guarantees forward progress.
func boundaryCut(runes []rune, start, end, overlap int) int {
	min := start + overlap
	for i := end - 1; i > min; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	for i := end - 1; i > min; i-- {
		if runes[i] == ' ' {
			return i + 1
		}
	}
	return end
}

// SplitText is the validating form of Chunks, collecting the sequence into a slice.
func SplitText(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, errors.New("SplitText: size must be > 0")
	}
	if overlap < 0 {
		return nil, errors.New("SplitText: overlap must be >= 0")
	}
	if overlap >= size {
		return nil, errors.New("SplitText: overlap must be smaller than size")
	}

	var out []string
	for chunk := range Chunks(text, size, overlap) {
		out = append(out, chunk)
	}
	return out, nil
}
