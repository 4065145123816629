package shline

// CompletionFunc is the optional, caller-supplied completion hook: given
// the current line and a [start, end) byte range, it returns the set of
// candidate replacement strings, already sorted. A nil CompletionFunc
// means completion is simply unavailable.
type CompletionFunc func(line []byte, start, end int) []string

// completionState tracks an in-progress Tab-cycle: pressing Tab repeatedly
// steps through candidates in place, any other key commits the current
// candidate.
type completionState struct {
	active     bool
	start, end int
	candidates []string
	index      int
}

func (c *completionState) reset() {
	c.active = false
	c.candidates = nil
	c.index = 0
}

// wordRange picks the default [start,end) to complete: the alphanumeric
// word touching the cursor.
func (b *lineBuffer) wordRange() (start, end int) {
	start = b.cursor
	for start > 0 && isAlnum(b.buf[start-1]) {
		start--
	}
	end = b.cursor
	for end < b.length && isAlnum(b.buf[end]) {
		end++
	}
	return start, end
}
