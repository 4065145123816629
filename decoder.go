package shline

// decodeEscape is the incremental escape-sequence recognizer: it is invoked
// after the main loop has already consumed the leading ESC byte. next
// reads one more byte, reporting ok=false on EOF or an interrupted
// zero-byte read (the decoder never blocks indefinitely; a burst that
// stops arriving mid-sequence is simply abandoned).
//
// Tie-breaking is exact-match-always-wins-over-prefix, so table order
// never affects the outcome.
func decodeEscape(next func() (byte, bool)) actionID {
	var staging []byte
	for {
		ch, ok := next()
		if !ok {
			return actNone
		}
		staging = append(staging, ch)
		if a := lookupEscape(staging); a != actNone {
			return a
		}
		if !isPrefix(staging) {
			return actNone
		}
		if len(staging) >= maxEscapeStaging {
			return actNone
		}
	}
}
