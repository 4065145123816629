package shline

import "sort"

// apply runs one editing action. ch carries the literal byte for actInsert;
// it is ignored by every other action.
func (e *Editor) apply(act actionID, ch byte) {
	if act != actComplete {
		e.completion.reset()
	}
	switch act {
	case actNone:
		// Unrecognized sequence or control byte: discarded without side
		// effects.

	case actInsert:
		e.insert(ch)

	case actMoveHome:
		delta := e.buf.cursor
		e.buf.cursor = 0
		e.screen.moveLeftWrap(delta)

	case actMoveLeft:
		if e.buf.cursor == 0 {
			e.termIO.bell()
			return
		}
		e.buf.cursor--
		e.screen.moveLeftWrap(1)

	case actDeleteOrEOF:
		if e.buf.length == 0 {
			e.finished = true
			e.eofResult = true
			return
		}
		e.apply(actDeleteForward, 0)

	case actMoveEnd:
		delta := e.buf.length - e.buf.cursor
		e.buf.cursor = e.buf.length
		e.screen.moveRightWrap(delta)

	case actMoveRight:
		if e.buf.cursor == e.buf.length {
			e.termIO.bell()
			return
		}
		e.buf.cursor++
		e.screen.moveRightWrap(1)

	case actBell:
		e.termIO.bell()

	case actBackspace:
		if e.buf.cursor == 0 {
			e.termIO.bell()
			return
		}
		e.buf.removeBefore(1)
		e.redrawPending = true

	case actSubmit:
		e.submit()

	case actKillToEnd:
		if e.buf.cursor == e.buf.length {
			e.termIO.bell()
			return
		}
		e.buf.removeAfter(e.buf.length - e.buf.cursor)
		e.redrawPending = true

	case actClearScreen:
		if err := e.termIO.writeString("\x1b[2J\x1b[H"); err != nil {
			e.fatalWrite(err)
			return
		}
		e.screen.resetOrigin()
		e.redrawPending = true

	case actKillToStart:
		if e.buf.cursor == 0 {
			e.termIO.bell()
			return
		}
		e.buf.removeBefore(e.buf.cursor)
		e.redrawPending = true

	case actDeleteForward:
		if e.buf.cursor == e.buf.length {
			e.termIO.bell()
			return
		}
		e.buf.removeAfter(1)
		e.redrawPending = true

	case actHistoryPrev:
		e.historyPrev()

	case actHistoryNext:
		e.historyNext()

	case actWordRight:
		end := e.buf.wordEnd()
		if end == e.buf.cursor {
			e.termIO.bell()
			return
		}
		delta := end - e.buf.cursor
		e.buf.cursor = end
		e.screen.moveRightWrap(delta)

	case actWordLeft:
		start := e.buf.wordStart()
		if start == e.buf.cursor {
			e.termIO.bell()
			return
		}
		delta := e.buf.cursor - start
		e.buf.cursor = start
		e.screen.moveLeftWrap(delta)

	case actDeleteWordForward:
		end := e.buf.wordEnd()
		if end == e.buf.cursor {
			e.termIO.bell()
			return
		}
		e.buf.removeAfter(end - e.buf.cursor)
		e.redrawPending = true

	case actDeleteWordBackward:
		start := e.buf.wordStart()
		if start == e.buf.cursor {
			e.termIO.bell()
			return
		}
		e.buf.removeBefore(e.buf.cursor - start)
		e.redrawPending = true

	case actComplete:
		e.complete()
	}
}

// insert is the printable-byte action: the common fast path appends at the
// end of the line and writes the single byte directly, skipping a full
// redraw to avoid visible flicker in the common case.
func (e *Editor) insert(ch byte) {
	atEnd := e.buf.cursor == e.buf.length
	if !e.buf.insert(ch) {
		e.abandon()
		return
	}
	if atEnd {
		if err := e.screen.trackWrite([]byte{ch}); err != nil {
			e.fatalWrite(err)
		}
		return
	}
	e.redrawPending = true
}

// submit appends the terminating LF at the end of the buffer (not at the
// cursor) and moves the cursor there first, so the native newline advances
// past any trailing text. History is not touched here: adding the
// submitted line to the ring is left to the caller, who may want to skip
// blank input, duplicates, or commands like "exit".
func (e *Editor) submit() {
	delta := e.buf.length - e.buf.cursor
	if delta != 0 {
		e.screen.moveRightWrap(delta)
	}
	e.buf.cursor = e.buf.length
	if !e.buf.insert(ctrlLF) {
		e.abandon()
		return
	}
	e.finished = true
}

func (e *Editor) historyPrev() {
	if e.hist.length == 0 || e.hist.nav == e.hist.start {
		e.termIO.bell()
		return
	}
	if e.hist.nav == e.hist.capacity {
		e.hist.saveScratch(e.buf.bytes())
		e.hist.nav = e.hist.end
	} else {
		e.hist.nav = (e.hist.nav - 1 + e.hist.capacity) % e.hist.capacity
	}
	if !e.buf.load(e.hist.entry(e.hist.nav)) {
		e.abandon()
		return
	}
	e.redrawPending = true
}

func (e *Editor) historyNext() {
	if e.hist.length == 0 || e.hist.nav == e.hist.capacity {
		e.termIO.bell()
		return
	}
	var loaded bool
	if e.hist.nav == e.hist.end {
		e.hist.nav = e.hist.capacity
		loaded = e.buf.load(e.hist.scratch())
	} else {
		e.hist.nav = (e.hist.nav + 1) % e.hist.capacity
		loaded = e.buf.load(e.hist.entry(e.hist.nav))
	}
	if !loaded {
		e.abandon()
		return
	}
	e.redrawPending = true
}

// complete drives the optional Tab-completion hook, cycling through
// candidates in place on repeated Tab presses; any other key commits the
// candidate currently shown.
func (e *Editor) complete() {
	if e.completer == nil {
		e.termIO.bell()
		return
	}
	if e.completion.active {
		e.completion.index = (e.completion.index + 1) % len(e.completion.candidates)
		e.applyCandidate()
		return
	}

	start, end := e.buf.wordRange()
	candidates := e.completer(e.buf.bytes(), start, end)
	if len(candidates) == 0 {
		e.termIO.bell()
		return
	}
	sort.Strings(candidates)
	e.completion = completionState{
		active:     true,
		start:      start,
		end:        end,
		candidates: candidates,
		index:      0,
	}
	e.applyCandidate()
}

func (e *Editor) applyCandidate() {
	cand := e.completion.candidates[e.completion.index]
	rest := append([]byte(nil), e.buf.bytes()[e.completion.end:]...)
	replaced := make([]byte, 0, e.completion.start+len(cand)+len(rest))
	replaced = append(replaced, e.buf.bytes()[:e.completion.start]...)
	replaced = append(replaced, cand...)
	newCursor := len(replaced)
	replaced = append(replaced, rest...)
	if !e.buf.load(replaced) {
		e.abandon()
		return
	}
	e.buf.cursor = newCursor
	e.completion.end = newCursor
	e.redrawPending = true
}
