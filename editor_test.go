package shline

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// TestReadLine drives ReadLine over an in-memory pipe, checking the final
// submitted line for a sequence of raw input bytes.
func TestReadLine(t *testing.T) {
	tests := []struct {
		Desc  string
		Input string
		Want  string
	}{
		{Desc: "basic", Input: "hello\n", Want: "hello\n"},
		{Desc: "backspace", Input: "helllo\bo\n", Want: "helllo\n"}, // backspace then retype the same letter
		{Desc: "left then insert", Input: "ac\x1b[Db\n", Want: "abc\n"},
		{Desc: "kill to start", Input: "abcdef\x15ghi\n", Want: "ghi\n"},
		{Desc: "kill to end", Input: "abcdef\x1b[D\x1b[D\x1b[D\x0bxyz\n", Want: "abcxyz\n"},
	}
	for _, test := range tests {
		in, inWriter := io.Pipe()
		var out bytes.Buffer
		ed := newEditorForTest(in, &out, 80)

		go func(data string) {
			io.WriteString(inWriter, data)
		}(test.Input)

		line, err := ed.ReadLine()
		if err != nil {
			t.Errorf("%s: ReadLine error: %v", test.Desc, err)
			continue
		}
		if got := string(line); got != test.Want {
			t.Errorf("%s: ReadLine() = %q, want %q", test.Desc, got, test.Want)
		}
		inWriter.Close()
	}
}

// TestReadLineEOFOnEmpty checks that Ctrl-D on an empty buffer reports
// io.EOF.
func TestReadLineEOFOnEmpty(t *testing.T) {
	in, inWriter := io.Pipe()
	var out bytes.Buffer
	ed := newEditorForTest(in, &out, 80)

	go func() {
		inWriter.Write([]byte{ctrlEOT})
	}()

	_, err := ed.ReadLine()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadLine() err = %v, want io.EOF", err)
	}
	inWriter.Close()
}

// TestReadLineEOFOnClosedPipe checks that a closed input stream (not a
// Ctrl-D keypress) is also reported as io.EOF.
func TestReadLineEOFOnClosedPipe(t *testing.T) {
	in, inWriter := io.Pipe()
	var out bytes.Buffer
	ed := newEditorForTest(in, &out, 80)

	inWriter.Close()

	_, err := ed.ReadLine()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadLine() err = %v, want io.EOF", err)
	}
}

// TestReadLineHistoryRoundTrip checks that submitting two lines (with the
// caller adding each to history, as submit itself never does) and then
// recalling with up/up/down/down reproduces the in-progress scratch line.
func TestReadLineHistoryRoundTrip(t *testing.T) {
	in, inWriter := io.Pipe()
	var out bytes.Buffer
	ed := newEditorForTest(in, &out, 80)

	go io.WriteString(inWriter, "first\n")
	line, err := ed.ReadLine()
	if err != nil || string(line) != "first\n" {
		t.Fatalf("first ReadLine = %q, %v", line, err)
	}
	ed.HistoryAdd("first")

	go io.WriteString(inWriter, "second\n")
	line, err = ed.ReadLine()
	if err != nil || string(line) != "second\n" {
		t.Fatalf("second ReadLine = %q, %v", line, err)
	}
	ed.HistoryAdd("second")

	// Start typing a third line, then walk history up twice and back down
	// twice; the in-progress text should be restored.
	go io.WriteString(inWriter, "thi\x1b[A\x1b[A\x1b[B\x1b[B\n")
	line, err = ed.ReadLine()
	if err != nil {
		t.Fatalf("third ReadLine error: %v", err)
	}
	if got := string(line); got != "thi\n" {
		t.Fatalf("third ReadLine = %q, want %q", got, "thi\n")
	}

	inWriter.Close()
}

// TestReadLineRawModeRestored checks that raw mode is entered and restored
// exactly once for a ReadLine call that ends with a submitted line.
func TestReadLineRawModeRestored(t *testing.T) {
	in, inWriter := io.Pipe()
	var out bytes.Buffer
	ed := newEditorForTest(in, &out, 80)

	rm := &countingRawMode{}
	ed.state = rm

	go io.WriteString(inWriter, "x\n")
	if _, err := ed.ReadLine(); err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if rm.entered != 1 || rm.restored != 1 {
		t.Fatalf("entered=%d restored=%d, want 1,1", rm.entered, rm.restored)
	}
	inWriter.Close()
}

type countingRawMode struct {
	entered, restored int
}

func (c *countingRawMode) enterRaw() error { c.entered++; return nil }
func (c *countingRawMode) restore() error  { c.restored++; return nil }
