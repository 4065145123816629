// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shline

import "bytes"

// Control bytes recognized directly off the wire, before the decoder ever
// sees an escape sequence.
const (
	ctrlSOH byte = 0x01 // Ctrl-A, Home
	ctrlSTX byte = 0x02 // Ctrl-B, Left
	ctrlEOT byte = 0x04 // Ctrl-D
	ctrlENQ byte = 0x05 // Ctrl-E, End
	ctrlACK byte = 0x06 // Ctrl-F, Right
	ctrlBEL byte = 0x07 // Ctrl-G
	ctrlBS  byte = 0x08 // Backspace
	ctrlLF  byte = 0x0a // Enter (also accepted: CR)
	ctrlCR  byte = 0x0d
	ctrlVT  byte = 0x0b // Ctrl-K
	ctrlFF  byte = 0x0c // Ctrl-L
	ctrlNAK byte = 0x15 // Ctrl-U
	ctrlESC byte = 0x1b // escape-sequence prefix
	ctrlDEL byte = 0x7f // Backspace on most terminals
	ctrlTAB byte = 0x09 // Tab: completion
)

// maxEscapeStaging bounds the decoder's staging buffer.
const maxEscapeStaging = 32

// actionID names an editing action. Every binding in the table below
// resolves to exactly one of these; actions.go implements each.
type actionID int

const (
	actNone actionID = iota
	actInsert
	actMoveHome
	actMoveLeft
	actDeleteOrEOF // Ctrl-D: delete-forward, or finish with EOF if buffer empty
	actMoveEnd
	actMoveRight
	actBell
	actBackspace
	actSubmit
	actKillToEnd
	actClearScreen
	actKillToStart
	actDeleteForward
	actHistoryPrev
	actHistoryNext
	actWordRight
	actWordLeft
	actDeleteWordForward
	actDeleteWordBackward
	actComplete
)

// binding pairs a byte sequence (as seen after the leading ESC, for escape
// bindings) with the action it resolves to. Order is irrelevant: the
// decoder always prefers an exact match over a prefix continuation.
type binding struct {
	seq    []byte
	action actionID
}

// escapeBindings is the table of recognized escape sequences, given as the
// bytes following the initial ESC (0x1b).
var escapeBindings = []binding{
	{[]byte("[A"), actHistoryPrev},
	{[]byte("[B"), actHistoryNext},
	{[]byte("[C"), actMoveRight},
	{[]byte("[D"), actMoveLeft},
	{[]byte("[H"), actMoveHome},
	{[]byte("[F"), actMoveEnd},
	{[]byte("[3~"), actDeleteForward},
	{[]byte("[1;5C"), actWordRight},
	{[]byte("[1;5D"), actWordLeft},
	{[]byte("[3;5~"), actDeleteWordForward},
	{[]byte("f"), actWordRight},
	{[]byte("b"), actWordLeft},
	{[]byte("d"), actDeleteWordForward},
	{[]byte{ctrlDEL}, actDeleteWordBackward},
}

// isPrefix reports whether seq is a strict prefix of at least one binding
// in the table (used by the decoder to decide whether to keep reading).
func isPrefix(seq []byte) bool {
	for _, b := range escapeBindings {
		if len(seq) < len(b.seq) && bytes.Equal(seq, b.seq[:len(seq)]) {
			return true
		}
	}
	return false
}

// lookupEscape returns the action for an exact match of seq against the
// escape-binding table, or actNone if there is no exact match.
func lookupEscape(seq []byte) actionID {
	for _, b := range escapeBindings {
		if bytes.Equal(seq, b.seq) {
			return b.action
		}
	}
	return actNone
}
