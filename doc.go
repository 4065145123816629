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

// Package shline is an interactive single-line editor for text terminals.
// It reads one logical line from a controlling terminal with inline
// editing, word-wise motion and deletion, screen-aware cursor movement
// across wrapped rows, a bounded command-history ring, and an optional
// tab-completion hook.
//
// Basic use:
//
//	ed := shline.New(os.Stdin, os.Stdout)
//	defer ed.Close()
//	ed.SetPrompt("> ")
//	for {
//	    line, err := ed.ReadLine()
//	    if err != nil {
//	        break // io.EOF: end of input or ^D on an empty line
//	    }
//	    handle(line)
//	}
//
// Editing
//
// Typing inserts at the cursor. Backspace/Delete remove a character;
// Ctrl-K and Ctrl-U kill to the end/start of the line. The arrow keys move
// the cursor; Home/End (or Ctrl-A/Ctrl-E) jump to the line's edges.
// Meta-F/Meta-B (or Ctrl-Right/Ctrl-Left) jump by word; Meta-D and
// Meta-Backspace delete a word forward/backward. Ctrl-L redraws from a
// cleared screen.
//
// History
//
// Pressing Up/Down walks a fixed-capacity ring of previously submitted
// lines, preserving whatever was being edited when navigation began so it
// can be restored on the way back out.
//
// Non-goals: multi-line editing with explicit line breaks, syntax
// highlighting, bracketed paste, and non-tty input — ReadLine refuses to
// operate unless both the input and output files are terminals. Every
// character is treated as exactly one terminal cell wide; variable-width
// glyphs, combining marks, and wide or bidirectional text are not
// supported.
package shline
