// shline-demo
//
// A basic example of interactive line editing with the "shline" package.
// Type a line and press Enter; press the up arrow to recall earlier lines.
//
// Press ^D on an empty line, or type "quit" to exit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kylemoray/shline"
)

var (
	histFile = flag.String("history", "", "path to a history file to load/save (optional)")
	histCap  = flag.Int("history-size", 4, "number of remembered lines")
)

func main() {
	flag.Parse()

	ed := shline.New(os.Stdin, os.Stdout)
	ed.WithHistoryCapacity(*histCap)
	ed.SetPrompt("> ")
	ed.SetCompleter(completeWords)
	defer ed.Close()

	if *histFile != "" {
		if err := ed.HistoryLoadFromFile(*histFile); err != nil && !os.IsNotExist(err) {
			log.Printf("history: %v", err)
		}
	}

	for {
		line, err := ed.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Print("\r\n")
				break
			}
			log.Fatalf("readline: %v", err)
		}

		text := strings.TrimRight(string(line), "\n")
		if text == "quit" {
			break
		}
		if text != "" {
			if err := ed.HistoryAdd(text); err != nil {
				log.Printf("history: %v", err)
			}
		}
		fmt.Printf("%q\r\n", text)
	}

	if *histFile != "" {
		if err := ed.HistorySaveToFile(*histFile, false); err != nil {
			log.Printf("history: %v", err)
		}
	}
}

// completeWords offers a couple of static completions, standing in for a
// real filename-completion generator, which the core intentionally leaves
// to the caller.
func completeWords(line []byte, start, end int) []string {
	word := string(line[start:end])
	choices := []string{"help", "history", "quit"}
	var out []string
	for _, c := range choices {
		if strings.HasPrefix(c, word) {
			out = append(out, c)
		}
	}
	return out
}
