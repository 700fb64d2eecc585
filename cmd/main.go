// Command wordfix corrects misspelled words in tagged word lists
// against a reference vocabulary and writes the corrected entries back
// in their original layout.
package main

import (
	"log"
	"strings"

	"github.com/alecthomas/kong"

	"wordfix/internal/corrector"
	"wordfix/internal/storage"
	"wordfix/internal/vocab"
	"wordfix/internal/wordlist"
)

var CLI struct {
	Words string `name:"words" default:"problem/words.txt" help:"Word entry file to correct"`
	Dict  string `name:"dict" default:"problem/vocabulary.txt" help:"Reference vocabulary, one word per line"`
	Out   string `name:"out" default:"problem/correction_words.txt" help:"Destination for corrected entries"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("wordfix"),
		kong.Description("Correct misspelled words in tagged word lists against a reference vocabulary."))

	if !storage.Exists(CLI.Words) {
		log.Fatalf("file '%s' does not exist", CLI.Words)
	}
	if !storage.Exists(CLI.Dict) {
		log.Fatalf("dictionary file '%s' does not exist", CLI.Dict)
	}

	v, err := vocab.LoadFile(CLI.Dict)
	if err != nil {
		log.Fatalf("failed to initialize spell checker: %v", err)
	}
	log.Printf("dictionary loaded successfully with %d words", v.Len())

	content, err := storage.ReadText(CLI.Words)
	if err != nil {
		log.Fatalf("failed to read word file: %v", err)
	}
	entries, err := wordlist.ParseContent(content)
	if err != nil {
		log.Fatalf("failed to read word file: %v", err)
	}
	log.Printf("successfully parsed %d entries from %s", len(entries), CLI.Words)

	c, err := corrector.New(v)
	if err != nil {
		log.Fatalf("failed to initialize spell checker: %v", err)
	}

	var out strings.Builder
	for _, entry := range c.CorrectAll(entries) {
		out.WriteString(entry.String())
		out.WriteByte('\n')
	}

	if err := storage.WriteText(CLI.Out, out.String()); err != nil {
		log.Fatalf("failed to write output file: %v", err)
	}
	log.Printf("correction completed! result saved to %s", CLI.Out)
}
