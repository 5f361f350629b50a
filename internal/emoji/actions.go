package emoji

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordstat/pkg/emoji"
)

// LookupAction prints the emoji matched for each word argument, or "-".
func LookupAction(c *cli.Context) error {
	if c.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: No words provided")
		fmt.Fprintln(os.Stderr, "Usage: wordstat emoji cat pizza rocket")
		return cli.Exit("", 1)
	}
	writeLookups(os.Stdout, c.Args().Slice())
	return nil
}

func writeLookups(w io.Writer, words []string) {
	for _, word := range words {
		glyph, ok := emoji.Lookup(word)
		if !ok {
			glyph = "-"
		}
		fmt.Fprintf(w, "%s: %s\n", word, glyph)
	}
}
