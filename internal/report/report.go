// Package report writes rankings for people and programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/gopheracademy/logwords/rank"
)

// Writer writes a ranking to w.
type Writer func(w io.Writer, r rank.Ranking) error

var writers = map[string]Writer{
	"text": Text,
	"json": JSON,
	"list": List,
}

// Lookup returns the writer registered under name.
func Lookup(name string) (Writer, error) {
	write, ok := writers[name]
	if !ok {
		return nil, errors.Errorf("unknown format %q (one of %v)", name, Names())
	}
	return write, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text writes one "word<TAB>count" line per entry.
func Text(w io.Writer, r rank.Ranking) error {
	return TextColor(false)(w, r)
}

// TextColor is Text with the words highlighted when enabled is true.
func TextColor(enabled bool) Writer {
	word := color.New(color.FgCyan)
	if enabled {
		word.EnableColor()
	} else {
		word.DisableColor()
	}

	return func(w io.Writer, r rank.Ranking) error {
		for _, e := range r {
			if _, err := word.Fprint(w, e.Word); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "\t%d\n", e.Count); err != nil {
				return err
			}
		}
		return nil
	}
}

// Document is the JSON form of a ranking.
type Document struct {
	Words rank.Ranking `json:"words"`
}

// JSON writes r as a Document.
func JSON(w io.Writer, r rank.Ranking) error {
	if r == nil {
		r = rank.Ranking{}
	}
	return json.NewEncoder(w).Encode(Document{Words: r})
}

// List writes r on one line as [("word", count), ...].
func List(w io.Writer, r rank.Ranking) error {
	_, err := fmt.Fprintln(w, r)
	return err
}
