// Package rank counts word frequencies in log lines and ranks the most
// frequent words.
package rank

import (
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	wordRe = regexp.MustCompile(`[a-z0-9]+`)
)

// Entry is a word and the number of times it occurred.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Ranking is a list of entries ordered by descending count, then by word.
type Ranking []Entry

// Words returns the words of line: maximal runs of ASCII letters and digits,
// lowercased. Every other character separates words.
//
// Lowercasing uses the full Unicode mappings, so a character may lower to
// several runes: U+0130 becomes "i" plus a combining dot, which splits the
// word.
func Words(line string) []string {
	// A Caser keeps state; each call gets its own.
	lower := cases.Lower(language.Und)
	return wordRe.FindAllString(lower.String(line), -1)
}

// Freq counts every word in lines.
func Freq(lines []string) map[string]int {
	counts := make(map[string]int)
	for _, line := range lines {
		for _, w := range Words(line) {
			counts[w]++
		}
	}
	return counts
}

// TopK returns the k most frequent words of freqs. Words with equal counts
// are ordered alphabetically. Fewer than k entries are returned when freqs
// holds fewer than k words.
func TopK(freqs map[string]int, k uint) Ranking {
	r := make(Ranking, 0, len(freqs))
	for w, n := range freqs {
		r = append(r, Entry{Word: w, Count: n})
	}

	sort.Slice(r, func(i, j int) bool {
		if r[i].Count != r[j].Count {
			return r[i].Count > r[j].Count
		}
		return r[i].Word < r[j].Word
	})

	if uint(len(r)) > k {
		r = r[:k]
	}
	return r
}

// TopKWords returns the k most frequent words in lines.
func TopKWords(lines []string, k uint) Ranking {
	return TopK(Freq(lines), k)
}
