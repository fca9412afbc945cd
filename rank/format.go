package rank

import (
	"fmt"
	"strings"
)

// String renders e as ("word", count).
func (e Entry) String() string {
	return fmt.Sprintf("(%q, %d)", e.Word, e.Count)
}

// Format implements fmt.Formatter
func (e Entry) Format(state fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(state, e.String())
	case 'q':
		fmt.Fprintf(state, "%q", e.String())
	case 'v':
		switch {
		case state.Flag('#'):
			fmt.Fprintf(state, "%T{Word:%q, Count:%d}", e, e.Word, e.Count)
		case state.Flag('+'):
			fmt.Fprintf(state, "{Word:%s Count:%d}", e.Word, e.Count)
		default:
			fmt.Fprint(state, e.String())
		}
	default:
		fmt.Fprintf(state, "%%!%c(rank.Entry=%s)", verb, e.String())
	}
}

// String renders r as [("word", count), ...].
func (r Ranking) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Format implements fmt.Formatter. Each entry is formatted with the same verb
// and flags.
func (r Ranking) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('#') {
		fmt.Fprintf(state, "%T", r)
	}
	if verb == 's' || (verb == 'v' && !state.Flag('#') && !state.Flag('+')) {
		fmt.Fprint(state, r.String())
		return
	}

	format := "%" + flags(state) + string(verb)
	fmt.Fprint(state, "[")
	for i, e := range r {
		if i > 0 {
			fmt.Fprint(state, ", ")
		}
		fmt.Fprintf(state, format, e)
	}
	fmt.Fprint(state, "]")
}

func flags(state fmt.State) string {
	var f string
	for _, c := range "+#- 0" {
		if state.Flag(int(c)) {
			f += string(c)
		}
	}
	return f
}
