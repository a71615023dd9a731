package wc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Counters print in this order, always.
const order = "lwmc"

const (
	LineFlag = "lines"
	WordFlag = "words"
	CharFlag = "chars"
	ByteFlag = "bytes"
)

type Options struct {
	Lines, Words, Characters, Bytes bool

	Help  bool
	Files []string
}

// GetBool reports whether the named counter is selected for output.
// With none of the four counting flags set, all four are selected.
func (wo Options) GetBool(flag string) bool {
	none := !wo.Lines && !wo.Words && !wo.Characters && !wo.Bytes
	switch flag {
	case LineFlag:
		return none || wo.Lines
	case WordFlag:
		return none || wo.Words
	case CharFlag:
		return none || wo.Characters
	case ByteFlag:
		return none || wo.Bytes
	default:
		return false
	}
}

// Results are the totals for one input.
type Results struct {
	Lines, Words, Characters, Bytes uint

	Filename string
}

func (r Results) get(flag byte) uint {
	switch flag {
	case 'l':
		return r.Lines
	case 'w':
		return r.Words
	case 'm':
		return r.Characters
	case 'c':
		return r.Bytes
	}
	return 0
}

type ResultsSet struct {
	Results []Results
}

func (rs *ResultsSet) Add(r Results) {
	rs.Results = append(rs.Results, r)
}

// Total sums every counter across the set for the trailing "total" row.
func (rs ResultsSet) Total() Results {
	total := Results{Filename: "total"}
	for _, r := range rs.Results {
		total.Lines += r.Lines
		total.Words += r.Words
		total.Characters += r.Characters
		total.Bytes += r.Bytes
	}
	return total
}

func approxLog10(u uint) uint {
	var i uint = 1
	for ; true; i++ {
		u /= 10
		if u == 0 {
			return i
		}
	}
	return 1
}

// maxSelected is the largest counter that will actually be printed,
// which sets the column width for the whole set.
func (rs ResultsSet) maxSelected(options Options) (max uint) {
	for _, r := range rs.Results {
		for i := 0; i < len(order); i++ {
			if !options.GetBool(flagName(order[i])) {
				continue
			}
			if n := r.get(order[i]); n > max {
				max = n
			}
		}
	}
	return
}

func flagName(c byte) string {
	switch c {
	case 'l':
		return LineFlag
	case 'w':
		return WordFlag
	case 'm':
		return CharFlag
	case 'c':
		return ByteFlag
	}
	return ""
}

// Printf renders the selected counters for every result, right aligned
// to the widest printed value, one line per input. The filename column
// is omitted when empty (standard input).
func (rs ResultsSet) Printf(options Options) string {
	builder := strings.Builder{}
	width := approxLog10(rs.maxSelected(options))
	fmtstring := fmt.Sprintf("%%%dd", width)
	for _, results := range rs.Results {
		first := true
		for i := 0; i < len(order); i++ {
			if !options.GetBool(flagName(order[i])) {
				continue
			}
			if !first {
				builder.WriteByte(' ')
			}
			first = false
			builder.WriteString(fmt.Sprintf(fmtstring, results.get(order[i])))
		}
		if results.Filename != "" {
			builder.WriteByte(' ')
			builder.WriteString(results.Filename)
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Count scans the input once and tallies every counter. Characters are
// decoded as UTF-8; each invalid byte comes back from ReadRune as a one
// byte RuneError and so still counts as one character. A word is a
// maximal run of non-whitespace, counted on entry.
func Count(in io.Reader) (Results, error) {
	buffered := bufio.NewReader(in)
	results := Results{}
	inWord := false

	for {
		r, size, err := buffered.ReadRune()
		if err != nil {
			if err == io.EOF {
				return results, nil
			}
			return results, err
		}
		results.Bytes += uint(size)
		results.Characters++
		if r == '\n' {
			results.Lines++
		}
		if isSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			results.Words++
		}
	}
}
