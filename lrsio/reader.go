// Package lrsio reads and writes the lrs-style text format spec.md §6
// describes: an optional H-/V-representation header, an options block
// ignored up to "begin", an "m n kind" (or "***** n kind") header line, m
// rows of whitespace-separated "p" or "p/q" tokens, and a terminating
// "end". Grounded on Polyhedron.readFromFile/Matrix.read in the original
// source, re-expressed over io.Reader/io.Writer instead of file paths.
package lrsio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/polyhedron"
)

// ReadPolyhedron parses r into an Input: its representation mode, integer-
// data flag, and matrix. Blank lines and lines beginning with "*" or "#"
// are skipped wherever the grammar allows a comment.
func ReadPolyhedron(r io.Reader) (*polyhedron.Input, error) {
	sc := &lineScanner{s: bufio.NewScanner(r)}

	mode := polyhedron.VE
	sawBegin := false
	for sc.next() {
		line := sc.text()
		if line == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "#") {
			continue
		}
		low := strings.ToLower(line)
		switch {
		case strings.HasPrefix(low, "h-representation"):
			mode = polyhedron.VE
			continue
		case strings.HasPrefix(low, "v-representation"):
			mode = polyhedron.CH
			continue
		case low == "begin":
			sawBegin = true
		default:
			continue // option/name line, ignored
		}
		break
	}
	if err := sc.err(); err != nil {
		return nil, errors.Wrap(err, "lrsio: scanning header")
	}
	if !sawBegin {
		return nil, errors.Wrap(bigrational.ErrParseFault, "lrsio: no 'begin' line found")
	}

	header, err := sc.nextNonEmpty()
	if err != nil {
		return nil, errors.Wrap(err, "lrsio: reading header line")
	}
	fields := strings.Fields(header)
	if len(fields) < 3 {
		return nil, errors.Wrapf(bigrational.ErrParseFault,
			"lrsio: expected 'm n integer|rational' or '***** n integer|rational', got %q", header)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, errors.Wrapf(bigrational.ErrParseFault, "lrsio: bad column count %q", fields[1])
	}
	integerData := strings.EqualFold(fields[2], "integer")

	var m int
	var rows [][]string
	if fields[0] == "*****" {
		for {
			line, err := sc.nextNonEmpty()
			if err != nil {
				return nil, errors.Wrap(err, "lrsio: reading rows before 'end'")
			}
			if strings.EqualFold(line, "end") {
				break
			}
			rows = append(rows, strings.Fields(line))
		}
		m = len(rows)
	} else {
		m, err = strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(bigrational.ErrParseFault, "lrsio: row count must be numeric or '*****', got %q", fields[0])
		}
		for i := 0; i < m; i++ {
			line, err := sc.nextNonEmpty()
			if err != nil {
				return nil, errors.Wrapf(err, "lrsio: reading row %d", i+1)
			}
			rows = append(rows, strings.Fields(line))
		}
		end, err := sc.nextNonEmpty()
		if err != nil {
			return nil, errors.Wrap(err, "lrsio: reading trailing 'end'")
		}
		if !strings.EqualFold(end, "end") {
			return nil, errors.Wrapf(bigrational.ErrParseFault, "lrsio: expected 'end', got %q", end)
		}
	}

	mat := densematrix.New(m, n)
	for i, tokens := range rows {
		if len(tokens) != n {
			return nil, errors.Wrapf(bigrational.ErrParseFault, "lrsio: expected %d columns on row %d, got %d", n, i+1, len(tokens))
		}
		for j, tok := range tokens {
			v, err := bigrational.Parse(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "lrsio: parsing row %d column %d (%q)", i+1, j+1, tok)
			}
			mat.Set(i, j, v)
		}
	}

	return &polyhedron.Input{Mode: mode, IntegerData: integerData, M: mat}, nil
}

// lineScanner trims each line and remembers the last scanner error.
type lineScanner struct {
	s       *bufio.Scanner
	current string
}

func (l *lineScanner) next() bool {
	if !l.s.Scan() {
		return false
	}
	l.current = strings.TrimSpace(l.s.Text())
	return true
}

func (l *lineScanner) text() string { return l.current }

func (l *lineScanner) err() error { return l.s.Err() }

// nextNonEmpty returns the next non-blank line, skipping blanks.
func (l *lineScanner) nextNonEmpty() (string, error) {
	for l.next() {
		if l.current != "" {
			return l.current, nil
		}
	}
	if err := l.s.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}
