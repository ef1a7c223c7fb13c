package lrsio

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/polyhedron"
)

// WriteResult mirrors the input grammar back out: a representation header,
// "begin", the lrs-style "***** n rational" row-count line, the matrix
// rows, "end", and the mode-appropriate "*Totals: ..." trailer. Grounded
// on Polyhedron.write in the original source.
func WriteResult(w io.Writer, res *polyhedron.Result, mode polyhedron.Mode) error {
	var header, totals string
	var m *densematrix.Matrix
	var cols int

	switch mode {
	case polyhedron.VE:
		header = "V-representation"
		m = res.V.M
		cols = res.V.Dim() + 1
		totals = res.Stats.VertexTotalsLine()
	case polyhedron.CH:
		header = "H-representation"
		m = res.H.M
		cols = res.H.Dim() + 1
		totals = res.Stats.FacetTotalsLine()
	default:
		return errors.Errorf("lrsio: unknown mode %d", mode)
	}

	if err := writeLines(w, header, "begin", fmt.Sprintf("***** %d rational", cols)); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		if err := writeRow(w, m.Row(i)); err != nil {
			return errors.Wrapf(err, "lrsio: writing row %d", i+1)
		}
	}
	if err := writeLines(w, "end", totals); err != nil {
		return err
	}
	return nil
}

func writeLines(w io.Writer, lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return errors.Wrap(err, "lrsio: writing line")
		}
	}
	return nil
}

func writeRow(w io.Writer, row []bigrational.Rational) error {
	for j, c := range row {
		sep := ""
		if j > 0 {
			sep = " "
		}
		if _, err := fmt.Fprint(w, sep+c.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
