// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Reporter receives each Result as soon as its combination finishes.
type Reporter interface {
	Report(Result) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Result) error

// Report calls f(res).
func (f ReporterFunc) Report(res Result) error { return f(res) }

// TextReporter prints results in the console format:
//
//	Matrix size: 100 x 1000
//	Row-major sum: 50012.345678, time: 0.000101 seconds (cpu 0.000100 seconds)
//	Column-major sum: 50012.345678, time: 0.000310 seconds (cpu 0.000309 seconds)
//
// Each block is preceded by a blank line.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report writes one block.
func (t *TextReporter) Report(res Result) error {
	if _, err := fmt.Fprintf(t.w, "\nMatrix size: %d x %d\n", res.Rows, res.Cols); err != nil {
		return err
	}
	if res.Skipped {
		_, err := fmt.Fprintf(t.w, "Matrix %d x %d is too large to allocate in memory: %v\n", res.Rows, res.Cols, res.Err)
		return err
	}
	if err := writeMeasurement(t.w, "Row-major", res.RowMajor); err != nil {
		return err
	}

	return writeMeasurement(t.w, "Column-major", res.ColMajor)
}

func writeMeasurement(w io.Writer, label string, m Measurement) error {
	st := m.Stats
	var err error
	if st.N > 1 {
		_, err = fmt.Fprintf(w, "%s sum: %f, time: %f ± %f seconds (cpu %f seconds, %d runs)\n",
			label, m.Sum, st.MeanWall, st.StdDevWall, st.MeanCPU, st.N)
	} else {
		_, err = fmt.Fprintf(w, "%s sum: %f, time: %f seconds (cpu %f seconds)\n",
			label, m.Sum, st.MeanWall, st.MeanCPU)
	}

	return err
}

// csvHeader is the fixed column set written by WriteCSV.
var csvHeader = []string{
	"run_id", "rows", "cols", "skipped",
	"row_sum", "col_sum", "sums_agree", "repeats",
	"row_wall_mean_s", "row_wall_stddev_s", "row_wall_min_s", "row_cpu_mean_s",
	"col_wall_mean_s", "col_wall_stddev_s", "col_wall_min_s", "col_cpu_mean_s",
	"speedup", "error",
}

// WriteCSV writes a header and one record per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, res := range results {
		if err := cw.Write(csvRecord(res)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func csvRecord(res Result) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	errText := ""
	if res.Err != nil {
		errText = res.Err.Error()
	}
	rs, cs := res.RowMajor.Stats, res.ColMajor.Stats

	return []string{
		res.RunID.String(),
		strconv.Itoa(res.Rows),
		strconv.Itoa(res.Cols),
		strconv.FormatBool(res.Skipped),
		f(res.RowMajor.Sum),
		f(res.ColMajor.Sum),
		strconv.FormatBool(res.SumsAgree),
		strconv.Itoa(rs.N),
		f(rs.MeanWall), f(rs.StdDevWall), f(rs.MinWall), f(rs.MeanCPU),
		f(cs.MeanWall), f(cs.StdDevWall), f(cs.MinWall), f(cs.MeanCPU),
		f(res.Speedup()),
		errText,
	}
}
