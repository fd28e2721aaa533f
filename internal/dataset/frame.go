package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trknhr/creditrisk/internal/model/entity"
)

// Frame is a labelled CSV table kept as raw strings.
type Frame struct {
	Header  []string
	Records [][]string
}

func ReadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	return &Frame{Header: records[0], Records: records[1:]}, nil
}

func (f *Frame) Len() int { return len(f.Records) }

func (f *Frame) Index(col string) int {
	for i, h := range f.Header {
		if h == col {
			return i
		}
	}
	return -1
}

// Drop returns the frame without col plus that column's values.
func (f *Frame) Drop(col string) (*Frame, []string, error) {
	idx := f.Index(col)
	if idx == -1 {
		return nil, nil, fmt.Errorf("column %q not in dataset", col)
	}
	out := &Frame{Header: without(f.Header, idx), Records: make([][]string, len(f.Records))}
	target := make([]string, len(f.Records))
	for i, rec := range f.Records {
		if idx < len(rec) {
			target[i] = rec[idx]
		}
		out.Records[i] = without(rec, idx)
	}
	return out, target, nil
}

func (f *Frame) Rows(idx []int) *Frame {
	out := &Frame{Header: f.Header, Records: make([][]string, len(idx))}
	for i, j := range idx {
		out.Records[i] = f.Records[j]
	}
	return out
}

// Matrix parses the given columns, in that order, as floats. Boolean
// dummies ("True"/"False") are accepted as 1/0.
func (f *Frame) Matrix(columns []string) ([][]float64, error) {
	pos := make([]int, len(columns))
	for i, c := range columns {
		if pos[i] = f.Index(c); pos[i] == -1 {
			return nil, fmt.Errorf("column %q not in dataset", c)
		}
	}
	out := make([][]float64, len(f.Records))
	for r, rec := range f.Records {
		row := make([]float64, len(columns))
		for i, p := range pos {
			v, err := parseCell(rec[p])
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", r+1, columns[i], err)
			}
			row[i] = v
		}
		out[r] = row
	}
	return out, nil
}

// Labels maps the target column to 0 (good) / 1 (bad).
func Labels(values []string) ([]int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "good", "0", "0.0", "false":
			out[i] = entity.LabelGood
		case "bad", "1", "1.0", "true":
			out[i] = entity.LabelBad
		default:
			return nil, fmt.Errorf("row %d: unknown risk label %q", i+1, v)
		}
	}
	return out, nil
}

func (f *Frame) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(file)
	if err := w.Write(f.Header); err != nil {
		file.Close()
		return err
	}
	if err := w.WriteAll(f.Records); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func without(s []string, idx int) []string {
	out := make([]string, 0, len(s))
	for i, v := range s {
		if i != idx {
			out = append(out, v)
		}
	}
	return out
}
