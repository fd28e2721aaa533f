package importance

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var header = []string{"Feature", "Importance"}

func WriteCSV(path string, t Table) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func Encode(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range t {
		if err := cw.Write([]string{e.Feature, strconv.FormatFloat(e.Importance, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV keeps the file order. A missing file surfaces as fs.ErrNotExist
// so the form can show a notice instead of failing.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty importance file")
	}

	featIdx, impIdx := -1, -1
	for i, col := range records[0] {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "feature":
			featIdx = i
		case "importance":
			impIdx = i
		}
	}
	if featIdx == -1 || impIdx == -1 {
		return nil, fmt.Errorf("importance file must have Feature and Importance columns")
	}

	t := make(Table, 0, len(records)-1)
	for line, rec := range records[1:] {
		if len(rec) <= featIdx || len(rec) <= impIdx {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[impIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		t = append(t, Entry{Feature: rec[featIdx], Importance: v})
	}
	return t, nil
}
