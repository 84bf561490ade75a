package catalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// skippedRows is the number of rows after the header that carry no data.
const skippedRows = 2

// sheet is an open CSV export positioned on its first data row.
type sheet struct {
	name string
	f    *os.File
	r    *csv.Reader
	row  int
}

func openSheet(dir, name string) (*sheet, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	if _, err := br.ReadString('\n'); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	s := &sheet{name: name, f: f, r: r}
	// header, types and the placeholder row
	for range skippedRows + 1 {
		if _, err := s.next(); err != nil {
			f.Close()
			if err == io.EOF {
				return nil, fmt.Errorf("%s: truncated header", name)
			}
			return nil, err
		}
	}
	return s, nil
}

// next returns the next record, or io.EOF when the sheet is exhausted.
func (s *sheet) next() ([]string, error) {
	rec, err := s.r.Read()
	if err == io.EOF {
		return nil, err
	}
	s.row++
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	return rec, nil
}

// each calls fn for every data row.
func (s *sheet) each(fn func(rec []string) error) error {
	for {
		rec, err := s.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return fmt.Errorf("%s row %d: %w", s.name, s.row, err)
		}
	}
}

func (s *sheet) Close() error {
	return s.f.Close()
}

// field returns column i of rec as an integer.
func field(rec []string, i int) (int, error) {
	if i >= len(rec) {
		return 0, fmt.Errorf("missing column %d", i)
	}
	n, err := strconv.Atoi(rec[i])
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", i, err)
	}
	return n, nil
}
