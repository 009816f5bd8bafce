package reference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cropadvisor/entities"
)

// Table is the per-crop ideal N/P/K reference. Read-only once loaded.
type Table struct {
	rows  map[string]entities.CropReference // normalized crop -> row
	names []string
}

// Load reads a .csv or .xlsx reference file. XLSX uses the first sheet.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	}
}

func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var records [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return build(records)
}

func loadXLSX(path string) (*Table, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return build(rows)
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func normCrop(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func build(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("reference table is empty")
	}
	head := records[0]
	hmap := map[string]int{}
	for i, h := range head {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCrop := findAny("Crop", "crop_name", "label")
	cN := findAny("N", "nitrogen")
	cP := findAny("P", "phosphorus")
	cK := findAny("K", "potassium")
	if cCrop == -1 || cN == -1 || cP == -1 || cK == -1 {
		return nil, fmt.Errorf("reference table missing required columns. Found headers: %v; need Crop, N, P, K", head)
	}

	t := &Table{rows: map[string]entities.CropReference{}}
	for line, rec := range records[1:] {
		get := func(idx int) string {
			if idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		crop := get(cCrop)
		if crop == "" {
			continue
		}
		key := normCrop(crop)
		if _, dup := t.rows[key]; dup {
			return nil, fmt.Errorf("row %d: crop %q listed twice", line+2, crop)
		}

		row := entities.CropReference{Crop: crop}
		for _, col := range []struct {
			name string
			idx  int
			dst  *float64
		}{{"N", cN, &row.N}, {"P", cP, &row.P}, {"K", cK, &row.K}} {
			v, err := strconv.ParseFloat(get(col.idx), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %s for %q: %w", line+2, col.name, crop, err)
			}
			*col.dst = v
		}
		t.rows[key] = row
		t.names = append(t.names, crop)
	}
	if len(t.rows) == 0 {
		return nil, errors.New("reference table has no crops")
	}
	sort.Strings(t.names)
	return t, nil
}

// Lookup finds a crop ignoring case and surrounding space.
func (t *Table) Lookup(crop string) (entities.CropReference, bool) {
	r, ok := t.rows[normCrop(crop)]
	return r, ok
}

// Crops lists the crop names as written in the file, sorted.
func (t *Table) Crops() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) Len() int { return len(t.rows) }
