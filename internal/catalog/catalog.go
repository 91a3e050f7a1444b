package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
)

// ErrDataLoad marks catalog construction failures. A broken or missing
// dataset is a broken deployment, so callers are expected to treat this
// as fatal rather than recover.
var ErrDataLoad = errors.New("catalog data load failed")

// ProductRecord is one row of the product dataset. Column headers match
// the source spreadsheet, which is maintained in Spanish.
type ProductRecord struct {
	Name              string `csv:"Nombre del producto"`
	MainObjective     string `csv:"Principal objetivo"`
	UsageInstructions string `csv:"Instrucciones de Uso"`
	Advantages        string `csv:"Ventajas"`
	Presentation      string `csv:"Presentación"`
	MoreInfoLink      string `csv:"Más información"`

	// SearchText is a lowercase concatenation of the searchable fields,
	// computed once at load time. Selection is currently delegated to the
	// model, so nothing reads it yet; kept for a local-search fallback.
	SearchText string `csv:"-"`
}

// Store holds the fixed product catalog. Records are identified by their
// zero-based position in load order and never change after Load.
type Store struct {
	records []ProductRecord
}

// Load reads the catalog CSV at path. Any failure (missing file, malformed
// CSV, missing headers, empty required fields) wraps ErrDataLoad.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataLoad, path, err)
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrDataLoad, err)
	}

	var records []ProductRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode rows: %v", ErrDataLoad, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: dataset %s has no rows", ErrDataLoad, path)
	}

	for i := range records {
		r := &records[i]
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("%w: row %d has empty product name", ErrDataLoad, i)
		}
		if strings.TrimSpace(r.MainObjective) == "" {
			return nil, fmt.Errorf("%w: row %d (%s) has empty objective", ErrDataLoad, i, r.Name)
		}
		r.SearchText = strings.ToLower(r.Name + " " + r.MainObjective + " " + r.Advantages)
	}

	return &Store{records: records}, nil
}

// Get returns the record at index i. Valid only for 0 <= i < Count();
// callers must range-check first.
func (s *Store) Get(i int) ProductRecord {
	return s.records[i]
}

func (s *Store) Count() int {
	return len(s.records)
}
