package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testHeader = "Nombre del producto,Principal objetivo,Instrucciones de Uso,Ventajas,Presentación,Más información"

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "productos.csv")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test csv: %v", err)
	}
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	path := writeCSV(t,
		testHeader,
		"Adhesivo A,Adhesión universal,Aplicar y fotopolimerizar,Alta fuerza de adhesión,Frasco de 6 ml,https://example.com/a",
		"Blanqueador B,Blanqueamiento dental,Aplicar en cubeta,Resultados visibles,Jeringa de 3 ml,https://example.com/b",
	)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if s.Count() != 2 {
		t.Fatalf("unexpected count: %d", s.Count())
	}
	for i := 0; i < s.Count(); i++ {
		if s.Get(i).Name == "" {
			t.Fatalf("record %d has empty name", i)
		}
	}
	p := s.Get(1)
	if p.Name != "Blanqueador B" || p.MainObjective != "Blanqueamiento dental" {
		t.Fatalf("unexpected record: %+v", p)
	}
	if p.MoreInfoLink != "https://example.com/b" {
		t.Fatalf("unexpected link: %q", p.MoreInfoLink)
	}
}

func TestLoadComputesSearchText(t *testing.T) {
	path := writeCSV(t,
		testHeader,
		"Adhesivo A,Adhesión Universal,Aplicar,VENTAJA Fuerte,Frasco,https://example.com/a",
	)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	got := s.Get(0).SearchText
	want := "adhesivo a adhesión universal ventaja fuerte"
	if got != want {
		t.Fatalf("search text mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestGetIsIdempotent(t *testing.T) {
	path := writeCSV(t,
		testHeader,
		"Adhesivo A,Adhesión,Aplicar,Fuerte,Frasco,https://example.com/a",
	)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	first := s.Get(0)
	second := s.Get(0)
	if first != second {
		t.Fatalf("records differ between calls: %+v vs %+v", first, second)
	}

	// Returned values are copies; mutating one must not leak into the store.
	first.Name = "mutated"
	if s.Get(0).Name != "Adhesivo A" {
		t.Fatalf("catalog mutated via returned record")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got: %v", err)
	}
}

func TestLoadEmptyDataset(t *testing.T) {
	path := writeCSV(t, testHeader)
	_, err := Load(path)
	if !errors.Is(err, ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad for headers-only file, got: %v", err)
	}
}

func TestLoadMalformedCSV(t *testing.T) {
	path := writeCSV(t,
		testHeader,
		`"Adhesivo A,Adhesión,Aplicar`,
	)
	_, err := Load(path)
	if !errors.Is(err, ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad for malformed row, got: %v", err)
	}
}

func TestLoadRejectsEmptyName(t *testing.T) {
	path := writeCSV(t,
		testHeader,
		" ,Adhesión,Aplicar,Fuerte,Frasco,https://example.com/a",
	)
	_, err := Load(path)
	if !errors.Is(err, ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad for empty name, got: %v", err)
	}
}
