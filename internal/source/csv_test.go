package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"TrendCast/internal/domain/models"
)

func TestParseCSVSortsByDate(t *testing.T) {
	sorted := "date,value\n2021-01-01,10\n2021-02-01,20\n2021-03-01,30\n"
	reversed := "date,value\n2021-03-01,30\n2021-02-01,20\n2021-01-01,10\n"

	a, err := ParseCSV(strings.NewReader(sorted))
	if err != nil {
		t.Fatalf("sorted input: %v", err)
	}
	b, err := ParseCSV(strings.NewReader(reversed))
	if err != nil {
		t.Fatalf("reversed input: %v", err)
	}
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("expected 3 points, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between orderings: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestParseCSVSkipsBlankFields(t *testing.T) {
	in := "date,value\n2021-01-01,10\n,20\n2021-03-01,\n2021-04-01,40\n"
	series, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 points after filtering, got %d", len(series))
	}
	if series[0].Date.String() != "2021-01-01" || series[1].Date.String() != "2021-04-01" {
		t.Fatalf("unexpected survivors: %+v", series)
	}
}

func TestParseCSVAllBlankValuesFails(t *testing.T) {
	in := "date,value\n2021-01-01,\n2021-02-01,\n"
	_, err := ParseCSV(strings.NewReader(in))
	if !errors.Is(err, models.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestParseCSVBadValueAborts(t *testing.T) {
	in := "date,value\n2021-01-01,not-a-number\n"
	_, err := ParseCSV(strings.NewReader(in))
	if !errors.Is(err, models.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestParseCSVBadDateAborts(t *testing.T) {
	in := "date,value\n01/02/2021,10\n"
	_, err := ParseCSV(strings.NewReader(in))
	if !errors.Is(err, models.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestParseCSVIgnoresExtraColumns(t *testing.T) {
	in := "region,date,note,value\nwest,2021-01-01,ok,10.5\n"
	series, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 || series[0].Value != 10.5 {
		t.Fatalf("unexpected series: %+v", series)
	}
}

func TestParseCSVMissingColumnsFails(t *testing.T) {
	in := "date,amount\n2021-01-01,10\n"
	_, err := ParseCSV(strings.NewReader(in))
	if !errors.Is(err, models.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCSVFileNotFound(t *testing.T) {
	s := NewCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	_, err := s.Load(context.Background())
	if !errors.Is(err, models.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestCSVFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demand.csv")
	content := "date,value\n2021-02-01,110\n2021-01-01,100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	series, err := NewCSVFile(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 2 || series[0].Value != 100 {
		t.Fatalf("unexpected series: %+v", series)
	}
}
