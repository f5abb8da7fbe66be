package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"TrendCast/internal/domain/models"
)

// CSVFile loads a series from a CSV file with named `date` and `value`
// columns. A missing file surfaces as models.ErrSourceNotFound; a file with
// no usable rows as models.ErrNoData.
type CSVFile struct {
	path string
}

func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

func (s *CSVFile) Name() string { return "csv" }

func (s *CSVFile) Load(_ context.Context) (models.Series, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// CSVReader loads a series from an in-memory CSV buffer, e.g. a dashboard
// upload.
type CSVReader struct {
	r io.Reader
}

func NewCSVReader(r io.Reader) *CSVReader {
	return &CSVReader{r: r}
}

func (s *CSVReader) Name() string { return "csv" }

func (s *CSVReader) Load(_ context.Context) (models.Series, error) {
	return ParseCSV(s.r)
}

// ParseCSV reads records with `date` (ISO 8601) and `value` (decimal)
// columns. Records missing either field are skipped; a present field that
// fails to parse aborts the load. The result is sorted ascending by date,
// and zero surviving records is a data-validation failure.
func ParseCSV(r io.Reader) (models.Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, models.ErrNoData
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	dateIdx, valueIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateIdx = i
		case "value":
			valueIdx = i
		}
	}
	if dateIdx < 0 || valueIdx < 0 {
		return nil, fmt.Errorf("%w: csv must have 'date' and 'value' columns", models.ErrNoData)
	}

	series := make(models.Series, 0, 64)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		rawDate := fieldAt(record, dateIdx)
		rawValue := fieldAt(record, valueIdx)
		if rawDate == "" || rawValue == "" {
			continue // intentional filter, not an error
		}
		date, err := models.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", models.ErrNoData, line, err)
		}
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad value %q", models.ErrNoData, line, rawValue)
		}
		series = append(series, models.SeriesPoint{Date: date, Value: value})
	}

	if len(series) == 0 {
		return nil, models.ErrNoData
	}
	series.Sort()
	return series, nil
}

func fieldAt(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
