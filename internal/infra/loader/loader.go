// File: internal/infra/loader/loader.go
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// companyColumns are the header names tried when sniffing which column holds
// the company name, compared case- and whitespace-insensitively. When none
// match, the first column is used.
var companyColumns = []string{
	"company",
	"company name",
	"company_name",
	"name",
	"organization",
	"business",
}

var allowedContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	"text/csv":                                                          true,
}

// Loader turns an uploaded spreadsheet/CSV into an ordered company list.
type Loader struct {
	maxBytes int64
	log      *zerolog.Logger
}

func New(maxBytes int64, logger *zerolog.Logger) *Loader {
	l := logger.With().Str("component", "Loader").Logger()
	return &Loader{maxBytes: maxBytes, log: &l}
}

// FromUpload validates the upload (extension, content type, size cap) and
// extracts company names in file order.
func (l *Loader) FromUpload(file multipart.File, hdr *multipart.FileHeader) ([]string, error) {
	if hdr.Size > l.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidArgument, l.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(hdr.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		return nil, fmt.Errorf("%w: only .xlsx and .csv files are allowed", domain.ErrUnsupportedFile)
	}
	if ct := hdr.Header.Get("Content-Type"); ct != "" && !allowedContentTypes[ct] {
		return nil, fmt.Errorf("%w: content type %q", domain.ErrUnsupportedFile, ct)
	}

	data, err := io.ReadAll(io.LimitReader(file, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidArgument, l.maxBytes)
	}

	var companies []string
	if ext == ".xlsx" {
		companies, err = parseXLSX(data)
	} else {
		companies, err = parseCSV(data)
	}
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.ErrNoCompaniesInFile
	}

	l.log.Info().Str("file", hdr.Filename).Int("companies", len(companies)).Msg("company list loaded")
	return companies, nil
}

func parseXLSX(data []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid xlsx file", domain.ErrUnsupportedFile)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := sniffColumn(rows[0])
	var companies []string
	for _, row := range rows[1:] {
		if name := cellAt(row, col); name != "" {
			companies = append(companies, name)
		}
	}
	return companies, nil
}

func parseCSV(data []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid csv file", domain.ErrUnsupportedFile)
	}
	if len(records) < 2 {
		return nil, nil
	}

	col := sniffColumn(records[0])
	var companies []string
	for _, row := range records[1:] {
		if name := cellAt(row, col); name != "" {
			companies = append(companies, name)
		}
	}
	return companies, nil
}

func sniffColumn(header []string) int {
	for _, candidate := range companyColumns {
		for i, h := range header {
			if strings.ToLower(strings.TrimSpace(h)) == candidate {
				return i
			}
		}
	}
	return 0
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
