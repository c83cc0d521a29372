package samplesheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// Row is one samplesheet line. Only samplename is mandatory; the remaining
// columns may be absent from the sheet entirely, which is why they are null
// types rather than plain strings.
type Row struct {
	File        string      `csv:"samplename"`
	Description null.String `csv:"description"`
	Batch       null.String `csv:"batch"`
	Phenotype   null.String `csv:"phenotype"`
	GenomeBuild null.String `csv:"genome_build"`
}

type Parser struct {
	Layout Layout
}

func New(layout string) (*Parser, error) {
	l, exists := Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return &Parser{Layout: l}, nil
}

// Read consumes the full samplesheet. Rows whose samplename is empty or
// commented out are skipped.
func (p *Parser) Read(r io.Reader) ([]Row, error) {
	// Tell gocsv to honor the layout's delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = p.Layout.Delimiter
		cr.Comment = p.Layout.Comment
		cr.LazyQuotes = true
		cr.TrimLeadingSpace = true
		return cr
	})

	records := []*Row{}
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, err
	}

	out := make([]Row, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.File) == "" {
			continue
		}
		out = append(out, *rec)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("samplesheet contains no usable rows (is the samplename column present?)")
	}

	return out, nil
}
