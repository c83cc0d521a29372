package samplesheet

import (
	"fmt"

	"github.com/carbocation/bcbioconf"
)

// Defaults seeds the fields that a samplesheet does not carry per row. A
// row-level genome_build column overrides GenomeBuild.
type Defaults struct {
	Analysis    string
	GenomeBuild string
	UploadDir   string
	Aligner     string
}

// BuildConfig assembles a run configuration from samplesheet rows. Rows are
// grouped into one entry per sample: explicitly via the description column,
// or implicitly by the FASTQ naming convention, so that the two reads of a
// pair land in the same entry with read 1 first. Entry order follows first
// appearance in the sheet.
func BuildConfig(rows []Row, defaults Defaults) (*bcbioconf.Config, error) {
	if defaults.Analysis == "" {
		return nil, fmt.Errorf("an analysis name is required to build a configuration")
	}

	type sample struct {
		description string
		batch       string
		phenotype   string
		genomeBuild string
		files       []string
	}

	order := []string{}
	grouped := map[string]*sample{}

	for _, row := range rows {
		description := row.Description.ValueOrZero()
		if description == "" {
			description = SampleName(row.File)
		}

		s, seen := grouped[description]
		if !seen {
			s = &sample{description: description, genomeBuild: defaults.GenomeBuild}
			grouped[description] = s
			order = append(order, description)
		}

		if row.Batch.Valid {
			s.batch = row.Batch.String
		}
		if row.Phenotype.Valid {
			s.phenotype = row.Phenotype.String
		}
		if row.GenomeBuild.Valid {
			s.genomeBuild = row.GenomeBuild.String
		}
		s.files = append(s.files, row.File)
	}

	cfg := &bcbioconf.Config{
		Upload: bcbioconf.UploadSpec{Dir: defaults.UploadDir},
	}

	for _, description := range order {
		s := grouped[description]

		files := []string{}
		for _, pair := range PairFastqs(s.files) {
			files = append(files, pair...)
		}

		entry := bcbioconf.SampleEntry{
			Analysis:    defaults.Analysis,
			Description: s.description,
			Files:       files,
			GenomeBuild: s.genomeBuild,
		}

		if defaults.Aligner != "" {
			entry.Algorithm.Aligner = defaults.Aligner
		}

		if s.batch != "" || s.phenotype != "" {
			entry.Metadata = map[string]string{}
			if s.batch != "" {
				entry.Metadata["batch"] = s.batch
			}
			if s.phenotype != "" {
				entry.Metadata["phenotype"] = s.phenotype
			}
		}

		cfg.Details = append(cfg.Details, entry)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
