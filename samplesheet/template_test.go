package samplesheet

import (
	"reflect"
	"testing"

	"gopkg.in/guregu/null.v3"
)

func TestBuildConfig(t *testing.T) {
	rows := []Row{
		{File: "1_1.fq.gz", Description: null.StringFrom("Test1"), Batch: null.StringFrom("TestBatch1")},
		{File: "1_2.fq.gz", Description: null.StringFrom("Test1"), Batch: null.StringFrom("TestBatch1")},
		{File: "2_1.fq.gz", Description: null.StringFrom("2Test2"), Batch: null.StringFrom("TestBatch1")},
		{File: "2_2.fq.gz", Description: null.StringFrom("2Test2"), Batch: null.StringFrom("TestBatch1")},
	}

	cfg, err := BuildConfig(rows, Defaults{
		Analysis:    "RNA-seq",
		GenomeBuild: "hg19",
		UploadDir:   "../final",
		Aligner:     "star",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Upload.Dir != "../final" {
		t.Error("Wrong upload dir:", cfg.Upload.Dir)
	}

	if len(cfg.Details) != 2 {
		t.Fatal("Expected 2 entries, got", len(cfg.Details))
	}

	first := cfg.Details[0]
	if first.Description != "Test1" ||
		first.Analysis != "RNA-seq" ||
		first.GenomeBuild != "hg19" ||
		first.Algorithm.Aligner != "star" ||
		first.Metadata["batch"] != "TestBatch1" {
		t.Errorf("First entry built wrong: %+v", first)
	}

	if !reflect.DeepEqual(first.Files, []string{"1_1.fq.gz", "1_2.fq.gz"}) {
		t.Error("First entry files are not the ordered read pair:", first.Files)
	}

	if cfg.Details[1].Description != "2Test2" {
		t.Error("Second entry description:", cfg.Details[1].Description)
	}
}

func TestBuildConfigGroupsByFastqName(t *testing.T) {
	// No description column: the read pair still lands in one entry.
	rows := []Row{
		{File: "reads/SampleA_R1.fastq.gz"},
		{File: "reads/SampleA_R2.fastq.gz"},
	}

	cfg, err := BuildConfig(rows, Defaults{Analysis: "RNA-seq", GenomeBuild: "hg38"})
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Details) != 1 {
		t.Fatal("Expected 1 entry, got", len(cfg.Details))
	}

	if cfg.Details[0].Description != "SampleA" {
		t.Error("Derived description:", cfg.Details[0].Description)
	}

	if len(cfg.Details[0].Files) != 2 {
		t.Error("Files:", cfg.Details[0].Files)
	}
}

func TestBuildConfigPerRowGenomeBuild(t *testing.T) {
	rows := []Row{
		{File: "a_1.fq.gz", GenomeBuild: null.StringFrom("mm10")},
		{File: "b_1.fq.gz"},
	}

	cfg, err := BuildConfig(rows, Defaults{Analysis: "RNA-seq", GenomeBuild: "hg38"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Details[0].GenomeBuild != "mm10" {
		t.Error("Row-level genome build should win:", cfg.Details[0].GenomeBuild)
	}
	if cfg.Details[1].GenomeBuild != "hg38" {
		t.Error("Default genome build should apply:", cfg.Details[1].GenomeBuild)
	}
}

func TestBuildConfigRequiresAnalysis(t *testing.T) {
	if _, err := BuildConfig([]Row{{File: "a_1.fq.gz"}}, Defaults{GenomeBuild: "hg38"}); err == nil {
		t.Error("Expected an error when no analysis is given")
	}
}

func TestBuildConfigRequiresGenomeBuild(t *testing.T) {
	if _, err := BuildConfig([]Row{{File: "a_1.fq.gz"}}, Defaults{Analysis: "RNA-seq"}); err == nil {
		t.Error("Expected a schema error when no genome build is available")
	}
}
