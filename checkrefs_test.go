package bcbioconf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckReferences(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"sampleA_1.fq.gz", "sampleA_2.fq.gz"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("@read\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &Config{
		Details: []SampleEntry{
			{
				Analysis:    "RNA-seq",
				GenomeBuild: "hg38",
				Files:       []string{"sampleA_1.fq.gz", "sampleA_2.fq.gz"},
			},
		},
	}

	if err := cfg.CheckReferences(context.Background(), dir, nil); err != nil {
		t.Error("All files exist, but got:", err)
	}

	cfg.Details = append(cfg.Details, SampleEntry{
		Analysis:    "RNA-seq",
		GenomeBuild: "hg38",
		Files:       []string{"sampleB_1.fq.gz", "sampleB_2.fq.gz"},
	})

	err := cfg.CheckReferences(context.Background(), dir, nil)
	if err == nil {
		t.Fatal("Expected missing-file error, got none")
	}

	refErr := &ReferenceError{}
	if !errors.As(err, &refErr) {
		t.Fatal("Expected a *ReferenceError, got:", err)
	}

	if len(refErr.Missing) != 2 {
		t.Error("Expected both sampleB reads to be reported missing, got:", refErr.Missing)
	}
}

func TestCheckReferencesAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "reads.fq.gz")
	if err := os.WriteFile(full, []byte("@read\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		Details: []SampleEntry{
			{Analysis: "RNA-seq", GenomeBuild: "hg38", Files: []string{full}},
		},
	}

	// baseDir should be ignored for absolute paths
	if err := cfg.CheckReferences(context.Background(), "/nonexistent", nil); err != nil {
		t.Error("Absolute path exists, but got:", err)
	}
}
