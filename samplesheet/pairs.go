package samplesheet

import (
	"path/filepath"
	"strings"
)

// read-suffix markers in the order we try them; longer markers first so that
// sample_R1 does not get mistaken for a bare _1 suffix.
var readMarkers = []struct {
	read1, read2 string
}{
	{"_R1", "_R2"},
	{"_1", "_2"},
}

// SampleName derives a sample identifier from a FASTQ path: the base name
// with compression and FASTQ extensions stripped, minus any read-pair suffix.
func SampleName(path string) string {
	base := stripExtensions(filepath.Base(path))

	for _, m := range readMarkers {
		if strings.HasSuffix(base, m.read1) {
			return strings.TrimSuffix(base, m.read1)
		}
		if strings.HasSuffix(base, m.read2) {
			return strings.TrimSuffix(base, m.read2)
		}
	}

	return base
}

// PairFastqs groups FASTQ paths into read pairs, keeping read 1 ahead of
// read 2 within each pair. Unpaired files come through as single-element
// groups. Group order follows the first appearance of each sample in the
// input.
func PairFastqs(paths []string) [][]string {
	order := []string{}
	grouped := map[string][]string{}

	for _, p := range paths {
		name := SampleName(p)
		if _, seen := grouped[name]; !seen {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], p)
	}

	out := make([][]string, 0, len(order))
	for _, name := range order {
		group := grouped[name]
		sortReadPair(group)
		out = append(out, group)
	}

	return out
}

// sortReadPair ensures read 1 precedes read 2. Input order is already
// meaningful for anything that is not a recognizable pair, so only a
// two-element group with swapped reads gets touched.
func sortReadPair(group []string) {
	if len(group) != 2 {
		return
	}

	first := stripExtensions(filepath.Base(group[0]))
	for _, m := range readMarkers {
		if strings.HasSuffix(first, m.read2) {
			group[0], group[1] = group[1], group[0]
			return
		}
		if strings.HasSuffix(first, m.read1) {
			return
		}
	}
}

func stripExtensions(base string) string {
	for _, ext := range []string{".gz", ".bz2", ".fastq", ".fq"} {
		base = strings.TrimSuffix(base, ext)
	}

	return base
}
