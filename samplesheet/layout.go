// Package samplesheet turns a CSV sample description into a run
// configuration, mirroring bcbio's template workflow: one row per FASTQ (or
// per sample), grouped and paired into configuration entries.
package samplesheet

import "strings"

type Layout struct {
	Delimiter rune
	Comment   rune
}

var Layouts = map[string]Layout{
	"bcbio": {
		Delimiter: ',',
		Comment:   '#',
	},
	"bcbio-tab": {
		Delimiter: '\t',
		Comment:   '#',
	},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}
