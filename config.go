// Package bcbioconf models the bcbio-nextgen run configuration document: an
// `upload` block naming the output directory, plus an ordered `details` list
// with one entry per sequencing sample.
package bcbioconf

// Config is the full run configuration document.
type Config struct {
	Upload  UploadSpec    `yaml:"upload,omitempty"`
	Details []SampleEntry `yaml:"details"`
}

// UploadSpec names the destination directory for the whole run's outputs.
type UploadSpec struct {
	Dir string `yaml:"dir,omitempty"`
}

// SampleEntry describes one sequencing sample submitted for analysis.
type SampleEntry struct {
	Analysis    string            `yaml:"analysis"`
	Algorithm   Algorithm         `yaml:"algorithm,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
	Description string            `yaml:"description,omitempty"`

	// Files lists the sequencing input paths. For paired-end data the order
	// is significant: read 1 first, then read 2.
	Files []string `yaml:"files"`

	GenomeBuild string `yaml:"genome_build"`
}

// Algorithm holds the per-sample tool selections. bcbio accepts a large and
// evolving key set here, so the fields this toolkit understands are typed and
// everything else is carried through in Extra so that a loaded config can be
// written back without loss.
type Algorithm struct {
	Aligner            string       `yaml:"aligner,omitempty"`
	FusionCaller       StringOrList `yaml:"fusion_caller,omitempty"`
	VariantCaller      StringOrList `yaml:"variantcaller,omitempty"`
	TranscriptomeAlign bool         `yaml:"transcriptome_align,omitempty"`
	BcbioRNASeq        *BcbioRNASeq `yaml:"bcbiornaseq,omitempty"`

	Extra map[string]interface{} `yaml:",inline"`
}

// BcbioRNASeq configures the bcbioRNASeq reporting package.
type BcbioRNASeq struct {
	Organism          string       `yaml:"organism,omitempty"`
	InterestingGroups StringOrList `yaml:"interesting_groups,omitempty"`
}

// IsZero reports whether no algorithm key was set. Used so that an empty
// algorithm block is omitted when a config is written back out.
func (a Algorithm) IsZero() bool {
	return a.Aligner == "" &&
		len(a.FusionCaller) == 0 &&
		len(a.VariantCaller) == 0 &&
		!a.TranscriptomeAlign &&
		a.BcbioRNASeq == nil &&
		len(a.Extra) == 0
}
