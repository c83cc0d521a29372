// sheet2config flattens a CSV samplesheet into a bcbio run configuration,
// emitted as YAML on stdout.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"io"
	"log"
	"os"

	"github.com/carbocation/bcbioconf"
	_ "github.com/carbocation/bcbioconf/compileinfoprint"
	"github.com/carbocation/bcbioconf/samplesheet"
)

var (
	STDOUT = bufio.NewWriterSize(os.Stdout, 4096)
)

func main() {
	defer STDOUT.Flush()

	var sheetPath, layout, analysis, genomeBuild, uploadDir, aligner string
	var sniffDelimiter bool

	flag.StringVar(&sheetPath, "sheet", "", "Path to the CSV samplesheet.")
	flag.StringVar(&layout, "layout", "bcbio", "Samplesheet layout. Options include: "+samplesheet.LayoutNames()+".")
	flag.BoolVar(&sniffDelimiter, "sniff", false, "(Optional) If true, detect the delimiter from the sheet itself instead of trusting the layout.")
	flag.StringVar(&analysis, "analysis", "", "Analysis workflow for every sample, e.g. RNA-seq.")
	flag.StringVar(&genomeBuild, "genome", "", "Default genome build; a genome_build column in the sheet overrides it per sample.")
	flag.StringVar(&uploadDir, "upload", "../final", "Destination directory for the run's outputs.")
	flag.StringVar(&aligner, "aligner", "", "(Optional) Aligner to set on every sample, e.g. star.")
	flag.Parse()

	if sheetPath == "" || analysis == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	rows, err := readSheet(sheetPath, layout, sniffDelimiter)
	if err != nil {
		log.Fatalln(err)
	}

	cfg, err := samplesheet.BuildConfig(rows, samplesheet.Defaults{
		Analysis:    analysis,
		GenomeBuild: genomeBuild,
		UploadDir:   uploadDir,
		Aligner:     aligner,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if err := cfg.Save(STDOUT); err != nil {
		log.Fatalln(err)
	}

	log.Println("Emitted configuration for", len(cfg.Details), "sample(s)")
}

func readSheet(path, layout string, sniff bool) ([]samplesheet.Row, error) {
	f, err := os.Open(bcbioconf.ExpandHome(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parser, err := samplesheet.New(layout)
	if err != nil {
		return nil, err
	}

	if !sniff {
		return parser.Read(f)
	}

	// Delimiter sniffing needs to read the sheet once, so buffer it and hand
	// the parser a fresh reader.
	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	parser.Layout.Delimiter = bcbioconf.DetermineDelimiter(bytes.NewReader(raw))

	return parser.Read(bytes.NewReader(raw))
}
