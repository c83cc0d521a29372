// bcbvalidate checks a bcbio run configuration: schema first, and optionally
// whether every referenced input file actually exists. Exits nonzero on the
// first schema violation so it can gate pipeline submission.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/bcbioconf"
	_ "github.com/carbocation/bcbioconf/compileinfoprint"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var configPath string
	var checkFiles bool
	var baseDir string

	flag.StringVar(&configPath, "config", "", "Path to the bcbio run configuration (YAML). May be a Google Storage URL (gs://).")
	flag.BoolVar(&checkFiles, "check-files", false, "(Optional) If true, verify that every file referenced by the configuration exists.")
	flag.StringVar(&baseDir, "base", "", "(Optional) Directory against which relative file paths are resolved. Defaults to the folder where the configuration resides.")
	flag.Parse()

	if configPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if baseDir == "" {
		baseDir = filepath.Dir(configPath)
	}

	cfg, client, err := loadConfig(configPath)
	if err != nil {
		log.Fatalln(err)
	}

	if checkFiles {
		if client == nil && configNamesGoogleStorage(cfg) {
			client, err = storage.NewClient(context.Background())
			if err != nil {
				log.Fatalln(err)
			}
		}

		if err := cfg.CheckReferences(context.Background(), baseDir, client); err != nil {
			log.Fatalln(err)
		}
	}

	printSummary(cfg)
}

// loadConfig reads the configuration from disk or, for gs:// paths, from
// Google Storage with default credentials. The storage client is returned so
// that a later file check can reuse it.
func loadConfig(path string) (*bcbioconf.Config, *storage.Client, error) {
	var client *storage.Client

	if strings.HasPrefix(path, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			return nil, nil, err
		}
	}

	if client != nil {
		rdr, err := bcbioconf.MaybeOpenFromGoogleStorage(path, client)
		if err != nil {
			return nil, nil, err
		}
		defer rdr.Close()

		cfg, err := bcbioconf.Load(rdr)
		return cfg, client, err
	}

	cfg, err := bcbioconf.LoadFile(path)
	return cfg, client, err
}

func configNamesGoogleStorage(cfg *bcbioconf.Config) bool {
	for _, entry := range cfg.Details {
		for _, f := range entry.Files {
			if strings.HasPrefix(f, "gs://") {
				return true
			}
		}
	}

	return false
}

func printSummary(cfg *bcbioconf.Config) {
	fmt.Fprintf(STDOUT, "Valid configuration with %d sample(s)\n", len(cfg.Details))
	if cfg.Upload.Dir != "" {
		fmt.Fprintf(STDOUT, "Upload dir: %s\n", cfg.Upload.Dir)
	}

	for i, entry := range cfg.Details {
		description := entry.Description
		if description == "" {
			description = fmt.Sprintf("(entry %d)", i)
		}

		fmt.Fprintf(STDOUT, "%s\tanalysis=%s\tgenome_build=%s\tfiles=%d", description, entry.Analysis, entry.GenomeBuild, len(entry.Files))
		if entry.Algorithm.Aligner != "" {
			fmt.Fprintf(STDOUT, "\taligner=%s", entry.Algorithm.Aligner)
		}
		if batch, exists := entry.Metadata["batch"]; exists {
			fmt.Fprintf(STDOUT, "\tbatch=%s", batch)
		}
		fmt.Fprintln(STDOUT)
	}
}
