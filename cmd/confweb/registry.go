package main

import (
	"sort"
	"strings"
	"time"

	"github.com/carbocation/bcbioconf"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

// Run is one registered, already-validated configuration.
type Run struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Samples      int       `db:"samples" json:"samples"`
	GenomeBuilds string    `db:"genome_builds" json:"genome_builds"`
	Config       string    `db:"config" json:"config,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

const registrySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	samples INTEGER NOT NULL,
	genome_builds TEXT NOT NULL,
	config TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func openRegistry(path string) (*sqlx.DB, error) {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(registrySchema); err != nil {
		return nil, err
	}

	return db, nil
}

func (g *Global) InsertRun(name string, cfg *bcbioconf.Config, rawConfig string) (int64, error) {
	res, err := g.db.Exec(
		`INSERT INTO runs (name, samples, genome_builds, config) VALUES (?, ?, ?, ?)`,
		name, len(cfg.Details), genomeBuilds(cfg), rawConfig)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (g *Global) ListRuns() ([]Run, error) {
	runs := []Run{}
	err := g.db.Select(&runs, `SELECT id, name, samples, genome_builds, created_at FROM runs ORDER BY id DESC`)

	return runs, err
}

func (g *Global) GetRun(id int64) (Run, error) {
	run := Run{}
	err := g.db.Get(&run, `SELECT id, name, samples, genome_builds, config, created_at FROM runs WHERE id = ?`, id)

	return run, err
}

// genomeBuilds flattens the distinct builds in a config into a stable,
// comma-delimited label.
func genomeBuilds(cfg *bcbioconf.Config) string {
	seen := map[string]struct{}{}
	for _, entry := range cfg.Details {
		seen[entry.GenomeBuild] = struct{}{}
	}

	builds := make([]string, 0, len(seen))
	for b := range seen {
		builds = append(builds, b)
	}
	sort.Strings(builds)

	return strings.Join(builds, ",")
}
