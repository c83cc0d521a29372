package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `upload:
  dir: ../final
details:
  - analysis: RNA-seq
    algorithm:
      aligner: star
    metadata:
      batch: TestBatch1
    description: Test1
    files:
      - ../data/test_fusion/1_1.fq.gz
      - ../data/test_fusion/1_2.fq.gz
    genome_build: hg19
`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := openRegistry(filepath.Join(t.TempDir(), "runs.sqlite3"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	g := &Global{
		log:  log.New(io.Discard, "", 0),
		db:   db,
		Site: "bcbioconf-test",
	}

	srv := httptest.NewServer(router(g))
	t.Cleanup(srv.Close)

	return srv
}

func TestValidateEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/validate", "application/yaml", strings.NewReader(validConfig))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatal("Expected 200, got", resp.StatusCode)
	}

	verdict := Verdict{}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		t.Fatal(err)
	}

	if !verdict.Valid || verdict.Samples != 1 || verdict.GenomeBuilds != "hg19" {
		t.Errorf("Unexpected verdict: %+v", verdict)
	}
}

func TestValidateEndpointRejectsBadConfig(t *testing.T) {
	srv := testServer(t)

	missingBuild := `details:
  - analysis: RNA-seq
    files:
      - a_1.fq.gz
`

	resp, err := http.Post(srv.URL+"/validate", "application/yaml", strings.NewReader(missingBuild))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatal("Expected 422, got", resp.StatusCode)
	}

	verdict := Verdict{}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		t.Fatal(err)
	}

	if verdict.Valid || verdict.Field != "details[0].genome_build" {
		t.Errorf("Unexpected verdict: %+v", verdict)
	}
}

func TestRegisterAndListRuns(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/runs?name=fusion-batch", "application/yaml", strings.NewReader(validConfig))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatal("Expected 200, got", resp.StatusCode)
	}

	listResp, err := http.Get(srv.URL + "/runs")
	if err != nil {
		t.Fatal(err)
	}
	defer listResp.Body.Close()

	runs := []Run{}
	if err := json.NewDecoder(listResp.Body).Decode(&runs); err != nil {
		t.Fatal(err)
	}

	if len(runs) != 1 || runs[0].Name != "fusion-batch" || runs[0].Samples != 1 {
		t.Errorf("Unexpected runs listing: %+v", runs)
	}
}

func TestRegisterRequiresName(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/runs", "application/yaml", strings.NewReader(validConfig))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Error("Expected 400, got", resp.StatusCode)
	}
}
