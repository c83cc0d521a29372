package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/carbocation/bcbioconf"
	"github.com/carbocation/bcbioconf/compileinfo"
)

func renderJSON(h *handler, w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Println(r.Host, r.URL.Path, ":", err)
	}
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	renderJSON(h, w, r, struct {
		Site    string `json:"site"`
		Version string `json:"version"`
	}{
		h.Site,
		compileinfo.Get().Short(),
	})
}

// Verdict is the response to a validation request.
type Verdict struct {
	Valid        bool   `json:"valid"`
	Samples      int    `json:"samples,omitempty"`
	GenomeBuilds string `json:"genome_builds,omitempty"`
	Field        string `json:"field,omitempty"`
	Message      string `json:"message,omitempty"`
}

// Validate accepts a run configuration as the request body and reports
// whether it conforms, including the offending field path when it does not.
func (h *handler) Validate(w http.ResponseWriter, r *http.Request) {
	cfg, _, err := loadBody(r)
	if err != nil {
		schemaErr := &bcbioconf.SchemaError{}
		if errors.As(err, &schemaErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(Verdict{Valid: false, Field: schemaErr.Field, Message: schemaErr.Msg})
			return
		}

		JSONError(h, w, r, err, http.StatusBadRequest)
		return
	}

	renderJSON(h, w, r, Verdict{Valid: true, Samples: len(cfg.Details), GenomeBuilds: genomeBuilds(cfg)})
}

// RegisterRun validates the posted configuration and records it in the run
// registry under the name given by the ?name= parameter.
func (h *handler) RegisterRun(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		JSONError(h, w, r, errors.New("a ?name= parameter is required"), http.StatusBadRequest)
		return
	}

	cfg, raw, err := loadBody(r)
	if err != nil {
		JSONError(h, w, r, err, http.StatusUnprocessableEntity)
		return
	}

	id, err := h.InsertRun(name, cfg, raw)
	if err != nil {
		JSONError(h, w, r, err)
		return
	}

	h.log.Println("Registered run", id, name, "with", len(cfg.Details), "sample(s)")

	renderJSON(h, w, r, struct {
		ID      int64 `json:"id"`
		Samples int   `json:"samples"`
	}{id, len(cfg.Details)})
}

func (h *handler) Runs(w http.ResponseWriter, r *http.Request) {
	runs, err := h.ListRuns()
	if err != nil {
		JSONError(h, w, r, err)
		return
	}

	renderJSON(h, w, r, runs)
}

// Run returns a single registered run, including its stored configuration.
func (h *handler) Run(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["run_id"], 10, 64)
	if err != nil {
		JSONError(h, w, r, err, http.StatusBadRequest)
		return
	}

	run, err := h.GetRun(id)
	if err != nil {
		JSONError(h, w, r, err, http.StatusNotFound)
		return
	}

	renderJSON(h, w, r, run)
}

// loadBody parses the request body as a run configuration and also returns
// the raw text, so that registration can store the document verbatim.
func loadBody(r *http.Request) (*bcbioconf.Config, string, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", err
	}

	cfg, err := bcbioconf.Load(strings.NewReader(string(raw)))
	if err != nil {
		return nil, "", err
	}

	return cfg, string(raw), nil
}
