package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/interpose/middleware"
	"github.com/justinas/alice"
)

func router(config *Global) http.Handler {
	router := mux.NewRouter()
	POST := router.Methods("POST").Subrouter()
	GET := router.Methods("GET", "HEAD").Subrouter()

	h := handler{Global: config}

	GET.HandleFunc("/", h.Index).Name("index")
	GET.HandleFunc("/runs", h.Runs).Name("runs")
	GET.HandleFunc("/runs/{run_id:[0-9]+}", h.Run).Name("run")

	//
	// POST
	//
	POST.Handle("/", http.NotFoundHandler())
	POST.HandleFunc("/validate", h.Validate)
	POST.HandleFunc("/runs", h.RegisterRun)

	standard := alice.New(
		// Log all requests to STDOUT
		middleware.GorillaLog(),
	)

	return standard.Then(router)
}
