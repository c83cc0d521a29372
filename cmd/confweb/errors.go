package main

import (
	"encoding/json"
	"net/http"
)

func JSONError(h *handler, w http.ResponseWriter, r *http.Request, err error, code ...int) {
	unifiedError(h, w, r, err, code...)

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{
		false,
		err.Error(),
	})
}

func unifiedError(h *handler, w http.ResponseWriter, r *http.Request, err error, code ...int) {
	usedCode := http.StatusInternalServerError
	if len(code) > 0 {
		usedCode = code[0]
	}
	w.WriteHeader(usedCode)
	h.log.Println(r.Host, r.URL.Path, ":", usedCode, err)
}
