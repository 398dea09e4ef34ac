package main

import (
	"fmt"
	"net/http"
)

func renderHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprint(w, `{"status":"ok"}`)
}
