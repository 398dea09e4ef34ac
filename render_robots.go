package main

import (
	"fmt"
	"net/http"
)

func renderRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "max-age=3600")
	fmt.Fprint(w, `User-agent: *
Disallow: /admin/
Allow: /
`)
}
