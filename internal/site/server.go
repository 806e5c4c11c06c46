package site

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/gitfolio/gitfolio/internal/domain"
)

// Handler builds the serve-mode handler. The page is rendered once up front;
// the server never refetches.
func Handler(logger *log.Logger, renderer *Renderer, p *domain.Portfolio) (http.Handler, error) {
	buf := new(bytes.Buffer)
	if err := renderer.Render(buf, p); err != nil {
		return nil, err
	}
	page := buf.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		logger.Printf("Serving page to %s\n", r.RemoteAddr)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
	return mux, nil
}
