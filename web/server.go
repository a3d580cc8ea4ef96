// Package web serves the upload tool: an upload form and a results page
// showing every game state of the uploaded replay.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"pirots2ascii/render"
	"pirots2ascii/replay"
)

const (
	uploadField     = "xmlfile"
	shutdownTimeout = 5 * time.Second
)

// Config holds the server settings.
type Config struct {
	HTTPAddr    string
	MaxUploadMB int64
	Theme       render.Theme
	Walker      *replay.Walker
}

// Server is the upload tool's HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	maxUpload  int64
	theme      render.Theme
	walker     *replay.Walker
}

// NewServer builds a server from cfg.
func NewServer(cfg Config) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, errors.New("max upload size must be positive")
	}
	walker := cfg.Walker
	if walker == nil {
		walker = replay.NewWalker(nil, render.DefaultGrid, render.DefaultGrid)
	}
	s := &Server{
		httpAddr:  cfg.HTTPAddr,
		maxUpload: cfg.MaxUploadMB << 20,
		theme:     cfg.Theme,
		walker:    walker,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /upload", s.handleUpload)
	return mux
}

// ListenAndServe serves until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("upload tool listening on http://%s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := writeUploadForm(w); err != nil {
		log.Printf("write upload form: %v", err)
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Uploaded file is too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Please select a file", http.StatusBadRequest)
		return
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	states, err := s.walker.Load(file)
	if err != nil {
		log.Printf("parse %s: %v", header.Filename, err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if err := errorTemplate.Execute(w, err.Error()); err != nil {
			log.Printf("write error page: %v", err)
		}
		return
	}
	log.Printf("parsed %s: %d game states", header.Filename, len(states))

	var buf bytes.Buffer
	if err := WriteResults(&buf, s.theme, header.Filename, states); err != nil {
		log.Printf("render results: %v", err)
		http.Error(w, "Unable to render results", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
