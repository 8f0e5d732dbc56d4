// Package httpapi exposes analysis over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/WojciechSzmit/wcag/internal/application"
	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

// DefaultMaxUpload caps request bodies.
const DefaultMaxUpload int64 = 50 << 20

// Handler serves the analysis API.
type Handler struct {
	svc       *application.AnalyzeService
	detect    domain.TypeDetector
	log       domain.Logger
	maxUpload int64
}

func NewHandler(svc *application.AnalyzeService, detect domain.TypeDetector, log domain.Logger, maxUpload int64) *Handler {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	return &Handler{svc: svc, detect: detect, log: log, maxUpload: maxUpload}
}

// Router mounts the API routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/checks", h.handleChecks)
		r.Get("/checks/{fileType}", h.handleChecks)
		r.Post("/reports", h.handleCreateReport)
	})
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleChecks lists the check catalog, optionally for one file type.
// GET /v1/checks, GET /v1/checks/{fileType}
func (h *Handler) handleChecks(w http.ResponseWriter, r *http.Request) {
	ft := chi.URLParam(r, "fileType")
	switch domain.FileType(strings.ToLower(ft)) {
	case "":
		writeJSON(w, http.StatusOK, rules.All())
	case domain.FileTypePDF, domain.FileTypeDOCX:
		writeJSON(w, http.StatusOK, rules.ForType(domain.FileType(strings.ToLower(ft))))
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown file type %q", ft))
	}
}

// handleCreateReport analyzes an uploaded document. It accepts a multipart
// form with a "file" field, or the raw document as the body with its MIME
// type in Content-Type and an optional ?name= query parameter.
// POST /v1/reports
func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	name, declared, data, err := h.readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mimeType := h.detect.Resolve(declared, name, data)
	report, err := h.svc.Analyze(r.Context(), name, mimeType, data)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.log.Error("analysis failed", "request_id", middleware.GetReqID(r.Context()), "file", name, "error", err)
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) readUpload(r *http.Request) (name, declared string, data []byte, err error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		file, header, err := r.FormFile("file")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return "", "", nil, errors.New(`multipart field "file" is required`)
			}
			return "", "", nil, err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", nil, err
		}
		return header.Filename, header.Header.Get("Content-Type"), data, nil
	}

	data, err = io.ReadAll(r.Body)
	if err != nil {
		return "", "", nil, err
	}
	if len(data) == 0 {
		return "", "", nil, errors.New("request body is empty")
	}
	name = r.URL.Query().Get("name")
	if name == "" {
		name = "upload"
	}
	return name, r.Header.Get("Content-Type"), data, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrCorruptContainer):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Serve runs the API on addr until ctx is canceled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, log domain.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("http server stopping")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
