package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/report"
	"github.com/dmitrymomot/formkit/pkg/validity"
)

// validityHandler serves POST /v1/validity.
type validityHandler struct {
	ev      *validity.Evaluator
	log     *slog.Logger
	metrics *Metrics
	maxBody int64
}

func (h *validityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.serve(w, r)
	h.metrics.ObserveRequest(status)
}

func (h *validityHandler) serve(w http.ResponseWriter, r *http.Request) int {
	doc, err := h.decode(w, r)
	if err != nil {
		h.log.DebugContext(r.Context(), "rejected validity request", logger.Error(err))
		return writeError(w, r, err)
	}

	rep := report.Build(doc, h.ev)
	rep.Source = r.URL.Query().Get("source")
	h.metrics.ObserveReport(rep)

	switch {
	case isDataStar(r):
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchElementTempl(report.Component(rep), datastar.WithSelector("#"+report.ElementID)); err != nil {
			h.log.ErrorContext(r.Context(), "failed to patch report", logger.Error(err))
		}
	case acceptsHTML(r):
		templ.Handler(report.Page(rep)).ServeHTTP(w, r)
	default:
		meta := map[string]any{
			"valid":   rep.Valid,
			"total":   rep.Total,
			"invalid": rep.Invalid,
		}
		if id := RequestIDFromContext(r.Context()); id != "" {
			meta["request_id"] = id
		}
		if err := writeJSON(w, http.StatusOK, Envelope{Data: rep, Meta: meta}); err != nil {
			h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
		}
	}
	return http.StatusOK
}

// decode reads the size-limited body and builds a document from it,
// mapping every failure to an HTTPError.
func (h *validityHandler) decode(w http.ResponseWriter, r *http.Request) (*dom.Document, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, ErrUnsupportedMediaType.Wrap(errors.New("missing or malformed Content-Type"))
	}

	var format dom.SnapshotFormat
	if mediaType != "text/html" {
		if format, err = dom.SnapshotFormatFromMediaType(mediaType); err != nil {
			return nil, ErrUnsupportedMediaType.Wrap(err)
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrRequestEntityTooLarge
		}
		return nil, ErrBadRequest.Wrap(err)
	}

	var doc *dom.Document
	if format == "" {
		doc, err = dom.Parse(bytes.NewReader(body))
	} else {
		doc, err = dom.LoadSnapshot(bytes.NewReader(body), format)
	}
	if err != nil {
		return nil, ErrBadRequest.Wrap(err)
	}
	return doc, nil
}

// isDataStar reports whether the request comes from a DataStar page that
// expects its report element patched over server-sent events.
func isDataStar(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream") ||
		r.URL.Query().Has("datastar")
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}
