// Package server exposes the registered modules over HTTP for previews:
// descriptors, field schemas, transitions, attribute schemas and a render
// endpoint returning markup plus the generated stylesheet.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-dropcap/pkg/host"
	"github.com/goliatone/go-dropcap/pkg/module"
	"github.com/goliatone/go-dropcap/pkg/validation"
)

// HeaderRequestID carries the request id on responses.
const HeaderRequestID = "X-Request-Id"

// maxBodyBytes bounds render request payloads.
const maxBodyBytes = 1 << 20

// Deps contains dependencies for the server.
type Deps struct {
	Host   *host.Host
	Logger zerolog.Logger
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// Server serves the preview API.
type Server struct {
	host     *host.Host
	logger   zerolog.Logger
	gatherer prometheus.Gatherer
}

// New creates a server.
func New(deps Deps) *Server {
	return &Server{
		host:     deps.Host,
		logger:   deps.Logger,
		gatherer: deps.Gatherer,
	}
}

// Router returns the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/modules", s.ListModules)
	r.Route("/modules/{slug}", func(r chi.Router) {
		r.Get("/", s.GetModule)
		r.Get("/fields", s.GetFields)
		r.Post("/fields/visible", s.VisibleFields)
		r.Get("/transitions", s.GetTransitions)
		r.Get("/schema", s.GetSchema)
		r.Get("/icon", s.GetIcon)
		r.Post("/render", s.Render)
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)
		logger := s.logger.With().Str("request_id", id).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(started)).
			Msg("request")
	})
}

// ModuleSummary is one entry of the module listing.
type ModuleSummary struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	PluralName string `json:"pluralName"`
}

// ListModules returns the registered modules sorted by slug.
func (s *Server) ListModules(w http.ResponseWriter, r *http.Request) {
	slugs := s.host.Registry().List()
	out := make([]ModuleSummary, 0, len(slugs))
	for _, slug := range slugs {
		schema, err := s.host.Schema(slug)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out = append(out, ModuleSummary{
			Slug:       schema.Descriptor.Slug,
			Name:       schema.Descriptor.Name,
			PluralName: schema.Descriptor.PluralName,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetModule returns the localized descriptor.
func (s *Server) GetModule(w http.ResponseWriter, r *http.Request) {
	schema, err := s.host.Schema(chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.Descriptor)
}

// GetFields returns the ordered, localized field specs.
func (s *Server) GetFields(w http.ResponseWriter, r *http.Request) {
	schema, err := s.host.Schema(chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.Fields)
}

// VisibleFields returns the fields shown for the posted attributes.
func (s *Server) VisibleFields(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	fields, err := s.host.VisibleFields(chi.URLParam(r, "slug"), req.Attrs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

// GetTransitions returns the transition map.
func (s *Server) GetTransitions(w http.ResponseWriter, r *http.Request) {
	transitions, err := s.host.Transitions(chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transitions)
}

// GetSchema returns the attribute schema as an OpenAPI schema object.
func (s *Server) GetSchema(w http.ResponseWriter, r *http.Request) {
	handle, err := s.host.Registry().Get(chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, validation.Schema(handle.Fields()))
}

// GetIcon returns the sanitized SVG icon.
func (s *Server) GetIcon(w http.ResponseWriter, r *http.Request) {
	svg, err := s.host.Icon(chi.URLParam(r, "slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}

// RenderRequest is the body of a render call.
type RenderRequest struct {
	Attrs   map[string]string `json:"attrs"`
	Content string            `json:"content"`
}

// RenderResponse carries the fragment, its stylesheet and any attribute
// issues. Instances with issues are still rendered.
type RenderResponse struct {
	HTML       string             `json:"html"`
	CSS        string             `json:"css"`
	OrderClass string             `json:"orderClass"`
	Issues     []validation.Issue `json:"issues,omitempty"`
}

// Render renders one instance on a fresh page.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	handle, err := s.host.Registry().Get(slug)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req RenderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result := validation.ValidateAttributes(handle.Fields(), req.Attrs)

	page := s.host.NewPage()
	fragment, err := page.Render(r.Context(), slug, req.Attrs, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		HTML:       fragment.HTML,
		CSS:        page.Stylesheet(),
		OrderClass: fragment.OrderClass,
		Issues:     result.Issues,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, module.ErrUnknownModule):
		status = http.StatusNotFound
	case errors.Is(err, module.ErrInvalidDescriptor):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
