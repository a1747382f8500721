package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	foodrun "github.com/morrisxelijah/food-run"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server exposes recipe parsing and storage over a JSON API.
//
// Routes:
//
//	GET    /healthz                health check
//	POST   /api/v1/parse           fetch and extract a recipe preview
//	POST   /api/v1/recipes         confirm a preview into storage
//	GET    /api/v1/recipes         list stored recipes
//	GET    /api/v1/recipes/{id}    retrieve one recipe
//	DELETE /api/v1/recipes/{id}    remove a recipe
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, e.g. ":8080".
	Addr string

	Fetcher       foodrun.Fetcher
	Extractor     foodrun.RecipeExtractor
	RecipeService foodrun.RecipeService

	// RenderFetcher, when set, serves parse requests with "render": true.
	// Left nil, such requests are rejected as unavailable.
	RenderFetcher foodrun.Fetcher

	Logger *slog.Logger
}

// NewServer creates a Server with its routes registered. The caller sets
// the exported fields before calling Open.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		server: &http.Server{},
		Logger: logger,
	}

	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Use(recoverPanics(logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", s.handleCreateRecipe)
			r.Get("/", s.handleListRecipes)
			r.Get("/{id}", s.handleGetRecipe)
			r.Delete("/{id}", s.handleDeleteRecipe)
		})
	})

	s.router = r
	s.server.Handler = r
	return s
}

// Handler returns the router for use with httptest or a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open begins listening on Addr. It returns once the listener is bound and
// serves in the background.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server", slog.Any("error", err))
		}
	}()

	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type parseRequest struct {
	URL    string `json:"url"`
	Render bool   `json:"render,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, foodrun.Errorf(foodrun.EINVALID, "invalid JSON body"))
		return
	}
	if req.URL == "" {
		s.writeError(w, foodrun.Errorf(foodrun.EINVALID, "url required"))
		return
	}

	fetcher := s.Fetcher
	if req.Render {
		if s.RenderFetcher == nil {
			s.writeError(w, foodrun.Errorf(foodrun.EUNAVAILABLE, "rendered fetching not enabled"))
			return
		}
		fetcher = s.RenderFetcher
	}

	markup, err := fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, err)
		return
	}

	preview, err := s.Extractor.Extract(markup, req.URL)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, preview)
}

type createRecipeRequest struct {
	Preview    *foodrun.RecipePreview `json:"preview"`
	Multiplier float64                `json:"multiplier"`
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, foodrun.Errorf(foodrun.EINVALID, "invalid JSON body"))
		return
	}
	if req.Preview == nil {
		s.writeError(w, foodrun.Errorf(foodrun.EINVALID, "preview required"))
		return
	}
	if req.Multiplier == 0 {
		req.Multiplier = 1
	}

	recipe, err := s.RecipeService.CreateRecipe(r.Context(), req.Preview, req.Multiplier)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, recipe)
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	filter := foodrun.RecipeFilter{SortBy: foodrun.SortByCreatedAt}
	if host := r.URL.Query().Get("host"); host != "" {
		filter.Host = &host
	}
	if sortBy := r.URL.Query().Get("sort"); sortBy == string(foodrun.SortByTitle) {
		filter.SortBy = foodrun.SortByTitle
	}

	recipes, err := s.RecipeService.FindRecipes(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if recipes == nil {
		recipes = []*foodrun.Recipe{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes, "count": len(recipes)})
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.RecipeService.FindRecipeByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, recipe)
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := s.RecipeService.DeleteRecipe(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.Logger.Error("write JSON response", slog.Any("error", err))
	}
}

// writeError maps application error codes onto HTTP statuses and renders
// the safe message. Internal errors are logged and masked.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := foodrun.ErrorCode(err)
	status := errorStatus(code)
	if status == http.StatusInternalServerError {
		s.Logger.Error("http handler", slog.Any("error", err))
	}
	s.writeJSON(w, status, map[string]string{
		"code":  code,
		"error": foodrun.ErrorMessage(err),
	})
}

func errorStatus(code string) int {
	switch code {
	case foodrun.EINVALID:
		return http.StatusBadRequest
	case foodrun.ENOTFOUND:
		return http.StatusNotFound
	case foodrun.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		s.Logger.Info("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func recoverPanics(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", slog.Any("error", rec))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"code":"internal","error":"internal error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
