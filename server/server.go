// Package server exposes the catalog and the grab ledger over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/manager"
	"github.com/wversluys/fetcharr/pkg/pagination"
	"github.com/wversluys/fetcharr/pkg/storage"
	"github.com/wversluys/fetcharr/pkg/storage/sqlite/schema/gen/model"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies of the http server: the manager that runs
// synchronizations, the grab ledger, and the catalog file it edits.
type Server struct {
	baseLogger  *zap.SugaredLogger
	manager     manager.MediaManager
	storage     storage.GrabStorage
	catalogPath string

	// guards catalog file read-modify-write cycles
	catalogMu sync.Mutex
}

// New creates a new fetcharr server
func New(logger *zap.SugaredLogger, manager manager.MediaManager, storage storage.GrabStorage, catalogPath string) *Server {
	return &Server{
		baseLogger:  logger,
		manager:     manager,
		storage:     storage,
		catalogPath: catalogPath,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s *Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/catalog", s.GetCatalog()).Methods(http.MethodGet)
	v1.HandleFunc("/catalog/series", s.AddSeries()).Methods(http.MethodPost)
	v1.HandleFunc("/catalog/series/{title}", s.RemoveSeries()).Methods(http.MethodDelete)
	v1.HandleFunc("/catalog/films", s.AddFilm()).Methods(http.MethodPost)
	v1.HandleFunc("/catalog/films/{title}", s.RemoveFilm()).Methods(http.MethodDelete)

	v1.HandleFunc("/grabs", s.ListGrabs()).Methods(http.MethodGet)
	v1.HandleFunc("/run", s.RunSync()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)
}

// Healthz is an endpoint that can be used for probes
func (s *Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// GetCatalog returns the catalog of wanted media
func (s *Server) GetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := catalog.Load(r.Context(), s.catalogPath)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: cat})
	}
}

// AddSeries appends a series to the catalog
func (s *Server) AddSeries() http.HandlerFunc {
	return s.addItem(catalog.KindSeries)
}

// AddFilm appends a film to the catalog
func (s *Server) AddFilm() http.HandlerFunc {
	return s.addItem(catalog.KindFilm)
}

func (s *Server) addItem(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item catalog.MediaItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		item.Kind = kind

		if item.Title == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("title is required"))
			return
		}

		err := s.editCatalog(r.Context(), func(cat *catalog.Catalog) {
			if kind == catalog.KindFilm {
				cat.Films = append(cat.Films, item)
				return
			}
			cat.Series = append(cat.Series, item)
		})
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: item})
	}
}

// RemoveSeries drops a series from the catalog by title
func (s *Server) RemoveSeries() http.HandlerFunc {
	return s.removeItem(catalog.KindSeries)
}

// RemoveFilm drops a film from the catalog by title
func (s *Server) RemoveFilm() http.HandlerFunc {
	return s.removeItem(catalog.KindFilm)
}

func (s *Server) removeItem(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := mux.Vars(r)["title"]

		removed := false
		err := s.editCatalog(r.Context(), func(cat *catalog.Catalog) {
			items := cat.Series
			if kind == catalog.KindFilm {
				items = cat.Films
			}

			kept := make([]catalog.MediaItem, 0, len(items))
			for _, item := range items {
				if item.Title == title {
					removed = true
					continue
				}
				kept = append(kept, item)
			}

			if kind == catalog.KindFilm {
				cat.Films = kept
				return
			}
			cat.Series = kept
		})
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		if !removed {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("no %s named %q", kind, title))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: title})
	}
}

// GrabsResponse is a page of the grab ledger.
type GrabsResponse struct {
	Grabs []*model.Grab   `json:"grabs"`
	Meta  pagination.Meta `json:"meta"`
}

// ListGrabs returns the grab ledger, newest first
func (s *Server) ListGrabs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		offset, limit := params.CalculateOffsetLimit()
		grabs, err := s.storage.ListGrabs(r.Context(), offset, limit)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		count, err := s.storage.CountGrabs(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: GrabsResponse{
			Grabs: grabs,
			Meta:  params.BuildMeta(count),
		}})
	}
}

// RunSync runs one synchronization pass and returns its summary
func (s *Server) RunSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		cat, err := catalog.Load(r.Context(), s.catalogPath)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		summary := s.manager.Run(r.Context(), cat)
		log.Infow("triggered run finished", "run", summary.RunID, "grabbed", summary.Grabbed)

		writeResponse(w, http.StatusOK, GenericResponse{Response: summary})
	}
}

func (s *Server) editCatalog(ctx context.Context, edit func(*catalog.Catalog)) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	cat, err := catalog.Load(ctx, s.catalogPath)
	if err != nil {
		return err
	}

	edit(&cat)
	return catalog.Save(s.catalogPath, cat)
}
