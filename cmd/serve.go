package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jsphweid/ragakey/chart"
	"github.com/jsphweid/ragakey/config"
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/mask"
	"github.com/jsphweid/ragakey/model"
	"github.com/jsphweid/ragakey/pitch"
	"github.com/jsphweid/ragakey/report"
	"github.com/jsphweid/ragakey/scale"
)

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (default from config, 8080)")
	serveCmd.Flags().Bool("watch", false, "reload the mask and server settings other than the port when the config file changes")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the evaluator over HTTP",
	Long: `Serves the evaluator over HTTP.

  POST /evaluate   {"scale": ["S","R","G","P"], "base": "C"}
  GET  /chart.png  ?scale=S+R+G+P&base=C
  GET  /catalog
  GET  /healthz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		s := NewServer(cfg)

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			if viper.ConfigFileUsed() == "" {
				return errors.New("--watch needs a config file")
			}
			config.Watch(viper.GetViper(), s.SetConfig)
		}

		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Printf("listening on %s (mask %s)", addr, cfg.Mask)
		return http.ListenAndServe(addr, s.Handler())
	},
}

// Server answers evaluation requests. Its configuration, including the CORS
// policy, can be swapped while requests are in flight.
type Server struct {
	mu   sync.RWMutex
	cfg  config.Config
	cors *cors.Cors
}

func NewServer(cfg config.Config) *Server {
	return &Server{cfg: cfg, cors: newCors(cfg.Server)}
}

func newCors(sc config.ServerConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: sc.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
}

func (s *Server) SetConfig(cfg config.Config) {
	c := newCors(cfg.Server)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.cors = c
}

func (s *Server) config() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Server) corsPolicy() *cors.Cors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cors
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/evaluate", s.HandleEvaluate).Methods(http.MethodPost)
	router.HandleFunc("/chart.png", s.HandleChart).Methods(http.MethodGet)
	router.HandleFunc("/catalog", s.HandleCatalog).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	router.Use(s.logRequests)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.corsPolicy().Handler(router).ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config().Verbose {
			log.Printf("%s %s", r.Method, r.URL.String())
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, interval.ErrUnknownIntervalSymbol),
		errors.Is(err, pitch.ErrUnknownPitchName),
		errors.Is(err, mask.ErrInvalidMask):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var input model.EvaluateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}

	res, err := evaluateInput(s.config(), input.Scale, input.Base)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report.Build(res.Scale, res.Mask, res.Results))
}

func (s *Server) HandleChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cfg := s.config()
	res, err := evaluateInput(cfg, scale.Parse(q.Get("scale")), q.Get("base"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	err = chart.Render(w, chart.Request{
		Scale:    res.Scale,
		Results:  res.Results,
		Catalog:  interval.Default(),
		CellSize: cfg.Chart.CellSize,
	})
	if err != nil {
		log.Printf("rendering chart: %v", err)
	}
}

func (s *Server) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.CatalogResponse{
		Symbols:    interval.Default().Symbols(),
		PitchNames: pitch.Names(),
	})
}
