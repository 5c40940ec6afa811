package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/config"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// served config, swapped whole on reload
var current atomic.Pointer[config.Config]

func init() {
	current.Store(config.Default())
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long:  `Serves the JSON API a fretboard UI calls. The config file is reloaded when it changes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	current.Store(cfg)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		err := config.Watch(ctx, configPath, logger, func(c *config.Config) {
			current.Store(c)
		})
		if err != nil {
			logger.Warn("Config watch stopped", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter wires every API route behind request logging and CORS. The
// logger sits outside CORS so preflights and unmatched routes get an id too.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Errorf("no route for %v", r.URL.Path))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %v not allowed on %v", r.Method, r.URL.Path))
	})
	router.HandleFunc("/notes", handleNotes).Methods("GET")
	router.HandleFunc("/scales", handleScales).Methods("GET")
	router.HandleFunc("/chords", handleChordTypes).Methods("GET")
	router.HandleFunc("/tunings", handleTunings).Methods("GET")
	router.HandleFunc("/fret", handleFret).Methods("GET")
	router.HandleFunc("/scale", handleScale).Methods("GET")
	router.HandleFunc("/degree", handleDegree).Methods("GET")
	router.HandleFunc("/positions", handlePositions).Methods("GET")
	router.HandleFunc("/chords/search", HandleChordSearch).Methods("POST")
	router.HandleFunc("/fretboard", HandleFretboard).Methods("POST")

	c := cors.New(cors.Options{
		AllowOriginFunc: allowOrigin,
		AllowedMethods:  []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:  []string{"Content-Type"},
		ExposedHeaders:  []string{"X-Request-Id"},
	})
	return requestLogger(c.Handler(router))
}

func allowOrigin(origin string) bool {
	for _, allowed := range current.Load().AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		logger.Debug("Handled request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// requestTuning falls back to the configured tuning when none is given.
func requestTuning(names []string) (tuning.Tuning, error) {
	if len(names) == 0 {
		return current.Load().Tuning(), nil
	}
	notes := make([]note.PitchClass, 0, len(names))
	for _, name := range names {
		n, err := note.Parse(name)
		if err != nil {
			return tuning.Tuning{}, fmt.Errorf("tuning: %w", err)
		}
		notes = append(notes, n)
	}
	return tuning.FromNotes(notes)
}

func handleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.NotesResponse{Notes: note.All()})
}

func handleScales(w http.ResponseWriter, r *http.Request) {
	res := model.ScalesResponse{}
	for _, t := range scale.Types() {
		res.Scales = append(res.Scales, model.ScaleInfo{Name: t, Intervals: scale.Intervals(t)})
	}
	writeJSON(w, res)
}

func handleChordTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.ChordTypesResponse{Types: chord.Types()})
}

func handleTunings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.TuningsResponse{Tunings: tuning.Presets()})
}

func handleFret(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	open, err := note.Parse(q.Get("open"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("open: %w", err))
		return
	}
	fret, err := parseFret(q.Get("fret"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, model.FretResponse{Note: note.AtFret(open, fret)})
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	root, err := note.Parse(q.Get("root"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("root: %w", err))
		return
	}
	typ, err := scale.ParseType(q.Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	notes := scale.Notes(root, typ)
	writeJSON(w, model.ScaleResponse{Root: root, Type: typ, Notes: notes, Degrees: scale.Degrees(notes)})
}

func handleDegree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	root, err := note.Parse(q.Get("root"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("root: %w", err))
		return
	}
	n, err := note.Parse(q.Get("note"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("note: %w", err))
		return
	}
	writeJSON(w, model.DegreeResponse{Degree: scale.Degree(root, n)})
}

func handlePositions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, err := note.Parse(q.Get("note"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("note: %w", err))
		return
	}
	tun := current.Load().Tuning()
	if s := q.Get("tuning"); s != "" {
		tun, err = tuning.Parse(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	frets := current.Load().FretCount
	if s := q.Get("frets"); s != "" {
		frets, err = parseFret(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if frets < 1 || frets > fretboard.MaxFrets {
		writeError(w, http.StatusBadRequest, fmt.Errorf("frets must be between 1 and %d", fretboard.MaxFrets))
		return
	}
	writeJSON(w, model.PositionsResponse{Note: n, Tuning: tun, Positions: fretboard.Positions(tun, n, frets)})
}

func HandleChordSearch(w http.ResponseWriter, r *http.Request) {
	var input model.ChordSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	root, err := note.Parse(input.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("root: %w", err))
		return
	}
	typ, err := chord.ParseType(input.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tun, err := requestTuning(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	chart := chord.Lookup(root, typ, tun)
	res := model.ChordSearchResponse{
		Root:           chart.Root,
		Type:           chart.Type,
		Tuning:         chart.Tuning,
		StandardTuning: chart.StandardTuning,
		Fingerings:     make([]model.FingeringResult, 0, len(chart.Fingerings)),
	}
	if !chart.StandardTuning {
		res.Warning = StandardTuningWarning
	}
	for _, f := range chart.Fingerings {
		res.Fingerings = append(res.Fingerings, model.FingeringResult{
			Name:     f.Name,
			Frets:    f.Frets,
			BaseFret: f.BaseFret(),
			Notes:    f.Sounding(chart.Tuning),
		})
	}
	writeJSON(w, res)
}

func HandleFretboard(w http.ResponseWriter, r *http.Request) {
	var input model.FretboardRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	root, err := note.Parse(input.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("root: %w", err))
		return
	}
	typ, err := scale.ParseType(input.Scale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tun, err := requestTuning(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mode, err := fretboard.ParseMode(input.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	frets := input.Frets
	if frets == 0 {
		frets = current.Load().FretCount
	}
	if frets < 1 || frets > fretboard.MaxFrets {
		writeError(w, http.StatusBadRequest, fmt.Errorf("frets must be between 1 and %d", fretboard.MaxFrets))
		return
	}

	writeJSON(w, model.FretboardResponse{
		Scale:  typ,
		Tuning: tun,
		Board:  fretboard.Scale(tun, root, typ, frets, mode),
	})
}
