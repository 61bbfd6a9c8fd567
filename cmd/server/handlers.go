package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/morphkit"
	"github.com/cours-de-latin/morphkit/internal/config"
)

const maxBodyBytes = 4 << 20

// ---- JSON request and response types ------------------------------------

type decodeResponse struct {
	Tag      string                `json:"tag"`
	POS      morphkit.POS          `json:"pos"`
	Features map[string]string     `json:"features"`
	Slots    []morphkit.SlotReport `json:"slots"`
}

type parseRequest struct {
	Transcript string             `json:"transcript"`
	Lang       string             `json:"lang"`
	Reference  morphkit.Reference `json:"reference"`
}

type analysisResponse struct {
	*morphkit.Analysis
	Errors []string              `json:"errors,omitempty"`
	Groups []morphkit.LemmaGroup `json:"groups,omitempty"`
}

type batchRequest struct {
	Words     []string           `json:"words"`
	Lang      string             `json:"lang"`
	Reference morphkit.Reference `json:"reference"`
}

type batchItem struct {
	Word     string            `json:"word"`
	Analysis *analysisResponse `json:"analysis,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("body must be JSON: %w", err)
	}
	return nil
}

// language parses a request language, Greek when empty.
func language(s string) (morphkit.Language, error) {
	if strings.TrimSpace(s) == "" {
		return morphkit.Greek, nil
	}
	return morphkit.ParseLanguage(s)
}

func hasReference(ref morphkit.Reference) bool {
	return ref.Tag != "" || ref.Lemma != ""
}

// ---- handlers -----------------------------------------------------------

// server holds what the handlers share.
type server struct {
	analyzer *morphkit.Analyzer
	fetcher  morphkit.Fetcher
	batch    config.BatchConfig
	log      *slog.Logger
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/decode", s.handleDecode)
	mux.HandleFunc("/api/compare", s.handleCompare)
	mux.HandleFunc("/api/parse", s.handleParse)
	mux.HandleFunc("/api/analyse/batch", s.handleAnalyseBatch)
	mux.HandleFunc("/api/analyse", s.handleAnalyse)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

func (s *server) respond(a *morphkit.Analysis, ref morphkit.Reference) *analysisResponse {
	out := &analysisResponse{Analysis: a, Errors: a.ErrorMessages()}
	if hasReference(ref) {
		out.Groups = s.analyzer.Comparator().Rank(a.Records, ref)
	}
	return out
}

func (s *server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	raw := r.URL.Query().Get("tag")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
		return
	}
	tag, slots, err := morphkit.DecodeVerbose(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, decodeResponse{
		Tag:      tag.String(),
		POS:      tag.POS,
		Features: tag.FeatureMap(),
		Slots:    slots,
	})
}

func (s *server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	tag1, tag2 := q.Get("tag1"), q.Get("tag2")
	if tag1 == "" || tag2 == "" {
		writeError(w, http.StatusBadRequest, "missing 'tag1' or 'tag2' query parameter")
		return
	}
	res, err := s.analyzer.Comparator().Compare(tag1, tag2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body parseRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lang, err := language(body.Lang)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a := s.analyzer.Analyze(body.Transcript, lang)
	writeJSON(w, http.StatusOK, s.respond(a, body.Reference))
}

func (s *server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	word := strings.TrimSpace(q.Get("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	lang, err := language(q.Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := s.analyzer.AnalyzeWord(r.Context(), s.fetcher, word, lang)
	if err != nil {
		s.log.WarnContext(r.Context(), "analyse failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	ref := morphkit.Reference{Tag: q.Get("ref_tag"), Lemma: q.Get("ref_lemma")}
	writeJSON(w, http.StatusOK, s.respond(a, ref))
}

func (s *server) handleAnalyseBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body batchRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(body.Words) == 0 {
		writeError(w, http.StatusBadRequest, "'words' must not be empty")
		return
	}
	if len(body.Words) > s.batch.MaxWords {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d words per batch (got %d)", s.batch.MaxWords, len(body.Words)))
		return
	}
	lang, err := language(body.Lang)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]batchItem, len(body.Words))
	var g errgroup.Group
	g.SetLimit(s.batch.Concurrency)
	for i, word := range body.Words {
		g.Go(func() error {
			results[i].Word = word
			a, err := s.analyzer.AnalyzeWord(r.Context(), s.fetcher, word, lang)
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Analysis = s.respond(a, body.Reference)
			return nil
		})
	}
	_ = g.Wait()

	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
