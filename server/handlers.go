package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/yokitheyo/vowelswap/game"
	"github.com/yokitheyo/vowelswap/wordlist"
)

var (
	ErrNoWords = errors.New("no words given")
	ErrNoWord  = errors.New("query parameter 'word' is required")
)

// maxBodySize bounds POST /solutions bodies.
const maxBodySize = 8 << 20

type Handler struct {
	preloaded []game.Solution
}

// NewHandler serves solutions computed from preloaded words on GET /solutions.
func NewHandler(preloaded []string) *Handler {
	return &Handler{preloaded: game.FindSolutions(preloaded)}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/solutions", h.listSolutions).Methods("GET")
	r.HandleFunc("/solutions", h.findSolutions).Methods("POST")
	r.HandleFunc("/skeletons", h.skeletons).Methods("GET")
}

type wordsRequest struct {
	Words []string `json:"words"`
}

type response struct {
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func (h *Handler) listSolutions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, response{Result: h.preloaded}, http.StatusOK)
}

func (h *Handler) findSolutions(w http.ResponseWriter, r *http.Request) {
	words, err := parseWords(w, r)
	if err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(words) == 0 {
		writeError(w, ErrNoWords.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, response{Result: game.FindSolutions(words)}, http.StatusOK)
}

func (h *Handler) skeletons(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, ErrNoWord.Error(), http.StatusBadRequest)
		return
	}

	skeletons := slices.Collect(game.Skeletons(word))
	if skeletons == nil {
		skeletons = []string{}
	}
	writeJSON(w, response{Result: skeletons}, http.StatusOK)
}

// parseWords accepts a JSON body or a newline separated word list.
func parseWords(w http.ResponseWriter, r *http.Request) ([]string, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req wordsRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return nil, err
		}
		return req.Words, nil
	}

	return wordlist.Read(body, wordlist.Options{})
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, errorMsg string, statusCode int) {
	writeJSON(w, response{Error: errorMsg}, statusCode)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}
