// Command server exposes the morphological analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/tag?token=<word>[&next=<token>]
//	GET  /api/tag-or-x?token=<word>[&next=<token>]
//	GET  /api/can-be-token?token=<word>
//	POST /api/tag/text   body: {"tokens":["...", ...]}
//	GET  /api/forms?lemma=<lemma>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/mova-institute/morpho"
)

// ---- JSON response types ------------------------------------------------

type tagJSON struct {
	Lemma string `json:"lemma"`
	Tag   string `json:"tag"`
	Auto  bool   `json:"auto,omitempty"`
}

type tagResponse struct {
	Token string    `json:"token"`
	Tags  []tagJSON `json:"tags"`
}

type tagTextResponse struct {
	Results []tagResponse `json:"results"`
}

type canBeTokenResponse struct {
	Token      string `json:"token"`
	CanBeToken bool   `json:"can_be_token"`
}

type formJSON struct {
	Form string `json:"form"`
	Tag  string `json:"tag"`
}

type formsResponse struct {
	Lemma     string       `json:"lemma"`
	Paradigms [][]formJSON `json:"paradigms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toTagsJSON(tags []morpho.Tag) []tagJSON {
	out := make([]tagJSON, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagJSON{Lemma: t.Lemma(), Tag: t.String(), Auto: t.IsAuto()})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleTag(an *morpho.Analyzer, orX bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			writeError(w, http.StatusBadRequest, "missing 'token' query parameter")
			return
		}
		next := r.URL.Query().Get("next")

		var tags []morpho.Tag
		if orX {
			tags = an.TagOrX(token, next)
		} else {
			tags = an.Tag(token, next)
		}
		status := http.StatusOK
		if len(tags) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, tagResponse{Token: token, Tags: toTagsJSON(tags)})
	}
}

func handleTagText(an *morpho.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Tokens []string `json:"tokens"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Tokens) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'tokens' array")
			return
		}

		results := an.TagTokens(body.Tokens)
		out := make([]tagResponse, 0, len(results))
		for _, res := range results {
			out = append(out, tagResponse{Token: res.Token, Tags: toTagsJSON(res.Tags)})
		}
		writeJSON(w, http.StatusOK, tagTextResponse{Results: out})
	}
}

func handleCanBeToken(an *morpho.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			writeError(w, http.StatusBadRequest, "missing 'token' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, canBeTokenResponse{Token: token, CanBeToken: an.CanBeToken(token)})
	}
}

func handleForms(an *morpho.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		paradigms := an.Forms(lemma)
		if len(paradigms) == 0 {
			writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", lemma))
			return
		}
		out := make([][]formJSON, 0, len(paradigms))
		for _, p := range paradigms {
			forms := make([]formJSON, 0, len(p))
			for _, f := range p {
				forms = append(forms, formJSON{Form: f.Form, Tag: f.Tag.String()})
			}
			out = append(out, forms)
		}
		writeJSON(w, http.StatusOK, formsResponse{Lemma: lemma, Paradigms: out})
	}
}

func newRouter(an *morpho.Analyzer) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tag/text", handleTagText(an)).Methods(http.MethodPost)
	api.HandleFunc("/tag", handleTag(an, false)).Methods(http.MethodGet)
	api.HandleFunc("/tag-or-x", handleTag(an, true)).Methods(http.MethodGet)
	api.HandleFunc("/can-be-token", handleCanBeToken(an)).Methods(http.MethodGet)
	api.HandleFunc("/forms", handleForms(an)).Methods(http.MethodGet)
	return cors.Default().Handler(r)
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	lexiconPath := flag.String("lexicon", "", "path to the lexicon (.db, .yaml or .txt); overrides the config")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	cfg := morpho.Config{CacheSize: morpho.DefaultCacheSize}
	if *configPath != "" {
		var err error
		if cfg, err = morpho.LoadConfig(*configPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	if *lexiconPath != "" {
		cfg.Lexicon = *lexiconPath
	}

	log.Printf("loading lexicon from %s …", cfg.Lexicon)
	an, err := morpho.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Println("lexicon loaded")

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, newRouter(an)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
