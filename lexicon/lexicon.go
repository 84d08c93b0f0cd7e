// Package lexicon stores the surface-form dictionary the analyzer consults:
// forms mapped to tag strings and lemmas, grouped into lexemes.
//
// A Lexicon is populated once (from a text file, a YAML document or a
// compiled SQLite store) and is read-only afterwards, so it may be shared by
// any number of analyzers and goroutines.
package lexicon

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrMalformedLine is returned by text loaders for an unparsable line.
	ErrMalformedLine = errors.New("lexicon: malformed line")
	// ErrUnknownFormat is returned by Open for an unrecognised file extension.
	ErrUnknownFormat = errors.New("lexicon: unknown format")
)

// Entry is one raw dictionary reading of a form.
type Entry struct {
	// Flags is the colon-separated tag path, e.g. "noun:inanim:m:v_naz".
	Flags string
	// Lemma is the dictionary headword.
	Lemma string
	// LemmaFlags is the tag path of the lemma form itself.
	LemmaFlags string
}

// Form is one member of a paradigm.
type Form struct {
	Form  string `yaml:"form"`
	Flags string `yaml:"flags"`
}

// Lexeme is a paradigm; its first form is the lemma.
type Lexeme []Form

// Lemma returns the headword of the lexeme.
func (x Lexeme) Lemma() Form {
	if len(x) == 0 {
		return Form{}
	}
	return x[0]
}

// Lexicon is an in-memory dictionary.
type Lexicon struct {
	lexemes []Lexeme
	// forms maps a case-sensitive form to its readings.
	forms map[string][]Entry
	// byLemma maps a lemma to indexes into lexemes.
	byLemma map[string][]int
	// folded holds the lowercase of every stored form.
	folded map[string]struct{}
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{
		forms:   make(map[string][]Entry),
		byLemma: make(map[string][]int),
		folded:  make(map[string]struct{}),
	}
}

// Add registers a lexeme. Empty lexemes are ignored.
func (l *Lexicon) Add(x Lexeme) {
	if len(x) == 0 {
		return
	}
	lemma := x.Lemma()
	l.byLemma[lemma.Form] = append(l.byLemma[lemma.Form], len(l.lexemes))
	l.lexemes = append(l.lexemes, x)
	for _, f := range x {
		e := Entry{Flags: f.Flags, Lemma: lemma.Form, LemmaFlags: lemma.Flags}
		if containsEntry(l.forms[f.Form], e) {
			continue
		}
		l.forms[f.Form] = append(l.forms[f.Form], e)
		l.folded[strings.ToLower(f.Form)] = struct{}{}
	}
}

func containsEntry(es []Entry, e Entry) bool {
	for _, x := range es {
		if x == e {
			return true
		}
	}
	return false
}

// Lookup returns the readings of token. The match is case-sensitive.
// The returned slice must not be modified.
func (l *Lexicon) Lookup(token string) []Entry {
	return l.forms[token]
}

// LookupLexemesByLemma returns every lexeme headed by lemma.
func (l *Lexicon) LookupLexemesByLemma(lemma string) []Lexeme {
	idx := l.byLemma[lemma]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Lexeme, 0, len(idx))
	for _, i := range idx {
		out = append(out, l.lexemes[i])
	}
	return out
}

// HasAnyCase reports whether token is stored in any letter case.
func (l *Lexicon) HasAnyCase(token string) bool {
	_, ok := l.folded[strings.ToLower(token)]
	return ok
}

// Lexemes returns the lexemes in insertion order.
func (l *Lexicon) Lexemes() []Lexeme {
	return l.lexemes
}

// Len returns the number of lexemes.
func (l *Lexicon) Len() int { return len(l.lexemes) }

// Open loads a lexicon choosing the reader by the file extension:
// .db and .sqlite are compiled stores, .yaml and .yml are YAML documents,
// .txt and .tag are the plain text format.
func Open(ctx context.Context, path string) (*Lexicon, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(ctx, path)
	case ".yaml", ".yml":
		return LoadYAMLFile(path)
	case ".txt", ".tag", ".lst":
		return LoadFile(path)
	default:
		return nil, fmt.Errorf("open %s: %w", path, ErrUnknownFormat)
	}
}
