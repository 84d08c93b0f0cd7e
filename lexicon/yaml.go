package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlLexeme is one paradigm in a YAML lexicon:
//
//	lexemes:
//	  - lemma: робити
//	    flags: "verb:imperf:inf"
//	    forms:
//	      - {form: роблю, flags: "verb:imperf:pres:s:1"}
type yamlLexeme struct {
	Lemma string `yaml:"lemma"`
	Flags string `yaml:"flags"`
	Forms []Form `yaml:"forms"`
}

type yamlDocument struct {
	Lexemes []yamlLexeme `yaml:"lexemes"`
}

// LoadYAML reads a YAML lexicon from r.
func LoadYAML(r io.Reader) (*Lexicon, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml lexicon: %w", err)
	}
	l := New()
	for i, y := range doc.Lexemes {
		if y.Lemma == "" || y.Flags == "" {
			return nil, fmt.Errorf("lexeme %d: %w: lemma and flags are required", i, ErrMalformedLine)
		}
		x := make(Lexeme, 0, len(y.Forms)+1)
		x = append(x, Form{Form: y.Lemma, Flags: y.Flags})
		x = append(x, y.Forms...)
		l.Add(x)
	}
	return l, nil
}

// LoadYAMLFile reads a YAML lexicon from path.
func LoadYAMLFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	l, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
