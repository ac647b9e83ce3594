package moderation

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon is the replaceable word-list asset the engine is built from.
type Lexicon struct {
	RejectionReason string              `yaml:"rejection_reason"`
	Profanity       map[string][]string `yaml:"profanity"` // keyed by language
	Crisis          []string            `yaml:"crisis"`
	Categories      struct {
		Allowed []string `yaml:"allowed"`
		Denied  []string `yaml:"denied"`
	} `yaml:"categories"`
}

func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(lex.Profanity) == 0 {
		return nil, fmt.Errorf("lexicon has no profanity terms")
	}
	if lex.RejectionReason == "" {
		lex.RejectionReason = "The text contains inappropriate or offensive language"
	}
	return &lex, nil
}

// LoadLexicon reads a YAML lexicon from path, or the embedded default when path is empty.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return ParseLexicon(defaultLexicon)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}
	return ParseLexicon(data)
}

// DefaultLexicon panics if the embedded asset is broken.
func DefaultLexicon() *Lexicon {
	lex, err := ParseLexicon(defaultLexicon)
	if err != nil {
		panic(err)
	}
	return lex
}

// profanityTerms flattens all languages in a stable order.
func (l *Lexicon) profanityTerms() []string {
	langs := make([]string, 0, len(l.Profanity))
	for lang := range l.Profanity {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	var terms []string
	for _, lang := range langs {
		terms = append(terms, l.Profanity[lang]...)
	}
	return normalizeTerms(terms)
}

func normalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
