package ingredients

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry holds the health-risk labels associated with one canonical ingredient.
type Entry struct {
	Diseases []string `json:"diseases"`
}

// Dictionary maps a canonical, lowercased ingredient name to its risks.
type Dictionary map[string]Entry

// Synonyms maps an alternate surface form (unigram or bigram, lowercased)
// to a canonical dictionary key.
type Synonyms map[string]string

type dictionaryFile struct {
	HarmfulIngredients map[string]Entry  `json:"harmfulIngredients"`
	Synonyms           map[string]string `json:"synonyms"`
}

// DefaultSynonyms returns the built-in synonym table. Entries from the
// dictionary file extend or override these.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		"e300":      "ascorbic acid",
		"vitamin c": "ascorbic acid",
		"e330":      "citric acid",
	}
}

// Load reads the harmful-ingredients dictionary from a JSON file shaped
//
//	{"harmfulIngredients": {"<name>": {"diseases": [...]}}, "synonyms": {...}}
//
// Keys are lowercased so lookups after text normalization always hit.
// The synonyms block is optional; built-in defaults are always present.
func Load(path string) (Dictionary, Synonyms, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read ingredients file: %w", err)
	}

	var f dictionaryFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("parse ingredients file: %w", err)
	}

	dict := make(Dictionary, len(f.HarmfulIngredients))
	for name, entry := range f.HarmfulIngredients {
		dict[strings.ToLower(strings.TrimSpace(name))] = entry
	}

	syn := DefaultSynonyms()
	for from, to := range f.Synonyms {
		syn[strings.ToLower(strings.TrimSpace(from))] = strings.ToLower(strings.TrimSpace(to))
	}

	return dict, syn, nil
}
