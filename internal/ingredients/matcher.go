package ingredients

import (
	"regexp"
	"sort"
	"strings"
)

// Result of matching one label text against a user's allergies and the
// harmful-ingredient dictionary.
type Result struct {
	// AllergyHits follows the order of the allergy list, not the order of
	// appearance in the text.
	AllergyHits []string
	// HarmfulDiseases is deduplicated and sorted.
	HarmfulDiseases []string
}

var (
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// stopWords are dropped before unigram/bigram formation. Because removal
// happens first, a bigram never spans a stop word that sat between two tokens.
var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "with": {}, "the": {}, "a": {}, "to": {}, "of": {},
}

// Tokenize lowercases the text, turns every non-word character into a space,
// collapses whitespace runs and splits. Stop words are kept; filtering is the
// matcher's job. Running Tokenize on its own joined output is a no-op.
func Tokenize(text string) []string {
	cleaned := strings.ToLower(text)
	cleaned = nonWord.ReplaceAllString(cleaned, " ")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}

// Match runs both detection passes over one extracted label text.
//
// The allergy pass is a plain substring scan of the raw lowercased text.
// The harmful pass tokenizes, drops stop words, then looks up every unigram
// and adjacent-pair bigram of the filtered sequence through the synonym table
// and the dictionary, unioning all disease labels found.
//
// Nil dictionary or synonym tables mean no matches, never an error.
func Match(text string, allergies []string, dict Dictionary, syn Synonyms) Result {
	res := Result{AllergyHits: []string{}, HarmfulDiseases: []string{}}
	if text == "" {
		return res
	}

	textLower := strings.ToLower(text)
	for _, allergy := range allergies {
		if allergy == "" {
			continue
		}
		// The term is matched as stored, surrounding whitespace included.
		if strings.Contains(textLower, strings.ToLower(allergy)) {
			res.AllergyHits = append(res.AllergyHits, allergy)
		}
	}

	tokens := Tokenize(text)
	filtered := tokens[:0]
	for _, tok := range tokens {
		if _, skip := stopWords[tok]; !skip {
			filtered = append(filtered, tok)
		}
	}

	found := map[string]struct{}{}
	for i, tok := range filtered {
		collectDiseases(tok, dict, syn, found)
		if i < len(filtered)-1 {
			collectDiseases(tok+" "+filtered[i+1], dict, syn, found)
		}
	}

	for disease := range found {
		res.HarmfulDiseases = append(res.HarmfulDiseases, disease)
	}
	sort.Strings(res.HarmfulDiseases)
	return res
}

func collectDiseases(form string, dict Dictionary, syn Synonyms, into map[string]struct{}) {
	canonical := form
	if mapped, ok := syn[form]; ok {
		canonical = mapped
	}
	entry, ok := dict[canonical]
	if !ok {
		return
	}
	for _, d := range entry.Diseases {
		into[d] = struct{}{}
	}
}
