package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

var dashSpacing = regexp.MustCompile(`\s*-\s*`)

// PartyExtractor matches party names from a closed vocabulary in free
// text. The vocabulary is injected so the extractor stays pure and
// testable in isolation.
type PartyExtractor struct {
	vocab map[string]bool

	// prefixes holds every proper token-prefix of a multi-word
	// vocabulary name, so a dead-end run can be detected as soon as it
	// stops leading anywhere.
	prefixes map[string]bool
}

// NewPartyExtractor creates an extractor over the given vocabulary.
func NewPartyExtractor(recognized []string) *PartyExtractor {
	vocab := make(map[string]bool, len(recognized))
	prefixes := make(map[string]bool)
	for _, name := range recognized {
		vocab[name] = true
		toks := strings.Fields(name)
		for k := 1; k < len(toks); k++ {
			prefixes[strings.Join(toks[:k], " ")] = true
		}
	}
	return &PartyExtractor{vocab: vocab, prefixes: prefixes}
}

// Extract returns the recognized parties found in the cell, in order.
//
// The text is normalized first (hyphen spacing removed, whitespace
// collapsed, title case), then a greedy tokenizer runs left to right:
// tokens accumulate while the run is still a prefix of some vocabulary
// name, the first full match wins and restarts the run, and a dead-end
// run sheds leading tokens until the remainder leads somewhere again.
// Tokens that never complete a recognized name are dropped. A missing
// cell yields nil.
func (e *PartyExtractor) Extract(c model.Cell) []string {
	if c.Missing {
		return nil
	}

	// cases.Caser carries state, so build one per call to keep the
	// extractor safe for concurrent use.
	text := dashSpacing.ReplaceAllString(c.Value, "-")
	text = cases.Title(language.English).String(collapseSpace(text))

	var found []string
	var run []string
	for _, tok := range strings.Fields(text) {
		run = append(run, tok)
		for len(run) > 0 {
			candidate := strings.Join(run, " ")
			if e.vocab[candidate] {
				found = append(found, candidate)
				run = run[:0]
				break
			}
			if e.prefixes[candidate] {
				break
			}
			// Dead end: drop the leading token and retry what is left.
			run = run[1:]
		}
	}
	return found
}
