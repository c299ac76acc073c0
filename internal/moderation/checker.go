// Package moderation implements the keyword-based safety checker.
//
// Matching is deliberately simple: input text is trimmed and lowercased, then
// tested against every category of the taxonomy using literal substring
// containment. There is no tokenization or word-boundary logic, so embedded
// matches count ("assholeness" matches "asshole"). The checker is stateless
// and side-effect free; recording outcomes is the caller's job.
package moderation

import (
	"errors"
	"strings"

	"github.com/safespace-labs/SafeSpace_Backend/internal/taxonomy"
)

// ErrUnavailable is returned when the checker cannot evaluate text because
// the taxonomy is missing or corrupted. With the embedded keyword table this
// is caught at startup, but call sites still handle it: the HTTP layer maps
// it to 503 and the realtime layer to a private error reply.
var ErrUnavailable = errors.New("moderation service unavailable")

// Result is the outcome of checking a single message.
type Result struct {
	// Flagged is true iff at least one category matched.
	Flagged bool `json:"flagged"`

	// Categories holds an entry for every known category, true where the
	// text contained one of its trigger phrases. The full key set is always
	// present, even for empty input.
	Categories map[string]bool `json:"categories"`
}

// Checker evaluates message text against a loaded taxonomy.
type Checker struct {
	tax *taxonomy.Taxonomy
}

// NewChecker creates a Checker over the given taxonomy.
func NewChecker(tax *taxonomy.Taxonomy) *Checker {
	return &Checker{tax: tax}
}

// Check evaluates the given text.
//
// Parameters:
//   - text: the raw message text; empty or whitespace-only text is never
//     flagged
//
// Returns:
//   - A Result with Flagged set iff any category matched, and a boolean per
//     category
//   - ErrUnavailable if the taxonomy is absent or empty
//
// Check is deterministic and safe for concurrent use.
func (c *Checker) Check(text string) (Result, error) {
	if c == nil || c.tax == nil || c.tax.Len() == 0 {
		return Result{}, ErrUnavailable
	}

	categories := make(map[string]bool, c.tax.Len())
	for _, name := range c.tax.CategoryNames() {
		categories[name] = false
	}

	normalized := normalize(text)
	if normalized == "" {
		return Result{Flagged: false, Categories: categories}, nil
	}

	flagged := false
	for name, phrases := range c.tax.Categories() {
		for _, phrase := range phrases {
			if strings.Contains(normalized, phrase) {
				categories[name] = true
				flagged = true
				break
			}
		}
	}

	return Result{Flagged: flagged, Categories: categories}, nil
}

// normalize prepares text for matching: trim surrounding whitespace and
// lowercase.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
