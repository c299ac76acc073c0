// Package taxonomy provides the static keyword table used for content
// moderation.
//
// The table maps category names to lists of literal lowercase trigger
// phrases. It is embedded in the binary as a YAML resource, decoded and
// validated once at startup, and immutable afterwards. That makes the
// taxonomy trivially safe for concurrent use and keeps the safety checker
// free of synchronization.
package taxonomy

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordData []byte

// Taxonomy is the immutable category-to-phrases mapping.
type Taxonomy struct {
	categories map[string][]string
	names      []string
	keywords   []string
}

// Load decodes and validates the embedded keyword table.
//
// Returns:
//   - The loaded taxonomy
//   - An error if the embedded resource is malformed, contains an empty
//     category, or contains a phrase that is empty after normalization
//
// Phrases are normalized (trimmed, lowercased) during load so the checker
// can rely on the table being in canonical form.
func Load() (*Taxonomy, error) {
	return parse(keywordData)
}

// parse builds a Taxonomy from raw YAML. Split from Load so tests can feed
// malformed input.
func parse(data []byte) (*Taxonomy, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode keyword table: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("keyword table is empty")
	}

	categories := make(map[string][]string, len(raw))
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{})

	for name, phrases := range raw {
		if len(phrases) == 0 {
			return nil, fmt.Errorf("category %q has no phrases", name)
		}

		normalized := make([]string, 0, len(phrases))
		for _, phrase := range phrases {
			p := strings.ToLower(strings.TrimSpace(phrase))
			if p == "" {
				return nil, fmt.Errorf("category %q contains an empty phrase", name)
			}
			normalized = append(normalized, p)
			seen[p] = struct{}{}
		}

		categories[name] = normalized
		names = append(names, name)
	}
	sort.Strings(names)

	keywords := make([]string, 0, len(seen))
	for phrase := range seen {
		keywords = append(keywords, phrase)
	}
	sort.Strings(keywords)

	return &Taxonomy{
		categories: categories,
		names:      names,
		keywords:   keywords,
	}, nil
}

// Categories returns a copy of the category-to-phrases mapping.
func (t *Taxonomy) Categories() map[string][]string {
	out := make(map[string][]string, len(t.categories))
	for name, phrases := range t.categories {
		out[name] = append([]string(nil), phrases...)
	}
	return out
}

// CategoryNames returns the sorted category names.
func (t *Taxonomy) CategoryNames() []string {
	return append([]string(nil), t.names...)
}

// Phrases returns the trigger phrases for a single category. The second
// return value reports whether the category exists.
func (t *Taxonomy) Phrases(category string) ([]string, bool) {
	phrases, ok := t.categories[category]
	if !ok {
		return nil, false
	}
	return append([]string(nil), phrases...), true
}

// AllKeywords returns the sorted, deduplicated union of every trigger phrase
// across all categories. The extension fetches this list to keep client-side
// blurring in sync with the backend.
func (t *Taxonomy) AllKeywords() []string {
	return append([]string(nil), t.keywords...)
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}
