package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safespace-labs/SafeSpace_Backend/internal/taxonomy"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	tax, err := taxonomy.Load()
	require.NoError(t, err)
	return NewChecker(tax)
}

// TestCheckEmptyInput verifies empty and whitespace-only text is never
// flagged and still carries the full category key set.
func TestCheckEmptyInput(t *testing.T) {
	checker := newTestChecker(t)

	for _, text := range []string{"", "   ", "\n\t  "} {
		result, err := checker.Check(text)
		require.NoError(t, err)

		assert.False(t, result.Flagged)
		assert.Len(t, result.Categories, 10)
		for name, matched := range result.Categories {
			assert.False(t, matched, "category %q should not match empty input", name)
		}
	}
}

func TestCheckFlagsKnownPhrases(t *testing.T) {
	checker := newTestChecker(t)

	tests := []struct {
		name     string
		text     string
		category string
	}{
		{"Violence", "I want to kill you", "violence"},
		{"SelfHarm", "i want to die", "self-harm"},
		{"Bullying", "nobody likes you at all", "bullying"},
		{"Drugs", "he tried to sell drugs here", "drugs"},
		{"Terrorism", "planning a terror attack", "terrorism"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(tt.text)
			require.NoError(t, err)

			assert.True(t, result.Flagged)
			assert.True(t, result.Categories[tt.category])
		})
	}
}

// TestCheckCaseAndWhitespace verifies normalization: casing and surrounding
// whitespace never change the outcome.
func TestCheckCaseAndWhitespace(t *testing.T) {
	checker := newTestChecker(t)

	base, err := checker.Check("kill myself")
	require.NoError(t, err)
	require.True(t, base.Flagged)

	for _, variant := range []string{"KILL MYSELF", " kill myself ", "\tKill Myself\n"} {
		result, err := checker.Check(variant)
		require.NoError(t, err)
		assert.Equal(t, base, result, "variant %q should match base result", variant)
	}
}

// TestCheckSubstringContainment pins the literal substring semantics:
// matching is containment, not word-boundary, so embedded phrases count.
func TestCheckSubstringContainment(t *testing.T) {
	checker := newTestChecker(t)

	t.Run("EmbeddedPhrase", func(t *testing.T) {
		result, err := checker.Check("murderous plans")
		require.NoError(t, err)
		assert.True(t, result.Flagged)
		assert.True(t, result.Categories["violence"])
	})

	t.Run("EmbeddedProfanity", func(t *testing.T) {
		result, err := checker.Check("what assholeness")
		require.NoError(t, err)
		assert.True(t, result.Flagged)
		assert.True(t, result.Categories["profanity"])
	})
}

func TestCheckMultipleCategories(t *testing.T) {
	checker := newTestChecker(t)

	result, err := checker.Check("kill yourself and go buy a gun")
	require.NoError(t, err)

	assert.True(t, result.Flagged)
	assert.True(t, result.Categories["bullying"])
	assert.True(t, result.Categories["weapons"])
	assert.False(t, result.Categories["drugs"])
}

// TestCheckFlaggedMatchesCategories verifies the Flagged invariant: it is
// exactly the OR across category flags.
func TestCheckFlaggedMatchesCategories(t *testing.T) {
	checker := newTestChecker(t)

	for _, text := range []string{"hello there", "kill them all", "nice weather today", "cocaine"} {
		result, err := checker.Check(text)
		require.NoError(t, err)

		any := false
		for _, matched := range result.Categories {
			any = any || matched
		}
		assert.Equal(t, any, result.Flagged, "flagged mismatch for %q", text)
	}
}

func TestCheckUnavailable(t *testing.T) {
	var checker *Checker

	_, err := checker.Check("anything")
	assert.ErrorIs(t, err, ErrUnavailable)

	checker = NewChecker(nil)
	_, err = checker.Check("anything")
	assert.ErrorIs(t, err, ErrUnavailable)
}
