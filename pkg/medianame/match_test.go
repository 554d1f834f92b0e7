package medianame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchTitle_Exact(t *testing.T) {
	got := MatchTitle("The Matrix", []string{"Inception", "The Matrix", "Heat"})
	require.Equal(t, "The Matrix", got.Title)
	require.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestMatchTitle_NormalizedEquivalence(t *testing.T) {
	// Accents, articles and numeral style are ignored when comparing.
	got := MatchTitle("Amelie", []string{"Amélie"})
	require.Equal(t, ConfidenceHigh, got.Confidence)

	got = MatchTitle("Rocky 2", []string{"Rocky II"})
	require.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestMatchTitle_NoMatch(t *testing.T) {
	got := MatchTitle("Completely Unrelated Documentary", []string{"zx9"})
	require.Equal(t, ConfidenceNone, got.Confidence)
	require.Empty(t, got.Title)
}

func TestMatchTitle_EmptyCandidates(t *testing.T) {
	got := MatchTitle("Anything", nil)
	require.Equal(t, ConfidenceNone, got.Confidence)
	require.Zero(t, got.Score)
}

func TestMatchConfidence_String(t *testing.T) {
	require.Equal(t, "high", ConfidenceHigh.String())
	require.Equal(t, "none", ConfidenceNone.String())
}
