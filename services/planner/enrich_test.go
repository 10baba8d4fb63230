package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrich_AppendsMapLink(t *testing.T) {
	out := Enrich("Visit Louvre Museum - great art.", "Paris")

	assert.Contains(t, out, "https://www.google.com/maps/search/?api=1&query=Louvre+Museum+Paris")
	// The annotation after the dash is not part of the name.
	assert.NotContains(t, out, "great+art")
}

func TestEnrich_Idempotent(t *testing.T) {
	texts := []string{
		"Visit Louvre Museum - great art.",
		"Explore Alfama\nDine at Cervejaria Ramiro - seafood institution.",
		"No places mentioned here.",
	}
	for _, text := range texts {
		once := Enrich(text, "Lisbon")
		twice := Enrich(once, "Lisbon")
		assert.Equal(t, once, twice)
	}
}

func TestEnrich_DeduplicatesCaseInsensitively(t *testing.T) {
	text := "Visit Belem Tower. Later, explore BELEM TOWER!"
	out := Enrich(text, "Lisbon")

	link := "https://www.google.com/maps/search/?api=1&query=Belem+Tower+Lisbon"
	assert.Equal(t, 1, strings.Count(out, "query=Belem+Tower"), out)
	assert.Contains(t, out, link)
}

func TestEnrich_SkipsShortNames(t *testing.T) {
	out := Enrich("Visit it.", "Paris")
	assert.NotContains(t, out, "maps/search")
}

func TestEnrich_MultiplePlacesKeepTextOrder(t *testing.T) {
	text := "Explore Alfama! Dine at Time Out Market."
	out := Enrich(text, "Lisbon")

	alfama := strings.Index(out, "query=Alfama+Lisbon")
	market := strings.Index(out, "query=Time+Out+Market+Lisbon")
	require.Greater(t, alfama, 0)
	require.Greater(t, market, 0)
	assert.Less(t, alfama, market)
}

func TestEnrich_ParenthesesTruncateName(t *testing.T) {
	out := Enrich("Visit Oceanario (entry ~25 EUR).", "Lisbon")
	assert.Contains(t, out, "query=Oceanario+Lisbon")
	assert.NotContains(t, out, "query=Oceanario+%28")
}

func TestNormalizePlaceName(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"Louvre Museum - great art", "Louvre Museum"},
		{"Oceanario (entry fee)", "Oceanario"},
		{"  Time   Out  Market ", "Time Out Market"},
		{"it", "it"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, normalizePlaceName(tt.in))
	}
}
