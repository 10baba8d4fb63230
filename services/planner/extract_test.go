package planner

import (
	"testing"

	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBlockExtractor_WellFormedBlock(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}
	reply := `Great, Lisbon it is! What kind of climate do you prefer?
[TRIP_DATA]{"destination":"Lisbon","budgetTotal":2500}[/TRIP_DATA]`

	visible, update := e.Extract(Turn{ModelReply: reply})

	assert.Equal(t, "Great, Lisbon it is! What kind of climate do you prefer?", visible)
	assert.Equal(t, "Lisbon", update.Destination)
	require.NotNil(t, update.BudgetTotal)
	assert.Equal(t, 2500.0, *update.BudgetTotal)
}

func TestBlockExtractor_NoBlockLeavesTextUntouched(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}
	reply := "Where would you like to go?"

	visible, update := e.Extract(Turn{ModelReply: reply})

	assert.Equal(t, reply, visible)
	assert.True(t, update.Empty())
}

func TestBlockExtractor_MalformedBlockStrippedEmptyUpdate(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}

	tests := []struct {
		name    string
		reply   string
		visible string
	}{
		{
			"broken json",
			"Sounds good! [TRIP_DATA]{not json}[/TRIP_DATA]",
			"Sounds good!",
		},
		{
			"unterminated block",
			"Sounds good! [TRIP_DATA]{\"destination\":\"Lis",
			"Sounds good!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, update := e.Extract(Turn{ModelReply: tt.reply})
			assert.Equal(t, tt.visible, visible)
			assert.True(t, update.Empty())
		})
	}
}

func TestBlockExtractor_IdempotentOnStrippedText(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}
	replies := []string{
		"Plain reply with no block.",
		"Reply. [TRIP_DATA]{\"origin\":\"London\"}[/TRIP_DATA]",
		"Reply. [TRIP_DATA]{bad}[/TRIP_DATA] tail [TRIP_DATA]{\"origin\":\"Oslo\"}[/TRIP_DATA]",
		"Reply. [TRIP_DATA]{\"origin\":\"Lim",
	}
	for _, reply := range replies {
		once, _ := e.Extract(Turn{ModelReply: reply})
		twice, update := e.Extract(Turn{ModelReply: once})
		assert.Equal(t, once, twice)
		assert.True(t, update.Empty())
	}
}

func TestBlockExtractor_FirstWellFormedBlockWins(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}
	reply := `Done. [TRIP_DATA]{"destination":"Lisbon"}[/TRIP_DATA] and [TRIP_DATA]{"destination":"Porto"}[/TRIP_DATA]`

	visible, update := e.Extract(Turn{ModelReply: reply})

	assert.Equal(t, "Lisbon", update.Destination)
	assert.NotContains(t, visible, "[TRIP_DATA]")
}

func TestBlockExtractor_NumericCoercion(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}
	tests := []struct {
		name   string
		json   string
		budget float64
	}{
		{"number", `{"budgetTotal":3000}`, 3000},
		{"string number", `{"budgetTotal":"3000"}`, 3000},
		{"string with symbols", `{"budgetTotal":"$3,000"}`, 3000},
		{"fractional", `{"budgetTotal":"1500.50"}`, 1500.50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, update := e.Extract(Turn{ModelReply: "ok [TRIP_DATA]" + tt.json + "[/TRIP_DATA]"})
			require.NotNil(t, update.BudgetTotal)
			assert.Equal(t, tt.budget, *update.BudgetTotal)
		})
	}
}

func TestBlockExtractor_DateRangeForms(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}

	_, update := e.Extract(Turn{ModelReply: `x [TRIP_DATA]{"dateRange":{"start":"2026-09-10","end":"2026-09-17"}}[/TRIP_DATA]`})
	require.NotNil(t, update.Dates)
	assert.Equal(t, "2026-09-10", update.Dates.Start)
	assert.Equal(t, "2026-09-17", update.Dates.End)

	// A bare string stays raw, pending normalization.
	_, update = e.Extract(Turn{ModelReply: `x [TRIP_DATA]{"dateRange":"early March for a week"}[/TRIP_DATA]`})
	require.NotNil(t, update.Dates)
	assert.Equal(t, "early March for a week", update.Dates.Raw)
}

func TestBlockExtractor_ConfirmedAndCategories(t *testing.T) {
	e := BlockExtractor{Logger: zap.NewNop()}
	_, update := e.Extract(Turn{ModelReply: `x [TRIP_DATA]{"weatherPreference":"Tropical","activities":"PASSIVE","confirmed":true}[/TRIP_DATA]`})

	assert.Equal(t, models.WeatherTropical, update.WeatherPreference)
	assert.Equal(t, models.ActivitiesPassive, update.Activities)
	require.NotNil(t, update.Confirmed)
	assert.True(t, *update.Confirmed)
}

func TestPreferenceRecord_ApplyNeverUnsets(t *testing.T) {
	rec := models.PreferenceRecord{Destination: "Lisbon", BudgetTotal: 2500}

	rec.Apply(models.PreferenceUpdate{Origin: "London"})
	assert.Equal(t, "Lisbon", rec.Destination)
	assert.Equal(t, 2500.0, rec.BudgetTotal)
	assert.Equal(t, "London", rec.Origin)

	// A fresh extraction for the same key overwrites.
	rec.Apply(models.PreferenceUpdate{Destination: "Porto"})
	assert.Equal(t, "Porto", rec.Destination)
}

func TestNewExtractor_SelectsStrategy(t *testing.T) {
	assert.IsType(t, BlockExtractor{}, NewExtractor("block", zap.NewNop()))
	assert.IsType(t, HeuristicExtractor{}, NewExtractor("heuristic", zap.NewNop()))
	assert.IsType(t, BlockExtractor{}, NewExtractor("", zap.NewNop()))
}
