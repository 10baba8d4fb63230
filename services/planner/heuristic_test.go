package planner

import (
	"testing"

	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHeuristicExtractor_VolunteeredFacts(t *testing.T) {
	e := HeuristicExtractor{Logger: zap.NewNop()}

	visible, update := e.Extract(Turn{
		UserMessage: "I'm from London and have $3000 and want to relax at beaches",
		ModelReply:  "Sounds lovely!",
	})

	// The model reply passes through untouched in heuristic mode.
	assert.Equal(t, "Sounds lovely!", visible)

	assert.Equal(t, "London", update.Origin)
	require.NotNil(t, update.BudgetTotal)
	assert.Equal(t, 3000.0, *update.BudgetTotal)
	assert.Equal(t, models.ActivitiesPassive, update.Activities)
	assert.Equal(t, models.WeatherTropical, update.WeatherPreference)
}

func TestHeuristicExtractor_NeverOverwritesFilledSlots(t *testing.T) {
	e := HeuristicExtractor{Logger: zap.NewNop()}

	_, update := e.Extract(Turn{
		UserMessage: "I'm from Oslo with $9000 to spend, thinking cold places",
		Record: models.PreferenceRecord{
			Origin:            "London",
			BudgetTotal:       3000,
			WeatherPreference: models.WeatherTropical,
		},
	})

	assert.Empty(t, update.Origin)
	assert.Nil(t, update.BudgetTotal)
	assert.Empty(t, update.WeatherPreference)
}

func TestHeuristicExtractor_ConfirmationAtSummaryStage(t *testing.T) {
	e := HeuristicExtractor{Logger: zap.NewNop()}
	rec := filledRecord()
	rec.Confirmed = false

	stage, _ := SelectStage(&rec, true)
	require.Equal(t, StageNeedConfirmation, stage)

	_, update := e.Extract(Turn{UserMessage: "yes, that's all correct", Record: rec})
	require.NotNil(t, update.Confirmed)
	assert.True(t, *update.Confirmed)

	// The affirmative carries the conversation into the final stage.
	rec.Apply(update)
	stage, _ = SelectStage(&rec, true)
	assert.Equal(t, StageReady, stage)
}

func TestHeuristicExtractor_NoConfirmationBeforeSummaryStage(t *testing.T) {
	e := HeuristicExtractor{Logger: zap.NewNop()}

	// An early "yes" answers some other question, not the summary.
	_, update := e.Extract(Turn{
		UserMessage: "yes, somewhere warm",
		Record:      models.PreferenceRecord{Destination: "Lisbon"},
	})
	assert.Nil(t, update.Confirmed)

	// A non-affirmative at the summary stage does not confirm either.
	rec := filledRecord()
	rec.Confirmed = false
	_, update = e.Extract(Turn{UserMessage: "hmm, let me think about it", Record: rec})
	assert.Nil(t, update.Confirmed)
}

func TestHeuristicExtractor_FieldTables(t *testing.T) {
	e := HeuristicExtractor{Logger: zap.NewNop()}

	tests := []struct {
		name    string
		message string
		check   func(t *testing.T, u models.PreferenceUpdate)
	}{
		{
			"destination phrase",
			"We are going to Tokyo for our honeymoon",
			func(t *testing.T, u models.PreferenceUpdate) {
				assert.Equal(t, "Tokyo", u.Destination)
			},
		},
		{
			"budget in words",
			"around 2500 dollars total",
			func(t *testing.T, u models.PreferenceUpdate) {
				require.NotNil(t, u.BudgetTotal)
				assert.Equal(t, 2500.0, *u.BudgetTotal)
			},
		},
		{
			"iso date pair",
			"from 2026-03-10 to 2026-03-17",
			func(t *testing.T, u models.PreferenceUpdate) {
				require.NotNil(t, u.Dates)
				assert.Equal(t, "2026-03-10", u.Dates.Start)
				assert.Equal(t, "2026-03-17", u.Dates.End)
			},
		},
		{
			"loose dates stay raw",
			"sometime around March 10th - 17th maybe",
			func(t *testing.T, u models.PreferenceUpdate) {
				require.NotNil(t, u.Dates)
				assert.Empty(t, u.Dates.Start)
				assert.NotEmpty(t, u.Dates.Raw)
			},
		},
		{
			"strict flexibility",
			"the dates are fixed, we cannot change them",
			func(t *testing.T, u models.PreferenceUpdate) {
				assert.Equal(t, models.FlexibilityStrict, u.DateFlexibility)
			},
		},
		{
			"mixed beats passive when both present",
			"a mix of relaxing and hiking",
			func(t *testing.T, u models.PreferenceUpdate) {
				assert.Equal(t, models.ActivitiesMixed, u.Activities)
			},
		},
		{
			"nothing matches",
			"tell me more please",
			func(t *testing.T, u models.PreferenceUpdate) {
				assert.True(t, u.Empty())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, update := e.Extract(Turn{UserMessage: tt.message})
			tt.check(t, update)
		})
	}
}
