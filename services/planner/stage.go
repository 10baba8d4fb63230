// File: services/planner/stage.go
package planner

import "tripwise/models"

// Stage is the next unmet slot-filling step, always recomputed from the
// preference record so the record and the stage can never drift apart.
type Stage int

const (
	StageNeedOrigin Stage = iota
	StageNeedDestination
	StageNeedWeather
	StageNeedActivities
	StageNeedBudget
	StageNeedBudgetAllocation
	StageNeedDates
	StageNeedFlexibility
	StageNeedConfirmation
	StageReady
)

var stageNames = map[Stage]string{
	StageNeedOrigin:           "need_origin",
	StageNeedDestination:      "need_destination",
	StageNeedWeather:          "need_weather",
	StageNeedActivities:       "need_activities",
	StageNeedBudget:           "need_budget",
	StageNeedBudgetAllocation: "need_budget_allocation",
	StageNeedDates:            "need_dates",
	StageNeedFlexibility:      "need_flexibility",
	StageNeedConfirmation:     "need_confirmation",
	StageReady:                "ready",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// SelectStage scans the ordered slot checklist and returns the first unmet
// requirement together with its instruction text. When collectOrigin is
// false the ordering starts at the destination slot. Identical record and
// configuration always yield the identical stage.
func SelectStage(rec *models.PreferenceRecord, collectOrigin bool) (Stage, string) {
	var stage Stage
	switch {
	case collectOrigin && rec.Origin == "":
		stage = StageNeedOrigin
	case rec.Destination == "":
		stage = StageNeedDestination
	case rec.WeatherPreference == "":
		stage = StageNeedWeather
	case rec.Activities == "":
		stage = StageNeedActivities
	case rec.BudgetTotal == 0:
		stage = StageNeedBudget
	case rec.BudgetAllocation == nil:
		stage = StageNeedBudgetAllocation
	case !rec.HasDates():
		stage = StageNeedDates
	case rec.DateFlexibility == "":
		stage = StageNeedFlexibility
	case !rec.Confirmed:
		stage = StageNeedConfirmation
	default:
		stage = StageReady
	}
	return stage, stageInstructions[stage]
}
