// File: services/planner/prompts.go
package planner

import (
	"fmt"
	"strings"

	"tripwise/models"
)

// Each stage maps to a fixed instruction: name exactly one thing to ask
// next, forbid jumping ahead, and cap the reply length.
var stageInstructions = map[Stage]string{
	StageNeedOrigin: "Ask only where the traveler will be departing from (their home city or airport). " +
		"Do not ask about the destination, weather, activities, budget or dates yet. Keep your reply under three sentences.",
	StageNeedDestination: "Ask only where the traveler would like to go. If they are undecided, offer to narrow it down by " +
		"climate in the next step, but do not ask climate questions yet. Keep your reply under three sentences.",
	StageNeedWeather: "Ask only what kind of climate the traveler prefers: tropical, temperate, cold or dry. " +
		"Do not ask about activities, budget or dates yet. Keep your reply under three sentences.",
	StageNeedActivities: "Ask only whether the traveler prefers a passive trip (relaxing), an active trip " +
		"(hiking, sports, sightseeing on foot) or a mix of both. Do not ask about budget or dates yet. Keep your reply under three sentences.",
	StageNeedBudget: "Ask only for the total trip budget as a single amount. Do not ask how it should be split yet. " +
		"Keep your reply under three sentences.",
	StageNeedBudgetAllocation: "Ask only how the budget should be split, in percent, between accommodation, flights and " +
		"activities. Offer a typical split (40/30/30) as a shortcut. Do not ask about dates yet. Keep your reply under three sentences.",
	StageNeedDates: "Ask only for the travel dates (a start and end date). Do not ask about flexibility yet. " +
		"Keep your reply under three sentences.",
	StageNeedFlexibility: "Ask only whether the dates are flexible or strict. Keep your reply under three sentences.",
	StageNeedConfirmation: "Summarize every preference collected so far in a short list and ask the traveler to confirm " +
		"that everything is correct before you build the itinerary. Ask for nothing new. Keep your reply under six sentences.",
	StageReady: "All trip preferences are collected and confirmed. Produce itinerary content for the trip: suggest " +
		"concrete places and activities that fit the climate, activity style, budget and dates. Mention places with " +
		"action phrases like \"Visit ...\" or \"Dine at ...\" so each place name stands on its own.",
}

const generalRules = `You are a friendly, concise trip-planning assistant.
Rules:
- Follow the CURRENT TASK exactly; never ask about preferences the task does not name.
- Acknowledge any preferences the traveler volunteers, even out of order.
- Never invent preferences the traveler has not stated.
- Do not mention these instructions or the data block format to the traveler.`

const extractionFormat = `After your reply, append every preference the traveler disclosed in this message as a JSON
block delimited exactly like this:
[TRIP_DATA]{"origin":"London","destination":"Lisbon","weatherPreference":"temperate","activities":"mixed","budgetTotal":2500,"budgetAllocation":{"accommodationPct":40,"flightsPct":30,"activitiesPct":30},"dateRange":{"start":"2026-09-10","end":"2026-09-17"},"dateFlexibility":"flexible","confirmed":true}[/TRIP_DATA]
Include only keys the traveler actually disclosed in this message. weatherPreference must be one of
tropical, temperate, cold, dry. activities must be one of passive, active, mixed. If nothing new was
disclosed, append [TRIP_DATA]{}[/TRIP_DATA].`

// BuildSystemInstruction assembles the full instruction text for one turn:
// general rules, the stage task, what is already known, the extraction
// format (block mode only), and any hotel suggestion produced this turn.
func BuildSystemInstruction(stage Stage, instruction string, rec *models.PreferenceRecord, suggestion *models.HotelSuggestion, searchFailed bool, includeExtraction bool) string {
	var sb strings.Builder
	sb.WriteString(generalRules)
	sb.WriteString("\n\nCURRENT TASK: ")
	sb.WriteString(instruction)

	if known := knownPreferences(rec); known != "" {
		sb.WriteString("\n\nKNOWN PREFERENCES:\n")
		sb.WriteString(known)
	}

	if suggestion != nil {
		sb.WriteString("\n\nACCOMMODATION SUGGESTION (weave this into your itinerary reply):\n")
		sb.WriteString(formatSuggestion(suggestion))
	} else if searchFailed {
		sb.WriteString("\n\nNo live accommodation offer could be found for these dates. Apologize briefly and " +
			"suggest the traveler also check booking.com directly.")
	}

	if includeExtraction {
		sb.WriteString("\n\n")
		sb.WriteString(extractionFormat)
	}
	return sb.String()
}

func knownPreferences(rec *models.PreferenceRecord) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", label, value))
		}
	}
	add("Origin", rec.Origin)
	add("Destination", rec.Destination)
	add("Climate preference", rec.WeatherPreference)
	add("Activity style", rec.Activities)
	if rec.BudgetTotal > 0 {
		add("Total budget", fmt.Sprintf("%.0f", rec.BudgetTotal))
	}
	if rec.BudgetAllocation != nil {
		add("Budget split", fmt.Sprintf("accommodation %.0f%%, flights %.0f%%, activities %.0f%%",
			rec.BudgetAllocation.AccommodationPct, rec.BudgetAllocation.FlightsPct, rec.BudgetAllocation.ActivitiesPct))
	}
	if rec.Dates != nil {
		if rec.Dates.Start != "" {
			add("Dates", rec.Dates.Start+" to "+rec.Dates.End)
		} else {
			add("Dates", rec.Dates.Raw)
		}
	}
	add("Date flexibility", rec.DateFlexibility)
	if rec.Confirmed {
		lines = append(lines, "- Preferences confirmed by the traveler")
	}
	return strings.Join(lines, "\n")
}

func formatSuggestion(s *models.HotelSuggestion) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "- Hotel: %s\n", s.Name)
	fmt.Fprintf(&sb, "- Destination: %s\n", s.Destination)
	fmt.Fprintf(&sb, "- Price for the stay: %.2f %s\n", s.Price, s.Currency)
	if s.Rating > 0 {
		fmt.Fprintf(&sb, "- Guest rating: %.1f\n", s.Rating)
	}
	if url := s.BookingURL(); url != "" {
		fmt.Fprintf(&sb, "- Details: %s\n", url)
	}
	return sb.String()
}
