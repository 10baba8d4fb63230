// File: services/planner/heuristic.go
package planner

import (
	"regexp"
	"strconv"
	"strings"

	"tripwise/models"

	"go.uber.org/zap"
)

// HeuristicExtractor is the lower-fidelity fallback mode: it scans the
// user's last message against fixed keyword tables instead of reading a
// structured block from the model. Matching is first-match-wins per field,
// case-insensitive, and only fills slots still unset in the record. The
// model reply passes through untouched.
type HeuristicExtractor struct {
	Logger *zap.Logger
}

type keywordTable struct {
	category string
	words    []string
}

var weatherKeywords = []keywordTable{
	{models.WeatherTropical, []string{"tropical", "beach", "island", "warm", "sunny", "hot"}},
	{models.WeatherTemperate, []string{"temperate", "mild", "spring weather", "moderate"}},
	{models.WeatherCold, []string{"cold", "snow", "ski", "winter", "chilly"}},
	{models.WeatherDry, []string{"dry", "desert", "arid"}},
}

var activityKeywords = []keywordTable{
	{models.ActivitiesMixed, []string{"mix of", "bit of both", "mixed", "balance of", "some of both"}},
	{models.ActivitiesPassive, []string{"relax", "chill", "unwind", "lounge", "spa", "laid back", "laid-back", "do nothing"}},
	{models.ActivitiesActive, []string{"hike", "hiking", "adventure", "climb", "surf", "cycling", "sport", "trek", "dive", "kayak"}},
}

var flexibilityKeywords = []keywordTable{
	{models.FlexibilityFlexible, []string{"flexible", "roughly", "around those dates", "approximately", "give or take", "no rush"}},
	{models.FlexibilityStrict, []string{"strict", "exact", "fixed", "firm", "not flexible", "cannot change", "can't change"}},
}

var (
	originRe = regexp.MustCompile(`(?i)\b(?:i['’]?m from|i am from|flying from|travell?ing from|based in|depart(?:ing)? from)\s+([A-Za-z][A-Za-z .'-]*?)(?:\s+(?:and|but|with|on|in|for|to)\b|[,.!?;]|$)`)

	destinationRe = regexp.MustCompile(`(?i)\b(?:go(?:ing)? to|travell?ing to|trip to|visit(?:ing)?|head(?:ing)? to|fly(?:ing)? to)\s+([A-Za-z][A-Za-z .'-]*?)(?:\s+(?:and|but|with|on|in|for|this|next)\b|[,.!?;]|$)`)

	// A currency amount: "$3000", "€1,500.50" or "2500 dollars".
	budgetRe = regexp.MustCompile(`(?i)(?:[$€£]\s*([0-9][0-9,]*(?:\.[0-9]+)?))|(?:([0-9][0-9,]*(?:\.[0-9]+)?)\s*(?:dollars|bucks|usd|euros?|eur|pounds|gbp))`)

	// An affirmative answering the confirmation summary.
	confirmationRe = regexp.MustCompile(`(?i)\b(?:yes|yep|yeah|confirm(?:ed)?|correct|looks good|sounds good|all good|that's right|perfect)\b`)

	isoDateRe = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

	// Loose date tokens like "March 10" or "Jun 3rd - 12th"; kept raw for
	// later normalization.
	looseDateRe = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:\s*(?:-|–|to|until|through)\s*(?:\w+\.?\s+)?\d{1,2}(?:st|nd|rd|th)?)?`)
)

func (e HeuristicExtractor) Extract(turn Turn) (string, models.PreferenceUpdate) {
	msg := turn.UserMessage
	lower := strings.ToLower(msg)
	rec := turn.Record

	var update models.PreferenceUpdate

	if rec.Origin == "" {
		if m := originRe.FindStringSubmatch(msg); m != nil {
			update.Origin = strings.TrimSpace(m[1])
		}
	}
	if rec.Destination == "" {
		if m := destinationRe.FindStringSubmatch(msg); m != nil {
			update.Destination = strings.TrimSpace(m[1])
		}
	}
	if rec.WeatherPreference == "" {
		update.WeatherPreference = matchCategory(lower, weatherKeywords)
	}
	if rec.Activities == "" {
		update.Activities = matchCategory(lower, activityKeywords)
	}
	if rec.BudgetTotal == 0 {
		if amount, ok := matchBudget(msg); ok {
			update.BudgetTotal = &amount
		}
	}
	if !rec.HasDates() {
		update.Dates = matchDates(msg)
	}
	if rec.DateFlexibility == "" {
		update.DateFlexibility = matchCategory(lower, flexibilityKeywords)
	}
	// An affirmative only counts as confirmation once every other slot is
	// filled and the summary is what the user is answering.
	if !rec.Confirmed && awaitingConfirmation(&rec) && confirmationRe.MatchString(msg) {
		yes := true
		update.Confirmed = &yes
	}

	if e.Logger != nil && !update.Empty() {
		e.Logger.Debug("Heuristic extraction matched", zap.Any("update", update))
	}
	return turn.ModelReply, update
}

// awaitingConfirmation reports whether confirmation is the only slot left.
// Origin is deliberately excluded: it may legitimately stay empty when
// origin collection is disabled.
func awaitingConfirmation(rec *models.PreferenceRecord) bool {
	return rec.Destination != "" && rec.WeatherPreference != "" &&
		rec.Activities != "" && rec.BudgetTotal > 0 &&
		rec.BudgetAllocation != nil && rec.HasDates() && rec.DateFlexibility != ""
}

// matchCategory returns the first category with a keyword present in the
// text; tables are scanned in declaration order.
func matchCategory(lower string, tables []keywordTable) string {
	for _, t := range tables {
		for _, w := range t.words {
			if strings.Contains(lower, w) {
				return t.category
			}
		}
	}
	return ""
}

func matchBudget(msg string) (float64, bool) {
	m := budgetRe.FindStringSubmatch(msg)
	if m == nil {
		return 0, false
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func matchDates(msg string) *models.DateRange {
	if iso := isoDateRe.FindAllString(msg, 2); len(iso) > 0 {
		dr := &models.DateRange{Start: iso[0]}
		if len(iso) > 1 {
			dr.End = iso[1]
		}
		return dr
	}
	if loose := looseDateRe.FindString(msg); loose != "" {
		return &models.DateRange{Raw: strings.TrimSpace(loose)}
	}
	return nil
}
