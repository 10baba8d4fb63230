// File: services/planner/extract.go
package planner

import (
	"encoding/json"
	"strconv"
	"strings"

	"tripwise/models"

	"go.uber.org/zap"
)

// Turn is the material one extraction pass works on: the user's message,
// the model's raw reply, and a snapshot of the record before this turn.
type Turn struct {
	UserMessage string
	ModelReply  string
	Record      models.PreferenceRecord
}

// Extractor pulls newly disclosed slot values out of a turn. It returns the
// user-visible reply text and a partial update; decode problems are never
// fatal, they just produce an empty update.
type Extractor interface {
	Extract(turn Turn) (visibleText string, update models.PreferenceUpdate)
}

// NewExtractor selects the extraction strategy by configuration.
func NewExtractor(mode string, logger *zap.Logger) Extractor {
	if mode == "heuristic" {
		return HeuristicExtractor{Logger: logger}
	}
	return BlockExtractor{Logger: logger}
}

// Delimiters of the structured block the model appends to its reply.
const (
	blockOpen  = "[TRIP_DATA]"
	blockClose = "[/TRIP_DATA]"
)

// BlockExtractor reads the delimited JSON block out of the model reply. The
// first well-formed block wins; every block (well-formed or not) is stripped
// from the visible text, so the output is stable under re-extraction.
type BlockExtractor struct {
	Logger *zap.Logger
}

func (e BlockExtractor) Extract(turn Turn) (string, models.PreferenceUpdate) {
	visible := turn.ModelReply
	var update models.PreferenceUpdate
	decoded := false

	for {
		start := strings.Index(visible, blockOpen)
		if start < 0 {
			break
		}
		rest := visible[start+len(blockOpen):]
		end := strings.Index(rest, blockClose)
		if end < 0 {
			// Opening delimiter without a close: strip the dangling block.
			e.logWarn("Unterminated extraction block", visible[start:])
			visible = strings.TrimSpace(visible[:start])
			break
		}

		payload := strings.TrimSpace(rest[:end])
		visible = strings.TrimSpace(visible[:start] + rest[end+len(blockClose):])

		if decoded {
			continue
		}
		var raw blockPayload
		if err := json.Unmarshal([]byte(payload), &raw); err != nil {
			e.logWarn("Malformed extraction block", payload)
			continue
		}
		update = raw.toUpdate()
		decoded = true
	}
	return visible, update
}

func (e BlockExtractor) logWarn(msg, payload string) {
	if e.Logger != nil {
		e.Logger.Warn(msg, zap.String("payload", payload))
	}
}

// blockPayload mirrors the JSON shape the model is instructed to emit.
// Numeric fields tolerate both string and number encodings.
type blockPayload struct {
	Origin            string            `json:"origin"`
	Destination       string            `json:"destination"`
	WeatherPreference string            `json:"weatherPreference"`
	Activities        string            `json:"activities"`
	BudgetTotal       flexFloat         `json:"budgetTotal"`
	BudgetAllocation  *allocPayload     `json:"budgetAllocation"`
	DateRange         *dateRangePayload `json:"dateRange"`
	DateFlexibility   string            `json:"dateFlexibility"`
	Confirmed         *bool             `json:"confirmed"`
}

type allocPayload struct {
	AccommodationPct flexFloat `json:"accommodationPct"`
	FlightsPct       flexFloat `json:"flightsPct"`
	ActivitiesPct    flexFloat `json:"activitiesPct"`
}

// dateRangePayload accepts either {"start":...,"end":...} or a bare string,
// which is kept raw pending normalization.
type dateRangePayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Raw   string `json:"-"`
}

func (d *dateRangePayload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Raw = s
		return nil
	}
	type alias dateRangePayload
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	d.Start, d.End = a.Start, a.End
	return nil
}

// flexFloat coerces string-or-number inputs to a float. Unparseable values
// decode to zero rather than failing the whole block.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

func (p blockPayload) toUpdate() models.PreferenceUpdate {
	update := models.PreferenceUpdate{
		Origin:            strings.TrimSpace(p.Origin),
		Destination:       strings.TrimSpace(p.Destination),
		WeatherPreference: normalizeCategory(p.WeatherPreference),
		Activities:        normalizeCategory(p.Activities),
		DateFlexibility:   normalizeCategory(p.DateFlexibility),
		Confirmed:         p.Confirmed,
	}
	if p.BudgetTotal > 0 {
		v := float64(p.BudgetTotal)
		update.BudgetTotal = &v
	}
	if p.BudgetAllocation != nil {
		update.BudgetAllocation = &models.BudgetAllocation{
			AccommodationPct: float64(p.BudgetAllocation.AccommodationPct),
			FlightsPct:       float64(p.BudgetAllocation.FlightsPct),
			ActivitiesPct:    float64(p.BudgetAllocation.ActivitiesPct),
		}
	}
	if p.DateRange != nil && (p.DateRange.Start != "" || p.DateRange.End != "" || p.DateRange.Raw != "") {
		update.Dates = &models.DateRange{
			Start: p.DateRange.Start,
			End:   p.DateRange.End,
			Raw:   p.DateRange.Raw,
		}
	}
	return update
}

func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
