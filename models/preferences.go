package models

// Weather preference categories a traveler can express.
const (
	WeatherTropical  = "tropical"
	WeatherTemperate = "temperate"
	WeatherCold      = "cold"
	WeatherDry       = "dry"
)

// Activity style categories.
const (
	ActivitiesPassive = "passive"
	ActivitiesActive  = "active"
	ActivitiesMixed   = "mixed"
)

// Date flexibility values.
const (
	FlexibilityFlexible = "flexible"
	FlexibilityStrict   = "strict"
)

// BudgetAllocation splits the total budget across spending buckets, in percent.
type BudgetAllocation struct {
	AccommodationPct float64 `json:"accommodationPct" bson:"accommodationPct"`
	FlightsPct       float64 `json:"flightsPct" bson:"flightsPct"`
	ActivitiesPct    float64 `json:"activitiesPct" bson:"activitiesPct"`
}

// DateRange holds the trip window. Start and End carry YYYY-MM-DD dates once
// normalized; Raw keeps the user's wording until normalization happens.
type DateRange struct {
	Start string `json:"start,omitempty" bson:"start,omitempty"`
	End   string `json:"end,omitempty" bson:"end,omitempty"`
	Raw   string `json:"raw,omitempty" bson:"raw,omitempty"`
}

// Empty reports whether the range carries no usable value at all.
func (d DateRange) Empty() bool {
	return d.Start == "" && d.End == "" && d.Raw == ""
}

// PreferenceRecord is the slot-filling state for one conversation. A zero
// value means the slot has not been disclosed yet; slots are only ever
// overwritten by a fresh extraction, never cleared.
type PreferenceRecord struct {
	Origin            string            `json:"origin,omitempty" bson:"origin,omitempty"`
	Destination       string            `json:"destination,omitempty" bson:"destination,omitempty"`
	WeatherPreference string            `json:"weatherPreference,omitempty" bson:"weatherPreference,omitempty"`
	Activities        string            `json:"activities,omitempty" bson:"activities,omitempty"`
	BudgetTotal       float64           `json:"budgetTotal,omitempty" bson:"budgetTotal,omitempty"`
	BudgetAllocation  *BudgetAllocation `json:"budgetAllocation,omitempty" bson:"budgetAllocation,omitempty"`
	Dates             *DateRange        `json:"dateRange,omitempty" bson:"dateRange,omitempty"`
	DateFlexibility   string            `json:"dateFlexibility,omitempty" bson:"dateFlexibility,omitempty"`
	Confirmed         bool              `json:"confirmed,omitempty" bson:"confirmed,omitempty"`

	// SuggestionDone marks that a hotel suggestion has already been generated
	// for this record, so repeat turns at the final stage do not re-search.
	SuggestionDone bool `json:"suggestionDone,omitempty" bson:"suggestionDone,omitempty"`
}

// HasDates reports whether the date slot is filled in either form.
func (r *PreferenceRecord) HasDates() bool {
	return r.Dates != nil && !r.Dates.Empty()
}

// PreferenceUpdate is a partial update produced by one extraction pass.
// Zero-value fields are no-ops; pointer fields distinguish "absent" from
// a deliberate value.
type PreferenceUpdate struct {
	Origin            string
	Destination       string
	WeatherPreference string
	Activities        string
	BudgetTotal       *float64
	BudgetAllocation  *BudgetAllocation
	Dates             *DateRange
	DateFlexibility   string
	Confirmed         *bool
}

// Empty reports whether the update carries nothing at all.
func (u PreferenceUpdate) Empty() bool {
	return u.Origin == "" && u.Destination == "" && u.WeatherPreference == "" &&
		u.Activities == "" && u.BudgetTotal == nil && u.BudgetAllocation == nil &&
		u.Dates == nil && u.DateFlexibility == "" && u.Confirmed == nil
}

// Apply merges the update into the record. Present keys overwrite, absent
// keys leave the slot alone; nothing is ever unset.
func (r *PreferenceRecord) Apply(u PreferenceUpdate) {
	if u.Origin != "" {
		r.Origin = u.Origin
	}
	if u.Destination != "" {
		r.Destination = u.Destination
	}
	if u.WeatherPreference != "" {
		r.WeatherPreference = u.WeatherPreference
	}
	if u.Activities != "" {
		r.Activities = u.Activities
	}
	if u.BudgetTotal != nil && *u.BudgetTotal > 0 {
		r.BudgetTotal = *u.BudgetTotal
	}
	if u.BudgetAllocation != nil {
		alloc := *u.BudgetAllocation
		r.BudgetAllocation = &alloc
	}
	if u.Dates != nil && !u.Dates.Empty() {
		dates := *u.Dates
		r.Dates = &dates
	}
	if u.DateFlexibility != "" {
		r.DateFlexibility = u.DateFlexibility
	}
	if u.Confirmed != nil {
		r.Confirmed = *u.Confirmed
	}
}
