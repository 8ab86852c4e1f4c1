package types

import "strings"

// Validation messages shown when re-prompting
const (
	MsgFeatureRequired = "Feature name is required"
	MsgEventsRequired  = "At least one event is required"
)

// SetupDescriptor describes the PostHog integration found in a project
type SetupDescriptor struct {
	Flavor          Flavor   `json:"flavor"`
	ImportStatement string   `json:"import_statement"`
	UsagePattern    string   `json:"usage_pattern"`
	SourceFiles     []string `json:"source_files"`
}

// EventRequest is what the user asked to instrument
type EventRequest struct {
	FeatureName string   `json:"feature_name"`
	EventNames  []string `json:"event_names"`
	Context     string   `json:"context,omitempty"`
}

// NewEventRequest builds a request from raw user input.
// The feature name is trimmed and the event list is parsed with ParseEventList.
func NewEventRequest(feature, events, context string) (EventRequest, error) {
	var errs ValidationErrors

	feature = strings.TrimSpace(feature)
	if err := ValidateFeatureName(feature); err != nil {
		errs.Add("feature", feature, err.Error())
	}

	eventList := ParseEventList(events)
	if len(eventList) == 0 {
		errs.Add("events", events, MsgEventsRequired)
	}

	if errs.HasErrors() {
		return EventRequest{}, &errs
	}

	return EventRequest{
		FeatureName: feature,
		EventNames:  eventList,
		Context:     context,
	}, nil
}

// ParseEventList splits a comma-separated list, trimming entries and dropping blanks.
// Order and duplicates are preserved.
func ParseEventList(input string) []string {
	var events []string
	for _, part := range strings.Split(input, ",") {
		if e := strings.TrimSpace(part); e != "" {
			events = append(events, e)
		}
	}
	return events
}

// ValidateFeatureName rejects names that are blank after trimming
func ValidateFeatureName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationErrors{Errors: []ValidationError{{Field: "feature", Actual: name, Message: MsgFeatureRequired}}}
	}
	return nil
}

// ValidateEventList rejects input without at least one non-blank entry
func ValidateEventList(input string) error {
	if len(ParseEventList(input)) == 0 {
		return &ValidationErrors{Errors: []ValidationError{{Field: "events", Actual: input, Message: MsgEventsRequired}}}
	}
	return nil
}
