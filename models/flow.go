package models

// ActionKind discriminates the side effect attached to a step option.
type ActionKind string

const (
	ActionEnd     ActionKind = "end"
	ActionJump    ActionKind = "jump"
	ActionService ActionKind = "service"
	ActionMessage ActionKind = "message"
)

// Action is a step-option side effect. Exactly the fields matching Kind
// are set: IntentID for jump, ServiceID for service, Topic/Preset for
// message.
type Action struct {
	Kind      ActionKind     `json:"kind"`
	IntentID  string         `json:"intentId,omitempty"`
	ServiceID string         `json:"serviceId,omitempty"`
	Topic     *LocalizedText `json:"topic,omitempty"`
	Preset    *LocalizedText `json:"preset,omitempty"`
}

// Option is a selectable answer on a flow step. It carries either Next
// (an index into the same flow) or an Action; with neither it is a
// terminal, informational choice.
type Option struct {
	Label  LocalizedText `json:"label"`
	User   LocalizedText `json:"userEcho"`
	Next   *int          `json:"next,omitempty"`
	Action *Action       `json:"action,omitempty"`
}

// MapWidget describes the map card attached to a step.
type MapWidget struct {
	Title    LocalizedText `json:"title"`
	Subtitle LocalizedText `json:"subtitle"`
	Markers  []MarkerPOI   `json:"markers"`
	// Featured is the subset rendered as a scrollable list under the map.
	Featured []MarkerPOI `json:"featured,omitempty"`
}

// Step is one scripted turn of a flow.
type Step struct {
	ID      string        `json:"id"`
	Bot     LocalizedText `json:"bot"`
	Map     *MapWidget    `json:"map,omitempty"`
	Options []Option      `json:"options"`
}

// Flow is the ordered step sequence for one intent; its id equals the
// intent id and step 0 is always the entry.
type Flow struct {
	IntentID string `json:"intentId"`
	Steps    []Step `json:"steps"`
}
