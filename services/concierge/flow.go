package concierge

import (
	"regexp"

	"miohost/catalog"
	"miohost/models"
)

// entryRule routes a flow entry to a non-zero step when the guest's
// phrasing already answers the first step's question.
type entryRule struct {
	name  string
	re    *regexp.Regexp
	index int
}

// laundryEntryRules are evaluated in order; the first hit wins. This is
// a narrow, flow-specific shortcut over the raw guest text, not a
// second classification layer.
var laundryEntryRules = []entryRule{
	{"price", regexp.MustCompile(`(?i)(price|cost|kosten|preis|preise|was kostet)`), 1},
	{"tokens", regexp.MustCompile(`(?i)(token|coin|münze|muenze|jeton)`), 2},
	{"directions", regexp.MustCompile(`(?i)(weg|richtung|directions|how do i get|wo ist|where is)`), 3},
	{"hours", regexp.MustCompile(`(?i)(öffnungszeit|oeffnungszeit|opening hours)`), 4},
	{"detergent", regexp.MustCompile(`(?i)(waschmittel|detergent|soap|zubehör|zubehoer)`), 5},
	{"rules", regexp.MustCompile(`(?i)(regel|rules)`), 6},
}

var entryRules = map[string][]entryRule{
	"laundry": laundryEntryRules,
}

// FlowEngine resolves scripted dialogue steps against the catalog. It
// holds no mutable state.
type FlowEngine struct {
	catalog *catalog.Catalog
}

func NewFlowEngine(c *catalog.Catalog) *FlowEngine {
	return &FlowEngine{catalog: c}
}

// StartFlow returns the entry step of the flow registered for the
// intent. With valid catalog content the error path is unreachable.
func (e *FlowEngine) StartFlow(intentID string, entryIndex int) (*models.Step, error) {
	f, ok := e.catalog.Flow(intentID)
	if !ok {
		return nil, ErrNoSuchFlow
	}
	if entryIndex < 0 || entryIndex >= len(f.Steps) {
		return nil, ErrNoSuchFlow
	}
	return &f.Steps[entryIndex], nil
}

// Step returns the step at index, if the flow and index exist.
func (e *FlowEngine) Step(intentID string, index int) (*models.Step, bool) {
	f, ok := e.catalog.Flow(intentID)
	if !ok || index < 0 || index >= len(f.Steps) {
		return nil, false
	}
	return &f.Steps[index], true
}

// EntryIndexFor picks the entry step for a flow from the raw guest
// text. Flows without entry rules always enter at step 0.
func (e *FlowEngine) EntryIndexFor(intentID, rawText string) int {
	rules, ok := entryRules[intentID]
	if !ok {
		return 0
	}
	for _, r := range rules {
		if r.re.MatchString(rawText) {
			return r.index
		}
	}
	return 0
}

// AdvanceBack returns the step preceding current, or false when current
// is already the entry step (a no-op for the caller).
func (e *FlowEngine) AdvanceBack(intentID string, current int) (*models.Step, int, bool) {
	if current <= 0 {
		return nil, current, false
	}
	step, ok := e.Step(intentID, current-1)
	if !ok {
		return nil, current, false
	}
	return step, current - 1, true
}
