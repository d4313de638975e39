// Package catalog holds the static, locale-keyed guest content: intents,
// dialogue flows, bookable services, points of interest, and chip
// shortcuts. It is built once at process start and never mutated.
package catalog

import (
	"fmt"

	"miohost/models"
)

// Strings are the fixed bot/system texts outside any flow.
type Strings struct {
	Welcome       models.LocalizedText
	TapHint       models.LocalizedText
	Clarify       models.LocalizedText
	ServicePrompt models.LocalizedText
	MessagePrompt models.LocalizedText
	BackNote      models.LocalizedText
	Booked        models.LocalizedText
	Forwarded     models.LocalizedText
	MessageCancel models.LocalizedText
	IntentTag     models.LocalizedText
}

// Catalog is the immutable content bundle every component receives by
// explicit reference.
type Catalog struct {
	Intents        []models.Intent
	Services       map[string]models.Service
	Flows          map[string]models.Flow
	QuickChips     []models.Chip
	SecondaryChips []models.Chip
	ContextChips   map[string][]models.Chip
	Prompts        map[string]models.LocalizedText
	Places         []models.MarkerPOI
	UI             Strings
}

// New assembles the catalog from the static content tables and validates
// it. A validation error is a configuration defect and the process must
// not start with it.
func New() (*Catalog, error) {
	c := &Catalog{
		Intents:        intentTable,
		Services:       serviceTable,
		Flows:          flowTable,
		QuickChips:     quickChips,
		SecondaryChips: secondaryChips,
		ContextChips:   contextChips,
		Prompts:        intentPrompts,
		Places:         allPlaces,
		UI:             uiStrings,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Intent returns the intent with the given id, if present.
func (c *Catalog) Intent(id string) (*models.Intent, bool) {
	for i := range c.Intents {
		if c.Intents[i].ID == id {
			return &c.Intents[i], true
		}
	}
	return nil, false
}

// Flow returns the flow registered for the intent id, if any.
func (c *Catalog) Flow(intentID string) (*models.Flow, bool) {
	f, ok := c.Flows[intentID]
	if !ok {
		return nil, false
	}
	return &f, true
}

// Service returns the bookable service with the given id.
func (c *Catalog) Service(id string) (*models.Service, bool) {
	s, ok := c.Services[id]
	if !ok {
		return nil, false
	}
	return &s, true
}

// ChipsFor returns the contextual chips for the last matched intent,
// falling back to the quick chips.
func (c *Catalog) ChipsFor(lastIntentID string) []models.Chip {
	if lastIntentID != "" {
		if chips, ok := c.ContextChips[lastIntentID]; ok {
			return chips
		}
	}
	return c.QuickChips
}

// Validate enforces the catalog invariants: complete EN/DE localization
// on every field, non-empty keyword sets, in-range next references,
// resolvable jump targets and service ids. Violations are configuration
// defects surfaced at load time, never at runtime.
func (c *Catalog) Validate() error {
	if len(c.Intents) == 0 {
		return fmt.Errorf("catalog: no intents defined")
	}
	for _, in := range c.Intents {
		if len(in.Keywords) == 0 {
			return fmt.Errorf("catalog: intent %q has no keywords", in.ID)
		}
		if !in.Label.Complete() || !in.Reply.Complete() {
			return fmt.Errorf("catalog: intent %q has incomplete localization", in.ID)
		}
		if in.ServiceID != "" {
			if _, ok := c.Services[in.ServiceID]; !ok {
				return fmt.Errorf("catalog: intent %q references unknown service %q", in.ID, in.ServiceID)
			}
		}
	}
	for id, svc := range c.Services {
		if !svc.Label.Complete() || !svc.Price.Complete() {
			return fmt.Errorf("catalog: service %q has incomplete localization", id)
		}
	}
	for id, flow := range c.Flows {
		if _, ok := c.Intent(id); !ok {
			return fmt.Errorf("catalog: flow %q has no matching intent", id)
		}
		if len(flow.Steps) == 0 {
			return fmt.Errorf("catalog: flow %q has no steps", id)
		}
		for si, step := range flow.Steps {
			if err := c.validateStep(id, si, step, len(flow.Steps)); err != nil {
				return err
			}
		}
	}
	for _, m := range c.Places {
		if !m.Label.Complete() || !m.Address.Complete() {
			return fmt.Errorf("catalog: marker %q has incomplete localization", m.ID)
		}
	}
	for _, chips := range [][]models.Chip{c.QuickChips, c.SecondaryChips} {
		for _, ch := range chips {
			if !ch.Label.Complete() || !ch.Prompt.Complete() {
				return fmt.Errorf("catalog: chip %q has incomplete localization", ch.ID)
			}
		}
	}
	for intentID, chips := range c.ContextChips {
		for _, ch := range chips {
			if !ch.Label.Complete() || !ch.Prompt.Complete() {
				return fmt.Errorf("catalog: context chip %q (%s) has incomplete localization", ch.ID, intentID)
			}
		}
	}
	return nil
}

func (c *Catalog) validateStep(flowID string, index int, step models.Step, total int) error {
	if !step.Bot.Complete() {
		return fmt.Errorf("catalog: flow %q step %d has incomplete bot text", flowID, index)
	}
	if len(step.Options) == 0 {
		return fmt.Errorf("catalog: flow %q step %d has no options", flowID, index)
	}
	if step.Map != nil {
		if !step.Map.Title.Complete() {
			return fmt.Errorf("catalog: flow %q step %d map has incomplete title", flowID, index)
		}
	}
	for oi, opt := range step.Options {
		if !opt.Label.Complete() || !opt.User.Complete() {
			return fmt.Errorf("catalog: flow %q step %d option %d has incomplete localization", flowID, index, oi)
		}
		if opt.Next != nil && opt.Action != nil {
			return fmt.Errorf("catalog: flow %q step %d option %d has both next and action", flowID, index, oi)
		}
		if opt.Next != nil && (*opt.Next < 0 || *opt.Next >= total) {
			return fmt.Errorf("catalog: flow %q step %d option %d next %d out of range", flowID, index, oi, *opt.Next)
		}
		if opt.Action != nil {
			if err := c.validateAction(flowID, index, oi, opt.Action); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) validateAction(flowID string, step, opt int, a *models.Action) error {
	switch a.Kind {
	case models.ActionEnd:
		return nil
	case models.ActionJump:
		if _, ok := c.Flows[a.IntentID]; !ok {
			return fmt.Errorf("catalog: flow %q step %d option %d jumps to unknown flow %q", flowID, step, opt, a.IntentID)
		}
	case models.ActionService:
		if _, ok := c.Services[a.ServiceID]; !ok {
			return fmt.Errorf("catalog: flow %q step %d option %d references unknown service %q", flowID, step, opt, a.ServiceID)
		}
	case models.ActionMessage:
		if a.Topic != nil && !a.Topic.Complete() {
			return fmt.Errorf("catalog: flow %q step %d option %d message topic incomplete", flowID, step, opt)
		}
		if a.Preset != nil && !a.Preset.Complete() {
			return fmt.Errorf("catalog: flow %q step %d option %d message preset incomplete", flowID, step, opt)
		}
	default:
		return fmt.Errorf("catalog: flow %q step %d option %d has unknown action kind %q", flowID, step, opt, a.Kind)
	}
	return nil
}
