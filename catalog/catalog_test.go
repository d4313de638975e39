package catalog

import (
	"testing"

	"miohost/models"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

func TestNewValidates(t *testing.T) {
	c := mustCatalog(t)
	if got, want := len(c.Intents), 14; got != want {
		t.Errorf("len(Intents) = %d, want %d", got, want)
	}
	if got, want := len(c.Flows), 14; got != want {
		t.Errorf("len(Flows) = %d, want %d", got, want)
	}
	if got, want := len(c.Services), 4; got != want {
		t.Errorf("len(Services) = %d, want %d", got, want)
	}
}

func TestEveryIntentHasFlow(t *testing.T) {
	c := mustCatalog(t)
	for _, in := range c.Intents {
		if _, ok := c.Flow(in.ID); !ok {
			t.Errorf("intent %q has no flow", in.ID)
		}
		if _, ok := c.Prompts[in.ID]; !ok {
			t.Errorf("intent %q has no canonical prompt", in.ID)
		}
	}
}

func TestFlowStepCounts(t *testing.T) {
	cases := []struct {
		intentID string
		steps    int
	}{
		{"wifi", 4},
		{"laundry", 7},
		{"kitchen", 4},
		{"parking", 4},
		{"breakfast", 4},
		{"checkout", 4},
		{"local", 4},
		{"reception", 6},
		{"delivery", 4},
		{"supermarket", 4},
		{"service_cleaning", 4},
		{"service_towels", 4},
		{"service_late", 4},
		{"service_repair", 4},
	}
	c := mustCatalog(t)
	for _, tc := range cases {
		f, ok := c.Flow(tc.intentID)
		if !ok {
			t.Errorf("flow %q missing", tc.intentID)
			continue
		}
		if len(f.Steps) != tc.steps {
			t.Errorf("flow %q has %d steps, want %d", tc.intentID, len(f.Steps), tc.steps)
		}
	}
}

func TestServiceIntentsBindKnownServices(t *testing.T) {
	cases := []struct {
		intentID  string
		serviceID string
		priceEN   string
	}{
		{"service_cleaning", "cleaning", "25€"},
		{"service_towels", "towels", "12€"},
		{"service_late", "late", "25€"},
		{"service_repair", "repair", "Free"},
	}
	c := mustCatalog(t)
	for _, tc := range cases {
		in, ok := c.Intent(tc.intentID)
		if !ok {
			t.Fatalf("intent %q missing", tc.intentID)
		}
		if in.ServiceID != tc.serviceID {
			t.Errorf("intent %q serviceID = %q, want %q", tc.intentID, in.ServiceID, tc.serviceID)
		}
		svc, ok := c.Service(tc.serviceID)
		if !ok {
			t.Fatalf("service %q missing", tc.serviceID)
		}
		if svc.Price.Get(models.LocaleEN) != tc.priceEN {
			t.Errorf("service %q price = %q, want %q", tc.serviceID, svc.Price.EN, tc.priceEN)
		}
	}
}

func TestChipsFor(t *testing.T) {
	c := mustCatalog(t)

	if got := c.ChipsFor(""); len(got) != len(c.QuickChips) {
		t.Errorf("ChipsFor(\"\") returned %d chips, want quick chips (%d)", len(got), len(c.QuickChips))
	}
	if got := c.ChipsFor("unknown_intent"); len(got) != len(c.QuickChips) {
		t.Errorf("ChipsFor(unknown) should fall back to quick chips, got %d", len(got))
	}
	chips := c.ChipsFor("laundry")
	if len(chips) == 0 || chips[0].ID != "laundry_cost" {
		t.Errorf("ChipsFor(laundry) = %+v, want laundry context chips", chips)
	}
}

func TestMapSteps(t *testing.T) {
	cases := []struct {
		intentID string
		step     int
		titleEN  string
		featured int
	}{
		{"local", 0, "Local map", 5},
		{"delivery", 0, "Nearby restaurants", 5},
		{"supermarket", 0, "Supermarkets nearby", 1},
	}
	c := mustCatalog(t)
	for _, tc := range cases {
		f, ok := c.Flow(tc.intentID)
		if !ok {
			t.Fatalf("flow %q missing", tc.intentID)
		}
		m := f.Steps[tc.step].Map
		if m == nil {
			t.Errorf("flow %q step %d has no map", tc.intentID, tc.step)
			continue
		}
		if m.Title.EN != tc.titleEN {
			t.Errorf("flow %q map title = %q, want %q", tc.intentID, m.Title.EN, tc.titleEN)
		}
		if len(m.Featured) != tc.featured {
			t.Errorf("flow %q map features %d markers, want %d", tc.intentID, len(m.Featured), tc.featured)
		}
	}
}

func TestValidateRejectsBadContent(t *testing.T) {
	c := mustCatalog(t)

	broken := *c
	broken.Flows = map[string]models.Flow{
		"wifi": {IntentID: "wifi", Steps: []models.Step{{
			ID:  "wifi_1",
			Bot: lt("hello", "hallo"),
			Options: []models.Option{{
				Label: lt("go", "los"),
				User:  lt("go", "los"),
				Next:  next(9),
			}},
		}}},
	}
	if err := broken.Validate(); err == nil {
		t.Error("Validate accepted out-of-range next reference")
	}

	broken.Flows = map[string]models.Flow{
		"wifi": {IntentID: "wifi", Steps: []models.Step{{
			ID:  "wifi_1",
			Bot: lt("hello", "hallo"),
			Options: []models.Option{{
				Label:  lt("go", "los"),
				User:   lt("go", "los"),
				Action: &models.Action{Kind: models.ActionJump, IntentID: "nope"},
			}},
		}}},
	}
	if err := broken.Validate(); err == nil {
		t.Error("Validate accepted jump to unknown flow")
	}

	broken.Flows = map[string]models.Flow{
		"wifi": {IntentID: "wifi", Steps: []models.Step{{
			ID:  "wifi_1",
			Bot: lt("hello", ""),
			Options: []models.Option{{
				Label: lt("go", "los"),
				User:  lt("go", "los"),
			}},
		}}},
	}
	if err := broken.Validate(); err == nil {
		t.Error("Validate accepted incomplete bot localization")
	}
}
