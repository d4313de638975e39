package concierge

import "testing"

func TestEntryIndexFor(t *testing.T) {
	e := NewFlowEngine(testCatalog(t))
	cases := []struct {
		intentID string
		text     string
		want     int
	}{
		{"laundry", "how much does it cost", 1},
		{"laundry", "was kostet die wäsche", 1},
		{"laundry", "where do I get tokens", 2},
		{"laundry", "how do i get there", 3},
		{"laundry", "opening hours please", 4},
		{"laundry", "is there detergent", 5},
		{"laundry", "any rules", 6},
		{"laundry", "where can I do laundry", 0},
		// Rules are ordered; the price rule wins over later ones.
		{"laundry", "what does a token cost", 1},
		// Only the laundry flow carries entry rules.
		{"wifi", "how much does it cost", 0},
		{"checkout", "opening hours", 0},
	}
	for _, tc := range cases {
		if got := e.EntryIndexFor(tc.intentID, tc.text); got != tc.want {
			t.Errorf("EntryIndexFor(%q, %q) = %d, want %d", tc.intentID, tc.text, got, tc.want)
		}
	}
}

func TestStartFlow(t *testing.T) {
	e := NewFlowEngine(testCatalog(t))

	step, err := e.StartFlow("wifi", 0)
	if err != nil {
		t.Fatalf("StartFlow(wifi, 0) failed: %v", err)
	}
	if step.ID != "wifi_1" {
		t.Errorf("StartFlow(wifi, 0) step = %q, want wifi_1", step.ID)
	}

	if _, err := e.StartFlow("nope", 0); err != ErrNoSuchFlow {
		t.Errorf("StartFlow(nope, 0) err = %v, want ErrNoSuchFlow", err)
	}
	if _, err := e.StartFlow("wifi", 99); err != ErrNoSuchFlow {
		t.Errorf("StartFlow(wifi, 99) err = %v, want ErrNoSuchFlow", err)
	}
	if _, err := e.StartFlow("wifi", -1); err != ErrNoSuchFlow {
		t.Errorf("StartFlow(wifi, -1) err = %v, want ErrNoSuchFlow", err)
	}
}

func TestAdvanceBack(t *testing.T) {
	e := NewFlowEngine(testCatalog(t))

	if _, _, ok := e.AdvanceBack("wifi", 0); ok {
		t.Error("AdvanceBack at entry step must be a no-op")
	}

	step, idx, ok := e.AdvanceBack("laundry", 3)
	if !ok {
		t.Fatal("AdvanceBack(laundry, 3) failed")
	}
	if idx != 2 || step.ID != "laundry_3" {
		t.Errorf("AdvanceBack(laundry, 3) = (%q, %d), want (laundry_3, 2)", step.ID, idx)
	}
}
