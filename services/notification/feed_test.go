package notification

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodeFeed(t *testing.T) {
	first := DeskNotification{
		Kind:      KindServiceRequest,
		RefID:     "req-1",
		Room:      "205",
		Summary:   "towels (12€)",
		CreatedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	second := DeskNotification{
		Kind:    KindReceptionMessage,
		RefID:   "msg-1",
		Room:    "310",
		Summary: "General question: late arrival",
	}
	raw := func(n DeskNotification) string {
		b, err := json.Marshal(n)
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}

	got := DecodeFeed([]string{raw(first), "not json", raw(second)})
	if len(got) != 2 {
		t.Fatalf("DecodeFeed kept %d entries, want 2", len(got))
	}
	if got[0].RefID != "req-1" || got[1].RefID != "msg-1" {
		t.Errorf("order not preserved: %+v", got)
	}
	if got[0].Kind != KindServiceRequest || !got[0].CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("first entry mangled: %+v", got[0])
	}
}

func TestDecodeFeedEmpty(t *testing.T) {
	if got := DecodeFeed(nil); len(got) != 0 {
		t.Errorf("DecodeFeed(nil) = %+v, want empty", got)
	}
}
