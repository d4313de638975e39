package concierge

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"miohost/models"
)

// newTestManager delivers replies synchronously so tests observe state
// without sleeping.
func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(testCatalog(t), 0, "205", zap.NewNop())
}

func lastMessage(t *testing.T, s *Session) models.ChatMessage {
	t.Helper()
	log := s.Snapshot().Log
	if len(log) == 0 {
		t.Fatal("session log is empty")
	}
	return log[len(log)-1]
}

func TestSessionWelcomeSeed(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	snap := s.Snapshot()
	if snap.State != models.StateIdle {
		t.Errorf("initial state = %q, want idle", snap.State)
	}
	if len(snap.Log) != 2 {
		t.Fatalf("initial log has %d entries, want welcome + hint", len(snap.Log))
	}
	if snap.Log[0].Tone != models.ToneBot || snap.Log[1].Type != models.MessageSystem {
		t.Errorf("unexpected seed messages: %+v", snap.Log)
	}
}

func TestFreeTextEntersFlow(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("What's the wifi password?")

	snap := s.Snapshot()
	if snap.State != models.StateInFlow {
		t.Fatalf("state = %q, want in_flow", snap.State)
	}
	if snap.Flow.IntentID != "wifi" || snap.Flow.StepIndex != 0 {
		t.Errorf("flow = %+v, want wifi step 0", snap.Flow)
	}
	if snap.LastIntentID != "wifi" {
		t.Errorf("lastIntentID = %q, want wifi", snap.LastIntentID)
	}
	if snap.ActiveStep == nil || snap.ActiveStep.ID != "wifi_1" {
		t.Errorf("active step = %+v, want wifi_1", snap.ActiveStep)
	}
}

func TestFreeTextEntryHeuristic(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("how much does laundry cost")

	snap := s.Snapshot()
	if snap.State != models.StateInFlow || snap.Flow.IntentID != "laundry" {
		t.Fatalf("flow = %+v, want laundry", snap.Flow)
	}
	if snap.Flow.StepIndex != 1 {
		t.Errorf("entry step = %d, want 1 (price step)", snap.Flow.StepIndex)
	}
}

func TestUnknownTextClarifies(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	before := len(s.Snapshot().Log)
	s.Submit("zzz qqq")

	snap := s.Snapshot()
	if snap.State != models.StateIdle {
		t.Errorf("state = %q, want idle after no-match", snap.State)
	}
	// User echo plus one clarifying bot message; no suggestions since
	// nothing scored positive.
	if got := len(snap.Log) - before; got != 2 {
		t.Errorf("appended %d messages, want 2", got)
	}
	if last := snap.Log[len(snap.Log)-1]; last.Tone != models.ToneBot {
		t.Errorf("last message = %+v, want clarifying bot text", last)
	}
}

func TestEndReturnsToIdle(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("wifi password please")
	if err := s.SelectOption(0); err != nil { // device -> step 1
		t.Fatal(err)
	}
	if err := s.SelectOption(0); err != nil { // connected -> step 2
		t.Fatal(err)
	}
	before := len(s.Snapshot().Log)
	if err := s.SelectOption(2); err != nil { // "All good" -> End
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.State != models.StateIdle || snap.Flow != nil {
		t.Errorf("state after End = %q (flow %+v), want idle", snap.State, snap.Flow)
	}
	// Only the guest's echoed utterance is appended.
	if got := len(snap.Log) - before; got != 1 {
		t.Errorf("End appended %d messages, want 1", got)
	}
}

func TestJumpDiscardsFlowState(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("wifi password please")
	if err := s.SelectOption(0); err != nil { // -> step 1
		t.Fatal(err)
	}
	if err := s.SelectOption(1); err != nil { // "Still failing" -> step 3
		t.Fatal(err)
	}
	if err := s.SelectOption(0); err != nil { // jump to reception
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.Flow == nil || snap.Flow.IntentID != "reception" || snap.Flow.StepIndex != 0 {
		t.Errorf("flow after jump = %+v, want reception step 0", snap.Flow)
	}
	if snap.LastIntentID != "reception" {
		t.Errorf("lastIntentID = %q, want reception", snap.LastIntentID)
	}
}

func TestServiceBookingRoundTrip(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("what time is checkout")
	if err := s.SelectOption(0); err != nil { // late checkout -> step 1
		t.Fatal(err)
	}
	if err := s.SelectOption(0); err != nil { // request late checkout
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.State != models.StateInService || snap.Service == nil || snap.Service.ID != "late" {
		t.Fatalf("state = %q service = %+v, want in_service late", snap.State, snap.Service)
	}

	before := len(snap.Log)
	req, err := s.SubmitService(models.ServiceBookingPayload{Date: "tomorrow", Time: "14:00"})
	if err != nil {
		t.Fatalf("SubmitService failed: %v", err)
	}
	if req.ServiceID != "late" || req.Price.EN != "25€" {
		t.Errorf("request = %+v, want late at 25€", req)
	}
	if req.Payload.Room != "205" {
		t.Errorf("room = %q, want profile default 205", req.Payload.Room)
	}

	snap = s.Snapshot()
	if snap.State != models.StateIdle || snap.Service != nil || snap.Flow != nil {
		t.Errorf("state after submit = %q, want idle with no sub-dialogue", snap.State)
	}
	if got := len(snap.Log) - before; got != 1 {
		t.Errorf("submit appended %d messages, want exactly one confirmation", got)
	}

	if _, err := s.SubmitService(models.ServiceBookingPayload{}); err != ErrNotInService {
		t.Errorf("second submit err = %v, want ErrNotInService", err)
	}
}

func TestReceptionMessageRoundTrip(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("I need the reception")
	if err := s.SelectOption(1); err != nil { // send a message -> step 2
		t.Fatal(err)
	}
	if err := s.SelectOption(0); err != nil { // topic: general question
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.State != models.StateInMessage {
		t.Fatalf("state = %q, want in_message", snap.State)
	}
	if snap.MessageTopic == nil || snap.MessageTopic.EN != "General question" {
		t.Errorf("topic = %+v, want General question", snap.MessageTopic)
	}

	if _, err := s.SubmitReception("", "hello"); err != ErrEmptyField {
		t.Errorf("empty room err = %v, want ErrEmptyField", err)
	}
	if _, err := s.SubmitReception("205", "   "); err != ErrEmptyField {
		t.Errorf("blank message err = %v, want ErrEmptyField", err)
	}

	msg, err := s.SubmitReception("205", "The key card stopped working.")
	if err != nil {
		t.Fatalf("SubmitReception failed: %v", err)
	}
	if msg.Room != "205" || msg.Topic == nil || msg.Topic.EN != "General question" {
		t.Errorf("message = %+v, want room 205 with topic", msg)
	}
	if s.Snapshot().State != models.StateIdle {
		t.Error("state after submit should be idle")
	}
	if err := s.CancelReception(); err != ErrNotInMessage {
		t.Errorf("cancel after submit err = %v, want ErrNotInMessage", err)
	}
}

func TestReceptionCancel(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("I need the reception")
	if err := s.SelectOption(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if err := s.CancelReception(); err != nil {
		t.Fatalf("CancelReception failed: %v", err)
	}
	snap := s.Snapshot()
	if snap.State != models.StateIdle || snap.MessageTopic != nil {
		t.Errorf("state after cancel = %q (%+v), want idle", snap.State, snap.MessageTopic)
	}
	if last := lastMessage(t, s); last.Tone != models.ToneBot {
		t.Errorf("cancel acknowledgment missing, last = %+v", last)
	}
}

func TestFreeTextSupersedesSubDialogue(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("what time is checkout")
	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if snap := s.Snapshot(); snap.State != models.StateInService {
		t.Fatalf("setup failed, state = %q", snap.State)
	}

	s.Submit("wifi password please")
	snap := s.Snapshot()
	if snap.State != models.StateInFlow || snap.Flow.IntentID != "wifi" {
		t.Errorf("free text must supersede the sub-dialogue, got %q %+v", snap.State, snap.Flow)
	}
	if snap.Service != nil {
		t.Errorf("service state leaked: %+v", snap.Service)
	}
}

func TestBackIsNoopAtEntry(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("wifi password please")

	before := s.Snapshot()
	if err := s.Back(); err != nil {
		t.Fatalf("Back at entry step failed: %v", err)
	}
	after := s.Snapshot()
	if len(after.Log) != len(before.Log) {
		t.Error("Back at entry step must not emit messages")
	}
	if after.Flow.StepIndex != 0 {
		t.Errorf("step index changed to %d", after.Flow.StepIndex)
	}
}

func TestBackRewindsOneStep(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("wifi password please")
	if err := s.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.Flow.StepIndex != 0 {
		t.Errorf("step after back = %d, want 0", snap.Flow.StepIndex)
	}
	log := snap.Log
	if len(log) < 2 || log[len(log)-2].Type != models.MessageSystem {
		t.Error("back note missing before re-rendered step")
	}
}

func TestResetRestoresWelcome(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("wifi password please")
	s.Reset()

	snap := s.Snapshot()
	if snap.State != models.StateIdle || snap.Flow != nil || snap.LastIntentID != "" {
		t.Errorf("reset left state %q %+v", snap.State, snap.Flow)
	}
	if len(snap.Log) != 2 {
		t.Errorf("reset log has %d entries, want fresh welcome", len(snap.Log))
	}
}

func TestLocaleChangeResets(t *testing.T) {
	s := newTestManager(t).CreateSession(models.LocaleEN)
	s.Submit("wifi password please")
	s.SetLocale(models.LocaleDE)

	snap := s.Snapshot()
	if snap.Locale != models.LocaleDE {
		t.Errorf("locale = %q, want DE", snap.Locale)
	}
	if snap.State != models.StateIdle || len(snap.Log) != 2 {
		t.Errorf("locale change must reset, got state %q with %d log entries", snap.State, len(snap.Log))
	}
	if snap.Log[0].Text == "" || snap.Log[0].Text[0] != 'W' {
		t.Errorf("welcome not localized: %q", snap.Log[0].Text)
	}
}

func TestPendingInputsAreSerialized(t *testing.T) {
	m := NewManager(testCatalog(t), 20*time.Millisecond, "205", zap.NewNop())
	s := m.CreateSession(models.LocaleEN)

	s.Submit("wifi password please")
	s.Submit("what time is checkout")

	time.Sleep(300 * time.Millisecond)

	snap := s.Snapshot()
	if snap.State != models.StateInFlow || snap.Flow.IntentID != "checkout" {
		t.Fatalf("final state = %q %+v, want checkout flow", snap.State, snap.Flow)
	}

	// The second user echo must appear after the first classification's
	// bot output.
	firstBot, secondUser := -1, -1
	for i, msg := range snap.Log {
		if firstBot == -1 && msg.Type == models.MessageSystem && msg.Tone != models.ToneNeutral {
			firstBot = i
		}
		if msg.Tone == models.ToneUser && msg.Text == "what time is checkout" {
			secondUser = i
		}
	}
	if firstBot == -1 || secondUser == -1 || secondUser < firstBot {
		t.Errorf("queued input was not serialized: first reply at %d, second echo at %d", firstBot, secondUser)
	}
}

func TestSubmitWhilePendingIsRefused(t *testing.T) {
	m := NewManager(testCatalog(t), 50*time.Millisecond, "205", zap.NewNop())
	s := m.CreateSession(models.LocaleEN)

	s.Submit("wifi password please")
	if _, err := s.SubmitService(models.ServiceBookingPayload{}); err != ErrReplyPending {
		t.Errorf("SubmitService while pending err = %v, want ErrReplyPending", err)
	}
	if _, err := s.SubmitReception("205", "hi"); err != ErrReplyPending {
		t.Errorf("SubmitReception while pending err = %v, want ErrReplyPending", err)
	}
}

func TestResetCancelsPendingReply(t *testing.T) {
	m := NewManager(testCatalog(t), 30*time.Millisecond, "205", zap.NewNop())
	s := m.CreateSession(models.LocaleEN)

	s.Submit("wifi password please")
	s.Reset()
	time.Sleep(100 * time.Millisecond)

	snap := s.Snapshot()
	if snap.State != models.StateIdle || len(snap.Log) != 2 {
		t.Errorf("cancelled reply leaked into log: state %q, %d entries", snap.State, len(snap.Log))
	}
}

func TestManagerRegistry(t *testing.T) {
	m := newTestManager(t)
	s := m.CreateSession(models.LocaleDE)

	got, err := m.Session(s.ID())
	if err != nil || got != s {
		t.Fatalf("Session(%q) = %v, %v", s.ID(), got, err)
	}
	if _, err := m.Session("missing"); err != ErrNoSuchSession {
		t.Errorf("unknown session err = %v, want ErrNoSuchSession", err)
	}
	m.DropSession(s.ID())
	if _, err := m.Session(s.ID()); err != ErrNoSuchSession {
		t.Error("dropped session still resolvable")
	}
}
