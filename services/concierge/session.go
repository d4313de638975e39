package concierge

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"miohost/catalog"
	"miohost/models"
)

// Session is the per-guest dialogue state machine. All exported methods
// lock; the catalog, matcher, and engine collaborators are read-only.
//
// Bot replies are emitted after a fixed artificial delay. Inputs that
// arrive while a reply is pending are queued and processed strictly
// after delivery, in arrival order. A non-positive delay delivers
// replies synchronously.
type Session struct {
	id      string
	catalog *catalog.Catalog
	matcher *Matcher
	engine  *FlowEngine
	logger  *zap.Logger
	delay   time.Duration
	room    string

	mu            sync.Mutex
	locale        models.Locale
	state         models.SessionState
	flow          *models.FlowPosition
	serviceID     string
	messageTopic  *models.LocalizedText
	messagePreset string
	lastIntentID  string
	log           []models.ChatMessage

	pending bool
	timer   *time.Timer
	queue   []func()
}

func newSession(id string, locale models.Locale, c *catalog.Catalog, m *Matcher, e *FlowEngine, delay time.Duration, room string, logger *zap.Logger) *Session {
	s := &Session{
		id:      id,
		catalog: c,
		matcher: m,
		engine:  e,
		logger:  logger,
		delay:   delay,
		room:    room,
	}
	s.resetLocked(locale)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Submit routes free guest text through the intent matcher. Any
// in-progress flow or sub-dialogue is discarded first: a fresh
// classification always supersedes structured state. Empty input is
// ignored.
func (s *Session) Submit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if s.pending {
		s.queue = append(s.queue, func() { s.submitText(text) })
		return
	}
	s.submitText(text)
}

func (s *Session) submitText(text string) {
	s.clearStructured()
	s.pushUser(text)
	s.schedule(func() { s.classify(text) })
}

func (s *Session) classify(text string) {
	result := s.matcher.Match(text)
	ranked := s.matcher.Rank(text)

	if result.Intent == nil || result.Confidence == ConfidenceNone {
		s.pushBot(s.catalog.UI.Clarify.Get(s.locale))
		if len(ranked) > 0 {
			s.pushSuggestions(ranked)
		}
		return
	}

	intent := result.Intent
	s.lastIntentID = intent.ID
	s.pushSystem(
		fmt.Sprintf(s.catalog.UI.IntentTag.Get(s.locale), intent.Label.Get(s.locale), strings.ToUpper(string(result.Confidence))),
		confidenceTone(result.Confidence),
	)
	if result.Confidence == ConfidenceLow && len(ranked) > 1 {
		s.pushSuggestions(ranked)
	}

	if _, ok := s.catalog.Flow(intent.ID); ok {
		s.enterFlow(intent.ID, s.engine.EntryIndexFor(intent.ID, text))
		return
	}
	s.pushBot(intent.Reply.Get(s.locale))
	if intent.ServiceID != "" {
		s.state = models.StateInService
		s.serviceID = intent.ServiceID
	}
}

// StartIntent enters an intent directly, bypassing classification. Used
// by suggestion taps, which already carry a resolved intent id.
func (s *Session) StartIntent(intentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.catalog.Intent(intentID)
	if !ok {
		return ErrNoSuchFlow
	}
	prompt := s.catalog.Prompts[intentID].Get(s.locale)
	if s.pending {
		s.queue = append(s.queue, func() { s.startIntent(in, prompt) })
		return nil
	}
	s.startIntent(in, prompt)
	return nil
}

func (s *Session) startIntent(in *models.Intent, prompt string) {
	s.clearStructured()
	if prompt != "" {
		s.pushUser(prompt)
	}
	s.schedule(func() {
		s.lastIntentID = in.ID
		if _, ok := s.catalog.Flow(in.ID); ok {
			s.enterFlow(in.ID, 0)
			return
		}
		s.pushBot(in.Reply.Get(s.locale))
		if in.ServiceID != "" {
			s.state = models.StateInService
			s.serviceID = in.ServiceID
		}
	})
}

// SelectOption applies the option at index on the active step: the
// guest's echoed utterance is appended, then the option's transition
// runs through the dispatcher.
func (s *Session) SelectOption(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		idx := index
		s.queue = append(s.queue, func() {
			if err := s.selectOption(idx); err != nil {
				s.logger.Warn("queued option dropped", zap.String("session", s.id), zap.Error(err))
			}
		})
		return nil
	}
	return s.selectOption(index)
}

func (s *Session) selectOption(index int) error {
	if s.state != models.StateInFlow || s.flow == nil {
		return ErrNotInFlow
	}
	step, ok := s.engine.Step(s.flow.IntentID, s.flow.StepIndex)
	if !ok {
		return ErrNoSuchFlow
	}
	if index < 0 || index >= len(step.Options) {
		return ErrOptionOutOfRange
	}
	opt := step.Options[index]
	s.pushUser(opt.User.Get(s.locale))
	s.dispatch(opt)
	return nil
}

// Back re-renders the previous step of the active flow. At the entry
// step it is a no-op.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		s.queue = append(s.queue, func() {
			if err := s.back(); err != nil {
				s.logger.Warn("queued back dropped", zap.String("session", s.id), zap.Error(err))
			}
		})
		return nil
	}
	return s.back()
}

func (s *Session) back() error {
	if s.state != models.StateInFlow || s.flow == nil {
		return ErrNotInFlow
	}
	_, prev, ok := s.engine.AdvanceBack(s.flow.IntentID, s.flow.StepIndex)
	if !ok {
		return nil
	}
	s.pushSystem(s.catalog.UI.BackNote.Get(s.locale), models.ToneNeutral)
	s.enterFlow(s.flow.IntentID, prev)
	return nil
}

// SubmitService completes the service booking sub-dialogue. The room
// defaults from the guest profile when the payload leaves it empty;
// date, time, and notes are free-form. The caller persists the returned
// request and renders the confirmation from the session log.
func (s *Session) SubmitService(p models.ServiceBookingPayload) (*models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return nil, ErrReplyPending
	}
	if s.state != models.StateInService || s.serviceID == "" {
		return nil, ErrNotInService
	}
	svc, ok := s.catalog.Service(s.serviceID)
	if !ok {
		return nil, ErrNotInService
	}
	if strings.TrimSpace(p.Room) == "" {
		p.Room = s.room
	}
	req := &models.ServiceRequest{
		ID:        newID(),
		SessionID: s.id,
		ServiceID: svc.ID,
		Price:     svc.Price,
		Payload:   p,
		CreatedAt: time.Now().UTC(),
	}
	s.clearStructured()
	s.schedule(func() { s.pushBot(s.catalog.UI.Booked.Get(s.locale)) })
	return req, nil
}

// SubmitReception completes the reception message sub-dialogue. Room
// and message are both required after trimming.
func (s *Session) SubmitReception(room, message string) (*models.ReceptionMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return nil, ErrReplyPending
	}
	if s.state != models.StateInMessage {
		return nil, ErrNotInMessage
	}
	room = strings.TrimSpace(room)
	message = strings.TrimSpace(message)
	if room == "" || message == "" {
		return nil, ErrEmptyField
	}
	msg := &models.ReceptionMessage{
		ID:        newID(),
		SessionID: s.id,
		Room:      room,
		Message:   message,
		Topic:     s.messageTopic,
		CreatedAt: time.Now().UTC(),
	}
	s.clearStructured()
	s.schedule(func() { s.pushBot(s.catalog.UI.Forwarded.Get(s.locale)) })
	return msg, nil
}

// CancelReception abandons the reception message sub-dialogue.
func (s *Session) CancelReception() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrReplyPending
	}
	if s.state != models.StateInMessage {
		return ErrNotInMessage
	}
	s.clearStructured()
	s.schedule(func() { s.pushBot(s.catalog.UI.MessageCancel.Get(s.locale)) })
	return nil
}

// Reset returns the session to the initial welcome state. A pending
// reply timer is cancelled and queued inputs are dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(s.locale)
}

// SetLocale switches the interface language. Mixed-locale state is not
// supported, so this is equivalent to a reset under the new locale.
func (s *Session) SetLocale(locale models.Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(locale)
}

// Locale returns the session's current locale.
func (s *Session) Locale() models.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// Snapshot returns the render collaborator's view of the session.
func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := models.SessionSnapshot{
		ID:           s.id,
		Locale:       s.locale,
		State:        s.state,
		LastIntentID: s.lastIntentID,
		Chips:        s.catalog.ChipsFor(s.lastIntentID),
		Log:          append([]models.ChatMessage(nil), s.log...),
	}
	if s.flow != nil {
		f := *s.flow
		snap.Flow = &f
		if step, ok := s.engine.Step(f.IntentID, f.StepIndex); ok {
			snap.ActiveStep = step
		}
	}
	if s.state == models.StateInService {
		if svc, ok := s.catalog.Service(s.serviceID); ok {
			snap.Service = svc
		}
	}
	if s.state == models.StateInMessage {
		snap.MessageTopic = s.messageTopic
		snap.MessagePreset = s.messagePreset
	}
	return snap
}

func (s *Session) resetLocked(locale models.Locale) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.queue = nil
	s.locale = locale
	s.clearStructured()
	s.lastIntentID = ""
	s.log = nil
	s.pushBot(s.catalog.UI.Welcome.Get(locale))
	s.pushSystem(s.catalog.UI.TapHint.Get(locale), models.ToneNeutral)
}

func (s *Session) clearStructured() {
	s.state = models.StateIdle
	s.flow = nil
	s.serviceID = ""
	s.messageTopic = nil
	s.messagePreset = ""
}

// enterFlow renders the step at index and records the flow position.
func (s *Session) enterFlow(intentID string, index int) {
	step, ok := s.engine.Step(intentID, index)
	if !ok {
		s.logger.Warn("flow step missing",
			zap.String("session", s.id),
			zap.String("intent", intentID),
			zap.Int("step", index))
		return
	}
	s.state = models.StateInFlow
	s.flow = &models.FlowPosition{IntentID: intentID, StepIndex: index}
	s.pushBot(step.Bot.Get(s.locale))
	if step.Map != nil {
		s.pushMap(step.Map)
	}
}

// schedule runs fn after the artificial reply delay, then drains any
// inputs queued in the meantime. With no delay fn runs inline.
func (s *Session) schedule(fn func()) {
	if s.delay <= 0 {
		fn()
		s.drain()
		return
	}
	s.pending = true
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.pending {
			// Reset raced the timer; the input belongs to a discarded turn.
			return
		}
		s.pending = false
		s.timer = nil
		fn()
		s.drain()
	})
}

func (s *Session) drain() {
	for len(s.queue) > 0 && !s.pending {
		next := s.queue[0]
		s.queue = s.queue[1:]
		next()
	}
}

func (s *Session) push(m models.ChatMessage) {
	m.ID = len(s.log) + 1
	s.log = append(s.log, m)
}

func (s *Session) pushBot(text string) {
	s.push(models.ChatMessage{Type: models.MessageText, Tone: models.ToneBot, Text: text})
}

func (s *Session) pushUser(text string) {
	s.push(models.ChatMessage{Type: models.MessageText, Tone: models.ToneUser, Text: text})
}

func (s *Session) pushSystem(text string, tone models.Tone) {
	s.push(models.ChatMessage{Type: models.MessageSystem, Tone: tone, Text: text})
}

func (s *Session) pushSuggestions(ranked []models.Suggestion) {
	s.push(models.ChatMessage{Type: models.MessageSuggestions, Suggestions: ranked})
}

func (s *Session) pushMap(m *models.MapWidget) {
	s.push(models.ChatMessage{Type: models.MessageMap, Map: m})
}

func confidenceTone(c Confidence) models.Tone {
	switch c {
	case ConfidenceHigh:
		return models.ToneHigh
	case ConfidenceMedium:
		return models.ToneMedium
	case ConfidenceLow:
		return models.ToneLow
	default:
		return models.ToneNeutral
	}
}
