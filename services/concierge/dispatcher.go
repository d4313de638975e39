package concierge

import (
	"go.uber.org/zap"

	"miohost/models"
)

// dispatch applies a selected option's transition. The action kinds are
// matched exhaustively; an option with neither next nor action is a
// terminal, informational choice and changes nothing.
//
// An out-of-range next index is a runtime no-op. Catalog validation
// rejects such content at load, so this branch only guards hand-built
// test fixtures and future content drift.
func (s *Session) dispatch(opt models.Option) {
	if opt.Action == nil {
		if opt.Next == nil {
			return
		}
		if s.flow == nil {
			return
		}
		if _, ok := s.engine.Step(s.flow.IntentID, *opt.Next); !ok {
			s.logger.Warn("next index out of range",
				zap.String("session", s.id),
				zap.String("intent", s.flow.IntentID),
				zap.Int("next", *opt.Next))
			return
		}
		s.enterFlow(s.flow.IntentID, *opt.Next)
		return
	}

	switch opt.Action.Kind {
	case models.ActionEnd:
		s.clearStructured()
	case models.ActionJump:
		s.lastIntentID = opt.Action.IntentID
		s.enterFlow(opt.Action.IntentID, 0)
	case models.ActionService:
		s.clearStructured()
		s.state = models.StateInService
		s.serviceID = opt.Action.ServiceID
		s.pushBot(s.catalog.UI.ServicePrompt.Get(s.locale))
	case models.ActionMessage:
		s.clearStructured()
		s.state = models.StateInMessage
		s.messageTopic = opt.Action.Topic
		if opt.Action.Preset != nil {
			s.messagePreset = opt.Action.Preset.Get(s.locale)
		}
		s.pushBot(s.catalog.UI.MessagePrompt.Get(s.locale))
	default:
		s.logger.Warn("unknown action kind",
			zap.String("session", s.id),
			zap.String("kind", string(opt.Action.Kind)))
	}
}
