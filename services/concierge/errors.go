package concierge

import "errors"

var (
	// ErrNoSuchFlow is returned when an intent id has no registered flow
	// or an entry index falls outside its step sequence.
	ErrNoSuchFlow = errors.New("concierge: no such flow")

	// ErrNoSuchSession is returned for lookups of unknown session ids.
	ErrNoSuchSession = errors.New("concierge: no such session")

	// ErrNotInFlow is returned when a flow operation arrives while the
	// session has no active flow.
	ErrNotInFlow = errors.New("concierge: session has no active flow")

	// ErrNotInService is returned when a booking submission arrives
	// outside the service sub-dialogue.
	ErrNotInService = errors.New("concierge: session has no active service request")

	// ErrNotInMessage is returned when a reception submission or cancel
	// arrives outside the message sub-dialogue.
	ErrNotInMessage = errors.New("concierge: session has no active reception message")

	// ErrOptionOutOfRange is returned when a selected option index does
	// not exist on the active step.
	ErrOptionOutOfRange = errors.New("concierge: option index out of range")

	// ErrEmptyField is returned when a required sub-dialogue field is
	// empty after trimming.
	ErrEmptyField = errors.New("concierge: required field is empty")

	// ErrReplyPending is returned for form submissions that arrive while
	// a bot reply is still scheduled. Free text and option taps are
	// queued instead.
	ErrReplyPending = errors.New("concierge: reply pending, try again")
)
