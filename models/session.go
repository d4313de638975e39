package models

import "time"

// SessionState names the dialogue state machine states.
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateInFlow    SessionState = "in_flow"
	StateInService SessionState = "in_service"
	StateInMessage SessionState = "in_message"
)

// FlowPosition locates an active flow step.
type FlowPosition struct {
	IntentID  string `json:"intentId"`
	StepIndex int    `json:"stepIndex"`
}

// ServiceBookingPayload is the service sub-dialogue form. Room defaults
// from the guest profile; date, time, and notes are free-form and
// optional.
type ServiceBookingPayload struct {
	Room  string `json:"room"`
	Date  string `json:"date,omitempty"`
	Time  string `json:"time,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ServiceRequest is a submitted service booking, persisted for the desk.
type ServiceRequest struct {
	ID        string                `json:"id" bson:"id"`
	SessionID string                `json:"sessionId" bson:"sessionId"`
	ServiceID string                `json:"serviceId" bson:"serviceId"`
	Price     LocalizedText         `json:"price" bson:"price"`
	Payload   ServiceBookingPayload `json:"payload" bson:"payload"`
	CreatedAt time.Time             `json:"createdAt" bson:"createdAt"`
}

// ReceptionMessage is a submitted message to the front desk.
type ReceptionMessage struct {
	ID        string         `json:"id" bson:"id"`
	SessionID string         `json:"sessionId" bson:"sessionId"`
	Room      string         `json:"room" bson:"room"`
	Message   string         `json:"message" bson:"message"`
	Topic     *LocalizedText `json:"topic,omitempty" bson:"topic,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// Preferences are the two persisted guest settings.
type Preferences struct {
	Locale    Locale `json:"locale"`
	Onboarded bool   `json:"onboarded"`
}

// SessionSnapshot is the render collaborator's view of a session.
type SessionSnapshot struct {
	ID            string         `json:"id"`
	Locale        Locale         `json:"locale"`
	State         SessionState   `json:"state"`
	Flow          *FlowPosition  `json:"flow,omitempty"`
	ActiveStep    *Step          `json:"activeStep,omitempty"`
	Service       *Service       `json:"service,omitempty"`
	MessageTopic  *LocalizedText `json:"messageTopic,omitempty"`
	MessagePreset string         `json:"messagePreset,omitempty"`
	LastIntentID  string         `json:"lastIntentId,omitempty"`
	Chips         []Chip         `json:"chips"`
	Log           []ChatMessage  `json:"log"`
}
