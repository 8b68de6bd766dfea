package models

import (
	"encoding/json"
	"time"
)

// Push event names emitted by the server.
const (
	EventAgentResponse  = "agent_response"
	EventNewActivity    = "new_activity"
	EventAudioMessage   = "audio_message"
	EventNewMedication  = "new_medication"
	EventNewAppointment = "new_appointment"
	EventPTTActive      = "ptt_active"
	EventPTTInactive    = "ptt_inactive"
)

// PushEvent is a single server-initiated message. It is transient and never
// persisted.
type PushEvent struct {
	Name       string
	Payload    json.RawMessage
	ReceivedAt time.Time
}

// Decode unmarshals the event payload into v.
func (e PushEvent) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// AgentResponseType values carried in [AgentResponse.Type].
const (
	AgentResponseReminder = "reminder"
)

// AgentResponse is the payload of agent_response: a synthesized answer to an
// earlier upload, or a scheduled reminder.
type AgentResponse struct {
	Text       string `json:"text"`
	AudioURL   string `json:"audioUrl"`
	Timestamp  string `json:"timestamp"`
	Type       string `json:"type,omitempty"`
	ActivityID int64  `json:"activityId,omitempty"`
}

// NewActivity is the payload of new_activity.
type NewActivity struct {
	ID     int64  `json:"id,omitempty"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Type   string `json:"type,omitempty"`
	Source string `json:"source,omitempty"`
}

// AudioMessage is the payload of audio_message (walkie-talkie traffic).
type AudioMessage struct {
	ID        int64  `json:"id,omitempty"`
	From      string `json:"from"`
	FileURL   string `json:"fileUrl"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewMedication is the payload of new_medication.
type NewMedication struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// NewAppointment is the payload of new_appointment.
type NewAppointment struct {
	ID     int64  `json:"id,omitempty"`
	Doctor string `json:"doctor"`
	Type   string `json:"type,omitempty"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status,omitempty"`
}
