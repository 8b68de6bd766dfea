package models

// UploadRequest is one recorded utterance to be processed by the server.
type UploadRequest struct {
	// AudioBytes is the raw recording; it must be non-empty.
	AudioBytes []byte
	// SourcePath is where the bytes were read from, for diagnostics only.
	SourcePath string
	// FileName is the multipart file name; defaults to "audio.wav".
	FileName string
}

// UploadResult is the synchronous acknowledgment of an upload. It never
// carries the synthesized audio, which arrives later as agent_response.
type UploadResult struct {
	Success             bool   `json:"success"`
	Transcription       string `json:"transcription"`
	ItemsSaved          int    `json:"items_saved"`
	ResponseText        string `json:"response_text"`
	InteractionType     string `json:"interaction_type,omitempty"`
	MedicationConfirmed bool   `json:"medication_confirmed,omitempty"`
	ResponseAudioURL    string `json:"response_audio_url,omitempty"`
	AudioURL            string `json:"audio_url,omitempty"`
}
