package models

// AudioMessageRequest is a walkie-talkie message to broadcast.
type AudioMessageRequest struct {
	AudioBytes []byte
	SourcePath string
	FileName   string
	// From identifies the sender; the server defaults it to "device".
	From string
}

// AudioMessageResult is the stored message echoed back by the server.
type AudioMessageResult struct {
	ID         int64  `json:"id,omitempty"`
	FromSource string `json:"from_source,omitempty"`
	FileURL    string `json:"file_url"`
	Timestamp  string `json:"timestamp,omitempty"`
}
