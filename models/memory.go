package models

// MemoryType classifies a memory item.
type MemoryType string

const (
	MemoryEvento   MemoryType = "Evento"
	MemoryRecuerdo MemoryType = "Recuerdo"
	MemoryNinguno  MemoryType = "Ninguno"
)

// Valid reports whether t is one of the known memory types.
func (t MemoryType) Valid() bool {
	switch t {
	case MemoryEvento, MemoryRecuerdo, MemoryNinguno:
		return true
	default:
		return false
	}
}

// MemoryItem is a structured memory extracted from an utterance. ID,
// TextoOriginal and TimestampGuardado are populated by the server.
type MemoryItem struct {
	ID                   int64      `json:"id,omitempty"`
	Tipo                 MemoryType `json:"tipo"`
	Descripcion          string     `json:"descripcion"`
	Fecha                *string    `json:"fecha,omitempty"`
	Hora                 *string    `json:"hora,omitempty"`
	Clasificacion        *string    `json:"clasificacion,omitempty"`
	ResponsableRequerido *string    `json:"responsable_requerido,omitempty"`
	Lugar                *string    `json:"lugar,omitempty"`
	Personas             []string   `json:"personas,omitempty"`
	TextoOriginal        string     `json:"texto_original,omitempty"`
	TimestampGuardado    string     `json:"timestamp_guardado,omitempty"`
}

// SaveMemoryRequest is the body of a save memory call.
type SaveMemoryRequest struct {
	TextoOriginal string       `json:"texto_original"`
	Items         []MemoryItem `json:"items"`
}

// SaveMemoryResponse acknowledges a save memory call.
type SaveMemoryResponse struct {
	Success bool    `json:"success"`
	IDs     []int64 `json:"ids"`
	Count   int     `json:"count"`
}

// DefaultMemoryLimit is the page size used when a load asks for none.
const DefaultMemoryLimit = 30

// LoadMemoryRequest filters a load memory call. A zero Limit means
// [DefaultMemoryLimit]; an empty Tipo means all types.
type LoadMemoryRequest struct {
	Limit int
	Tipo  MemoryType
}
