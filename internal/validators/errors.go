package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMemoryType  = errors.New("invalid memory type")
	ErrEmptyDescription   = errors.New("descripcion is required")
	ErrEmptyMemoryItems   = errors.New("memory items list cannot be empty")
	ErrEmptyTextoOriginal = errors.New("texto_original is required")
	ErrInvalidLimit       = errors.New("limit cannot be negative")
)
