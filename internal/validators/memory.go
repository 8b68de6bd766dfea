package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTipo targets the memory type of an item or a load filter.
	FieldTipo = "tipo"

	// FieldDescripcion targets the free-text description of an item.
	FieldDescripcion = "descripcion"

	// FieldItems targets the list of items in a save request.
	FieldItems = "items"

	// FieldTextoOriginal targets the utterance a save request was extracted from.
	FieldTextoOriginal = "texto_original"

	// FieldLimit targets the page size of a load request.
	FieldLimit = "limit"
)

// MemoryValidator implements Validator for the memory contract models:
// MemoryItem, SaveMemoryRequest and LoadMemoryRequest.
type MemoryValidator struct{}

func NewMemoryValidator() Validator {
	return &MemoryValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted; anything else yields ErrUnsupportedType.
func (v *MemoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MemoryItem:
		return v.validateMemoryItem(ctx, value, fields...)
	case *models.MemoryItem:
		return v.validateMemoryItem(ctx, *value, fields...)

	case models.SaveMemoryRequest:
		return v.validateSaveRequest(ctx, value, fields...)
	case *models.SaveMemoryRequest:
		return v.validateSaveRequest(ctx, *value, fields...)

	case models.LoadMemoryRequest:
		return v.validateLoadRequest(ctx, value, fields...)
	case *models.LoadMemoryRequest:
		return v.validateLoadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateMemoryItem checks Tipo and Descripcion by default.
func (v *MemoryValidator) validateMemoryItem(ctx context.Context, item models.MemoryItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTipo, FieldDescripcion}
	}

	for _, f := range fields {
		switch f {
		case FieldTipo:
			if !item.Tipo.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidMemoryType, item.Tipo)
			}
		case FieldDescripcion:
			if strings.TrimSpace(item.Descripcion) == "" {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSaveRequest checks Items by default; every item is validated
// with the default item field set. TextoOriginal may be blank, the server
// stores it as-is.
func (v *MemoryValidator) validateSaveRequest(ctx context.Context, request models.SaveMemoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldItems:
			if len(request.Items) == 0 {
				return ErrEmptyMemoryItems
			}
			for i, item := range request.Items {
				if err := v.validateMemoryItem(ctx, item); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldTextoOriginal:
			if strings.TrimSpace(request.TextoOriginal) == "" {
				return ErrEmptyTextoOriginal
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoadRequest checks Limit and Tipo by default. An empty Tipo means
// no filter.
func (v *MemoryValidator) validateLoadRequest(ctx context.Context, request models.LoadMemoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldTipo}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if request.Limit < 0 {
				return ErrInvalidLimit
			}
		case FieldTipo:
			if request.Tipo != "" && !request.Tipo.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidMemoryType, request.Tipo)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
