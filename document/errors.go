package document

import (
	"fmt"

	"github.com/draftkit/draftkit/model"
)

// EntityNotFoundError reports an unknown or tombstoned entity handle.
type EntityNotFoundError struct {
	ID string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %q not found", e.ID)
}

// LayerNotFoundError reports an unknown layer name.
type LayerNotFoundError struct {
	Name string
}

func (e *LayerNotFoundError) Error() string {
	return fmt.Sprintf("layer %q not found", e.Name)
}

// WrongEntityKindError reports an operation applied to an incompatible
// entity kind, such as a text edit on a line.
type WrongEntityKindError struct {
	ID   string
	Kind model.Kind
}

func (e *WrongEntityKindError) Error() string {
	return fmt.Sprintf("entity %q is %s, not TEXT or MTEXT", e.ID, e.Kind)
}
