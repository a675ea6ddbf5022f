package label

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/services"
)

// Label-related errors
var (
	// Validation errors
	ErrEmptyName       = fmt.Errorf("%w: name cannot be empty", services.ErrInvalidInput)
	ErrNameTooLong     = fmt.Errorf("%w: name is too long", services.ErrInvalidInput)
	ErrInvalidColor    = fmt.Errorf("%w: invalid color format (must be hex color like #FFFFFF)", services.ErrInvalidInput)
	ErrInvalidLabelID  = fmt.Errorf("%w: invalid label ID", services.ErrInvalidInput)
	ErrInvalidBoardID  = fmt.Errorf("%w: invalid board ID", services.ErrInvalidInput)
	ErrNothingToUpdate = fmt.Errorf("%w: nothing to update", services.ErrInvalidInput)

	// Business logic errors
	ErrDuplicateName = errors.New("a label with this name already exists on the board")
)
