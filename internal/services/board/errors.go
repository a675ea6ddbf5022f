package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/services"
)

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle         = fmt.Errorf("%w: title cannot be empty", services.ErrInvalidInput)
	ErrTitleTooLong       = fmt.Errorf("%w: title is too long", services.ErrInvalidInput)
	ErrDescriptionTooLong = fmt.Errorf("%w: description is too long", services.ErrInvalidInput)
	ErrInvalidBoardID     = fmt.Errorf("%w: invalid board ID", services.ErrInvalidInput)
	ErrMissingOwner       = fmt.Errorf("%w: owner is required", services.ErrInvalidInput)
	ErrNothingToUpdate    = fmt.Errorf("%w: nothing to update", services.ErrInvalidInput)
	ErrMissingUser        = fmt.Errorf("%w: user is required", services.ErrInvalidInput)
	ErrInvalidRole        = fmt.Errorf("%w: role must be admin, editor or viewer", services.ErrInvalidInput)
	ErrSelfMembership     = fmt.Errorf("%w: you cannot change your own membership", services.ErrInvalidInput)

	// Business logic errors
	ErrAlreadyMember = errors.New("user is already on the board")
	ErrOwnerMember   = errors.New("the board owner cannot be a member")
	ErrAdminOnly     = fmt.Errorf("%w: only the owner may grant, change or remove the admin role", services.ErrAccessDenied)
)
