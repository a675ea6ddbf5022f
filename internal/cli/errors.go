package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/reorder"
	"github.com/thenoetrevino/boardly/internal/services"
	boardservice "github.com/thenoetrevino/boardly/internal/services/board"
	cardservice "github.com/thenoetrevino/boardly/internal/services/card"
	labelservice "github.com/thenoetrevino/boardly/internal/services/label"
	listservice "github.com/thenoetrevino/boardly/internal/services/list"
)

// ExitError carries the process exit code and the machine-readable error
// code a failed command reported.
type ExitError struct {
	Exit int
	Code string
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Usagef returns a usage error for invalid flag combinations.
func Usagef(format string, args ...any) error {
	return &ExitError{Exit: ExitUsage, Code: "USAGE_ERROR", Err: fmt.Errorf(format, args...)}
}

// Classify maps err to an error code for JSON output and an exit code.
func Classify(err error) (string, int) {
	var exitErr *ExitError
	var policyErr *reorder.PolicyError

	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code, exitErr.Exit
	case errors.Is(err, database.ErrNotFound):
		return "NOT_FOUND", ExitNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, position.ErrPositionOutOfRange):
		return "VALIDATION_ERROR", ExitValidation
	case errors.As(err, &policyErr):
		return "MOVE_REJECTED", ExitConflict
	case errors.Is(err, services.ErrAccessDenied):
		return "ACCESS_DENIED", ExitConflict
	case errors.Is(err, services.ErrBoardArchived):
		return "BOARD_ARCHIVED", ExitConflict
	case errors.Is(err, listservice.ErrListLimitReached),
		errors.Is(err, cardservice.ErrListFull),
		errors.Is(err, cardservice.ErrCrossBoardMove),
		errors.Is(err, cardservice.ErrLabelNotOnBoard),
		errors.Is(err, labelservice.ErrDuplicateName),
		errors.Is(err, boardservice.ErrAlreadyMember),
		errors.Is(err, boardservice.ErrOwnerMember):
		return "CONFLICT", ExitConflict
	case errors.Is(err, locker.ErrNotAcquired),
		errors.Is(err, database.ErrStaleSnapshot):
		return "BUSY", ExitBusy
	default:
		return "ERROR", ExitFailure
	}
}

// Fail reports err through f and returns it tagged with its exit code.
func Fail(f *OutputFormatter, err error) error {
	code, exit := Classify(err)
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		return errors.Join(err, fmtErr)
	}
	return &ExitError{Exit: exit, Code: code, Err: err}
}

// ExitCode returns the process exit code for an error returned by a command.
// Errors cobra produced itself, such as unknown flags, are usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Exit
	}
	return ExitUsage
}
