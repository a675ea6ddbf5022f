package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, list, card or label IDs and slugs that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable dates or other input that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong titles, bad colors or priorities, and
	// positions outside the container.
	ExitValidation = 5

	// ExitConflict indicates the request is valid but not allowed in the
	// current state.
	// Use for: Archived boards, boards owned by someone else, full lists,
	// cross-board moves and duplicate label names.
	ExitConflict = 6

	// ExitBusy indicates the operation lost a race and may succeed if retried.
	// Use for: Lock timeouts and snapshots that stayed stale after retrying.
	ExitBusy = 7
)
