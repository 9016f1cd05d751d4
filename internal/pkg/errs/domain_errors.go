package errs

// Sentinel errors shared by the usecase and handler layers
var (
	// Submission errors
	ErrDuplicateSubmission = New("duplicate submission")

	// Auth errors
	ErrInvalidPassword = New("invalid password")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrNotificationFailed      = New("notification dispatch failed")
)
