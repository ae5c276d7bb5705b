package sources

import (
	"fmt"

	"hotpath-analytics/internal/shared/svcerrors"
)

// FileSource errors
const (
	codeInternalFileOpenFailed = "SRC_9000"
	codeInternalWatchFailed    = "SRC_9001"
	codeInternalReadFailed     = "SRC_9002"
)

// errInternalFileOpenFailed returns an error when the log file cannot be opened.
func errInternalFileOpenFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFileOpenFailed, fmt.Errorf("failed to open log file %s: %w", path, cause))
}

// errInternalWatchFailed returns an error when the filesystem watch cannot be established.
func errInternalWatchFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalWatchFailed, fmt.Errorf("failed to watch log file %s: %w", path, cause))
}

// errInternalReadFailed returns an error when reading the log file fails.
func errInternalReadFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFailed, fmt.Errorf("failed to read log file %s: %w", path, cause))
}
