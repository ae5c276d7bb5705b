package sinks

import (
	"fmt"

	"hotpath-analytics/internal/shared/svcerrors"
)

const (
	codeInternalConsoleWriteFailed  = "SNK_9000"
	codeInternalArchiveReportFailed = "SNK_9001"
)

// errInternalConsoleWriteFailed returns an error when writing a rendered report to the console writer fails.
func errInternalConsoleWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalConsoleWriteFailed, fmt.Errorf("consoleWriteFailed: %w", cause))
}

// errInternalArchiveReportFailed returns an error when persisting a report through the report store fails.
func errInternalArchiveReportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalArchiveReportFailed, fmt.Errorf("archiveReportFailed: %w", cause))
}
