package http

import (
	"fmt"

	"hotpath-analytics/internal/shared/svcerrors"
)

// Report endpoint errors
const (
	codeInvalidWindowEnd = "RPT_1000"
	codeReportNotFound   = "RPT_1001"

	codeInternalReportStoreFailed = "RPT_9000"
)

// errInvalidWindowEnd returns an error when the windowEnd path parameter is not unix seconds.
func errInvalidWindowEnd(param string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidWindowEnd, fmt.Sprintf("invalid windowEnd %q: must be unix seconds", param), cause)
}

// errReportNotFound returns an error when no report exists for the requested window.
func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found", cause)
}

// errInternalReportStoreFailed returns an error when a report store read fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
