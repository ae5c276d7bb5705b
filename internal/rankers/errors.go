package rankers

import (
	"fmt"

	"hotpath-analytics/internal/shared/svcerrors"
)

const (
	codeInternalReportSinkFailed = "RANK_9000"
)

// errInternalReportSinkFailed returns an error when publishing a report to a sink fails.
func errInternalReportSinkFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportSinkFailed, fmt.Errorf("reportSinkFailed: %w", cause))
}
