package ingestors

import (
	"fmt"

	"hotpath-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeChunkAlreadyProcessed = "ING_1001"

	codeInternalLineChunkStoreFailed      = "ING_9000"
	codeInternalAccessEventProducerFailed = "ING_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errChunkAlreadyProcessed returns an error when a line chunk has already been processed.
func errChunkAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeChunkAlreadyProcessed, "line chunk already processed", cause)
}

// errInternalLineChunkStoreFailed returns an error when a line chunk store operation fails.
func errInternalLineChunkStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLineChunkStoreFailed, fmt.Errorf("lineChunkStoreFailed: %w", cause))
}

// errInternalAccessEventProducerFailed returns an error when publishing a parsed record fails.
func errInternalAccessEventProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAccessEventProducerFailed, fmt.Errorf("accessEventProducerFailed: %w", cause))
}
