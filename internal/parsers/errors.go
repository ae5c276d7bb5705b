package parsers

import (
	"fmt"

	"hotpath-analytics/internal/shared/svcerrors"
)

const (
	codeLineNotCombinedFormat = "PRS_1000"
	codeBadTimestamp          = "PRS_1001"
	codeBadRequestLine        = "PRS_1002"
)

// errLineNotCombinedFormat returns an error when a line does not match the combined log format.
func errLineNotCombinedFormat() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLineNotCombinedFormat, "line does not match combined log format", nil)
}

// errBadTimestamp returns an error when the bracketed timestamp cannot be parsed.
func errBadTimestamp(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBadTimestamp, fmt.Sprintf("unparseable timestamp: %v", cause), cause)
}

// errBadRequestLine returns an error when the quoted request line has no URL path.
func errBadRequestLine(requestLine string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBadRequestLine, fmt.Sprintf("request line has no path: %q", requestLine), nil)
}
