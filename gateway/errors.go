package gateway

import (
	"fmt"
	"strconv"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// TimeoutError is returned when the gateway does not respond within the
// configured timeout window.
type TimeoutError struct {
	// Seconds is the configured timeout, expressed in seconds.
	Seconds float64
}

func (e *TimeoutError) Error() string {
	return "request timed out without response from server after " + strconv.FormatFloat(e.Seconds, 'f', -1, 64) + " seconds"
}

func (e *TimeoutError) OperationOutcome() fhir.OperationOutcome {
	return operationOutcome(fhir.IssueTypeTimeout, e.Error())
}

// TransportError is returned when the HTTP transaction fails without any
// response from the gateway.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transaction failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func (e *TransportError) OperationOutcome() fhir.OperationOutcome {
	return operationOutcome(fhir.IssueTypeTransient, e.Error())
}

// StatusError is returned when the gateway responds with a status code
// outside the 2xx range.
type StatusError struct {
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status: %d. %s", e.StatusCode, e.Reason)
}

func (e *StatusError) OperationOutcome() fhir.OperationOutcome {
	return operationOutcome(fhir.IssueTypeProcessing, e.Error())
}

// InvalidResponseError is returned when the gateway responds with a resource
// of a different type than the transaction expects.
type InvalidResponseError struct {
	Message string
}

func (e *InvalidResponseError) Error() string {
	return e.Message
}

func (e *InvalidResponseError) OperationOutcome() fhir.OperationOutcome {
	return operationOutcome(fhir.IssueTypeStructure, e.Message)
}

// InvalidArgumentError is returned when a caller-supplied argument cannot be
// used for the transaction, e.g. a DocumentReference without a resolvable
// attachment URL or an identity feed without a merge target.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Message
}

func (e *InvalidArgumentError) OperationOutcome() fhir.OperationOutcome {
	return operationOutcome(fhir.IssueTypeInvalid, e.Error())
}

// NotFoundError is returned when a query yields no usable result, e.g. a
// cross-reference query for an unknown source identifier.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) OperationOutcome() fhir.OperationOutcome {
	return operationOutcome(fhir.IssueTypeNotFound, e.Message)
}

func operationOutcome(issueType fhir.IssueType, diagnostics string) fhir.OperationOutcome {
	return fhir.OperationOutcome{
		Issue: []fhir.OperationOutcomeIssue{
			{
				Severity:    fhir.IssueSeverityError,
				Code:        issueType,
				Diagnostics: &diagnostics,
			},
		},
	}
}
