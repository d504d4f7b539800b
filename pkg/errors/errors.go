// SPDX-License-Identifier: Apache-2.0
// Package errors provides typed error handling for Ergon.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies Ergon errors for monitoring and handling policy.
type ErrorCode string

const (
	// CodeInternal indicates an internal system error.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeInvalidInput indicates the input was invalid.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeToolFailure indicates a tool execution failed.
	CodeToolFailure ErrorCode = "TOOL_FAILURE"

	// CodeNotFound indicates a resource (agent, tool) was not found.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAuditFailure indicates the action log could not be written.
	// Errors with this code are logged and discarded by the audit wrapper;
	// they never reach a tool caller.
	CodeAuditFailure ErrorCode = "AUDIT_FAILURE"

	// CodeIntegrationUnavailable indicates an external host framework
	// could not be loaded or constructed. This is the one error class the
	// bridge is required to surface loudly.
	CodeIntegrationUnavailable ErrorCode = "INTEGRATION_UNAVAILABLE"
)

// Error is a typed error with a code and optional structured context.
// It implements the error interface and supports errors.As / errors.Is
// chain traversal.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// MarshalJSON implements json.Marshaler for structured logging.
func (e *Error) MarshalJSON() ([]byte, error) {
	payload := map[string]any{
		"code":    string(e.Code),
		"message": e.Message,
	}
	if e.Err != nil {
		payload["cause"] = e.Err.Error()
	}
	if len(e.Context) > 0 {
		payload["context"] = e.Context
	}
	return json.Marshal(payload)
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new Error wrapping a cause.
func Wrap(code ErrorCode, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, Err: cause}
}

// WithContext adds a key-value pair to the error context.
// Returns the error for method chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode from an error chain, or CodeInternal if the
// chain contains no *Error.
func CodeOf(err error) ErrorCode {
	var typed *Error
	if stderrors.As(err, &typed) {
		return typed.Code
	}
	return CodeInternal
}

// IsCode reports whether the error chain contains an *Error with the code.
func IsCode(err error, code ErrorCode) bool {
	var typed *Error
	if stderrors.As(err, &typed) {
		return typed.Code == code
	}
	return false
}
