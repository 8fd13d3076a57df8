package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeMissingAPIKey Code = "MISSING_API_KEY"
	CodeInvalidHeader Code = "INVALID_HEADER"
	CodeInvalidMethod Code = "INVALID_HTTP_METHOD"
	CodeNetwork       Code = "NETWORK_ERROR"
	CodeDecode        Code = "DECODE_ERROR"
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeInternal      Code = "INTERNAL_ERROR"
)

type Metadata struct {
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeMissingAPIKey: {
		Retryable:      false,
		PublicMessage:  "api key is required but not set",
		DetailsAllowed: false,
	},
	CodeInvalidHeader: {
		Retryable:      false,
		PublicMessage:  "configured header is not a legal http token",
		DetailsAllowed: true,
	},
	CodeInvalidMethod: {
		Retryable:      false,
		PublicMessage:  "http method is not supported",
		DetailsAllowed: true,
	},
	CodeNetwork: {
		Retryable:      true,
		PublicMessage:  "network error occurred",
		DetailsAllowed: true,
	},
	CodeDecode: {
		Retryable:      false,
		PublicMessage:  "response body could not be decoded",
		DetailsAllowed: true,
	},
	CodeValidation: {
		Retryable:      false,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeInternal: {
		Retryable:      false,
		PublicMessage:  "internal error",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.Code() == code
}
