package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeMissingAPIKey, publicMsg: "api key is required but not set"},
		{code: CodeInvalidHeader, publicMsg: "configured header is not a legal http token", detailsOK: true},
		{code: CodeInvalidMethod, publicMsg: "http method is not supported", detailsOK: true},
		{code: CodeNetwork, publicMsg: "network error occurred", retryable: true, detailsOK: true},
		{code: CodeDecode, publicMsg: "response body could not be decoded", detailsOK: true},
		{code: CodeValidation, publicMsg: "validation failed", detailsOK: true},
		{code: CodeInternal, publicMsg: "internal error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "internal error" {
		t.Fatalf("unknown code should fall back to internal, got %q", meta.PublicMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing amount")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing amount" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	detail := map[string]any{"field": "amount"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("connection refused")
	wrapped := Wrap(CodeNetwork, cause, "send request")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeNetwork {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeDecode, "bad body")
	if got := As(err); got == nil || got.Code() != CodeDecode {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatalf("As should reject untyped errors")
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := Wrap(CodeInvalidHeader, stdErrors.New("ctl char"), "build headers")
	if !Is(err, CodeInvalidHeader) {
		t.Fatalf("Is should match the carried code")
	}
	if Is(err, CodeNetwork) {
		t.Fatalf("Is matched the wrong code")
	}
	if Is(nil, CodeNetwork) {
		t.Fatalf("Is(nil) should be false")
	}
}
