package sdk

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomySharesBaseSurface(t *testing.T) {
	kinds := []error{
		&ValidationError{Fields: []string{"provider key not defined"}},
		&ConnectionError{URL: "https://su1.gatewise.net", Err: errors.New("refused")},
		&ServerError{Status: 500, Body: "boom"},
		&ProtocolError{Err: errors.New("unexpected EOF")},
	}
	for _, err := range kinds {
		if !IsClientError(err) {
			t.Fatalf("%T must satisfy the base client error", err)
		}
		if !IsClientError(fmt.Errorf("wrapped: %w", err)) {
			t.Fatalf("wrapped %T must still match the base client error", err)
		}
	}
	if IsClientError(errors.New("plain")) {
		t.Fatal("foreign errors must not match")
	}
}

func TestErrorKindHelpersAreDisjoint(t *testing.T) {
	err := &ServerError{Status: 503}
	if !IsServerError(err) || IsValidationError(err) || IsConnectionError(err) || IsProtocolError(err) {
		t.Fatalf("kind helpers misclassified %v", err)
	}
}

func TestServerErrorBodySnippetTruncated(t *testing.T) {
	long := make([]byte, 4096)
	for i := range long {
		long[i] = 'x'
	}
	se := newServerError(500, long)
	if len(se.Body) != serverErrorBodyLimit {
		t.Fatalf("snippet length = %d", len(se.Body))
	}
}
