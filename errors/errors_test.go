package errors

import (
	"fmt"
	"testing"
)

func TestNavError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeDatasetInvalid, "dataset invalid")
	if err.Code != ErrCodeDatasetInvalid {
		t.Errorf("expected code %s, got %s", ErrCodeDatasetInvalid, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "config broken")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeDatasetInvalid) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("group", 3).WithDetail("item", 1)
	if detailed.Details["group"] != 3 {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := InvalidIndex(9, 5)
	if err.Code != ErrCodeInvalidIndex {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidIndex, err.Code)
	}
	if err.Details["group"] != 9 {
		t.Error("InvalidIndex should include the offending index")
	}

	err = DatasetNotFound("/tmp/queue.yml")
	if err.Code != ErrCodeDatasetNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeDatasetNotFound, err.Code)
	}
	if err.Details["path"] != "/tmp/queue.yml" {
		t.Error("DatasetNotFound should include path detail")
	}

	err = GroupEmpty(2)
	if err.Code != ErrCodeDatasetEmpty {
		t.Errorf("expected code %s, got %s", ErrCodeDatasetEmpty, err.Code)
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
	err := fmt.Errorf("outer: %w", DatasetEmpty())
	if GetCode(err) != ErrCodeDatasetEmpty {
		t.Errorf("GetCode should unwrap, got %s", GetCode(err))
	}
}
