package errors

import (
	"fmt"
)

// DatasetInvalid creates a malformed dataset error
func DatasetInvalid(reason string) *NavError {
	return New(ErrCodeDatasetInvalid, fmt.Sprintf("invalid dataset: %s", reason))
}

// DatasetEmpty creates an empty dataset error
func DatasetEmpty() *NavError {
	return New(ErrCodeDatasetEmpty, "dataset has no groups")
}

// GroupEmpty creates an empty group error
func GroupEmpty(groupIndex int) *NavError {
	return New(ErrCodeDatasetEmpty, fmt.Sprintf("group %d is empty", groupIndex)).
		WithDetail("group", groupIndex)
}

// DatasetNotFound creates a dataset file not found error
func DatasetNotFound(path string) *NavError {
	return New(ErrCodeDatasetNotFound, fmt.Sprintf("dataset file not found: %s", path)).
		WithDetail("path", path)
}

// IndexOutOfRange creates a cursor out of range error
func IndexOutOfRange(groupIndex, groupCount int) *NavError {
	return New(ErrCodeIndexOutOfRange,
		fmt.Sprintf("group index %d out of range (have %d groups)", groupIndex, groupCount)).
		WithDetail("group", groupIndex).
		WithDetail("groupCount", groupCount)
}

// InvalidIndex creates a bad start-index argument error
func InvalidIndex(groupIndex, groupCount int) *NavError {
	return New(ErrCodeInvalidIndex,
		fmt.Sprintf("invalid group index %d (valid range 0-%d)", groupIndex, groupCount-1)).
		WithDetail("group", groupIndex).
		WithDetail("groupCount", groupCount)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *NavError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *NavError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
