package errors

import "fmt"

// Error codes surfaced by the processing pipeline.
const (
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeMalformedPlan        = "malformed_clip_plan"
	CodeRangeExceedsSource   = "range_exceeds_source"
	CodeEngineFailure        = "engine_failure"
	CodeOutputMissing        = "output_missing"
	CodeArchiveCreation      = "archive_creation_failed"
	CodeConversionFailed     = "conversion_failed"
	CodeClipExtraction       = "clip_extraction_failed"
	CodeInternal             = "internal_error"
)

type ProcessError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

var (
	ErrUnsupportedMediaType = func() *ProcessError {
		return &ProcessError{Code: CodeUnsupportedMediaType, Message: "Invalid file type. Please upload a video file."}
	}
	ErrMalformedPlan = func(message string) *ProcessError {
		return &ProcessError{Code: CodeMalformedPlan, Message: message}
	}
	ErrRangeExceedsSource = func(index int, end, duration float64) *ProcessError {
		return &ProcessError{
			Code:    CodeRangeExceedsSource,
			Message: fmt.Sprintf("Clip %d end time (%gs) exceeds video duration (%.2fs)", index, end, duration),
		}
	}
	ErrEngineFailure = func(err error) *ProcessError {
		return &ProcessError{Code: CodeEngineFailure, Message: "Media engine invocation failed", Err: err}
	}
	ErrOutputMissing = func(what string) *ProcessError {
		return &ProcessError{Code: CodeOutputMissing, Message: fmt.Sprintf("%s was not created successfully", what)}
	}
	ErrArchiveCreation = func(err error) *ProcessError {
		return &ProcessError{Code: CodeArchiveCreation, Message: "Failed to create clips zip file", Err: err}
	}
	ErrConversionFailed = func(err error) *ProcessError {
		return &ProcessError{Code: CodeConversionFailed, Message: fmt.Sprintf("Error converting video: %v", err), Err: err}
	}
	ErrClipExtraction = func(index int, err error) *ProcessError {
		return &ProcessError{Code: CodeClipExtraction, Message: fmt.Sprintf("Failed to create clip %d: %v", index, err), Err: err}
	}
	ErrInternal = func(err error) *ProcessError {
		return &ProcessError{Code: CodeInternal, Message: "Internal server error", Err: err}
	}
)
