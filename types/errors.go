package types

import "fmt"

// Error codes attached to APIError values. HTTP_ERROR marks a non-2xx
// response whose body carried no provider code; REQUEST_ERROR marks a
// transport failure where no response was received at all.
const (
	CodeHTTPError    = "HTTP_ERROR"
	CodeRequestError = "REQUEST_ERROR"
)

// APIError is the uniform failure shape of the request layer. StatusCode 0
// is the transport sentinel: the request never produced an HTTP response.
type APIError struct {
	Message    string
	StatusCode int
	Code       string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 && e.Code != "" {
		return fmt.Sprintf("blaaiz: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("blaaiz: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("blaaiz: %s", e.Message)
}

// IsTransport reports whether the error happened before any response was
// received.
func (e *APIError) IsTransport() bool {
	return e.StatusCode == 0
}

// UploadStep identifies which stage of the upload pipeline failed.
type UploadStep string

const (
	UploadStepPresign   UploadStep = "presign"
	UploadStepTransfer  UploadStep = "transfer"
	UploadStepAssociate UploadStep = "associate"
)

// UploadError tags a failure with the pipeline step it happened in. A failed
// step aborts the remaining ones; nothing already presigned or transferred
// is cleaned up.
type UploadError struct {
	Step UploadStep
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("blaaiz: file upload failed at %s: %v", e.Step, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// WorkflowStep names one state transition of an orchestrated workflow.
type WorkflowStep string

const (
	StepCustomerCreation     WorkflowStep = "customer-creation"
	StepFeeCalculation       WorkflowStep = "fee-calculation"
	StepPayoutInitiation     WorkflowStep = "payout-initiation"
	StepCollectionInitiation WorkflowStep = "collection-initiation"
	StepVBACreation          WorkflowStep = "vba-creation"
)

// WorkflowError reports which step of a workflow failed together with the
// results already obtained. Earlier steps are not compensated; the caller
// decides what to do with e.g. an orphaned customer record.
type WorkflowError struct {
	Step    WorkflowStep
	Partial interface{}
	Err     error
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("blaaiz: workflow failed at %s: %v", e.Step, e.Err)
}

func (e *WorkflowError) Unwrap() error { return e.Err }

// ValidationError reports a payload that failed boundary validation before
// any request was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("blaaiz: %s", e.Message)
}

// NewValidationError formats a ValidationError.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
