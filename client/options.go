package client

import "time"

// requestOptions are per-call overrides of the client defaults.
type requestOptions struct {
	timeout     time.Duration
	maxAttempts int
	query       map[string]string
	multipart   *MultipartBody
}

// RequestOption tweaks a single Do call.
type RequestOption func(*requestOptions)

// WithTimeout overrides the per-attempt timeout for this call.
func WithTimeout(d time.Duration) RequestOption {
	return func(ro *requestOptions) {
		if d > 0 {
			ro.timeout = d
		}
	}
}

// WithMaxAttempts overrides the retry budget for this call. Use 1 to opt a
// non-idempotent operation out of retries entirely.
func WithMaxAttempts(n int) RequestOption {
	return func(ro *requestOptions) {
		if n > 0 {
			ro.maxAttempts = n
		}
	}
}

// WithQuery attaches query parameters to the call.
func WithQuery(params map[string]string) RequestOption {
	return func(ro *requestOptions) {
		ro.query = params
	}
}

// WithMultipart declares the call multipart/form-data instead of JSON. The
// body argument of Do is ignored for multipart calls.
func WithMultipart(mb *MultipartBody) RequestOption {
	return func(ro *requestOptions) {
		ro.multipart = mb
	}
}

// MultipartBody describes a multipart/form-data request: plain fields plus
// file parts with per-part content types.
type MultipartBody struct {
	Fields map[string]string
	Files  []MultipartFile
}

// MultipartFile is one file part of a multipart body.
type MultipartFile struct {
	FieldName   string
	Filename    string
	ContentType string
	Data        []byte
}
