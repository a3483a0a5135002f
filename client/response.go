package client

// Response is the universal result envelope every operation resolves to.
// Operations never return Go errors for protocol failures: exactly one of
// a successful Data or a non-empty Err is meaningful per call, and
// callers must check Err before trusting Data.
type Response[T any] struct {
	// Data is the unwrapped payload of a successful call.
	Data T

	// Audio is set instead of Data when an upload endpoint responded
	// with raw audio bytes rather than JSON. Only TTS-capable upload
	// calls ever populate it.
	Audio *Blob

	// Err is the failure description: the server-reported error string,
	// "Request timeout", the transport error message, or
	// "Unknown error occurred" for unparseable replies.
	Err string

	// Status is the HTTP status code when a response was received.
	Status int

	// Meta carries server pagination/cursor metadata through untouched.
	Meta map[string]any
}

// Failed reports whether the call failed. Data is only meaningful when
// Failed returns false.
func (r Response[T]) Failed() bool { return r.Err != "" }

// Blob is a raw binary payload, typically synthesized speech.
type Blob struct {
	ContentType string
	Data        []byte
}

const (
	errRequestTimeout = "Request timeout"
	errUnknown        = "Unknown error occurred"
)
