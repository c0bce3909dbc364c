package paperforge

// GenerateRequest carries the template data and rendering options for a
// single Generate call. Both fields are optional and pass through to the
// server unmodified.
type GenerateRequest struct {
	// Data holds the values substituted into the template.
	Data map[string]any `json:"data,omitempty"`

	// Options controls rendering behavior.
	Options *GenerateOptions `json:"options,omitempty"`
}

// GenerateOptions holds per-request rendering options.
type GenerateOptions struct {
	// Filename suggests a name for the generated document.
	Filename string `json:"filename,omitempty"`
}

// GenerateResult is the outcome of a successful Generate call.
type GenerateResult struct {
	// Document is the raw generated document, byte-exact as received.
	Document []byte

	// Filename is taken from the Content-Disposition response header,
	// percent-decoded, or "document.pdf" when the header is absent.
	Filename string

	// GenerationTimeMs is the server-reported generation time from the
	// X-Generation-Time-Ms header, or 0 when missing or unparsable.
	GenerationTimeMs int64

	// ContentLength is the Content-Length header value, falling back to
	// the actual document byte length when missing, unparsable or zero.
	ContentLength int64
}

// apiErrorBody is the wire shape of a failure response.
type apiErrorBody struct {
	ErrorCode string `json:"error"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
}
