package domain

// ResponseKey is the single key of ExtractedData. Its value is the raw text
// returned by the model, passed through without parsing.
const ResponseKey = "response"

// ExtractedData is the field-extraction output keyed by ResponseKey.
type ExtractedData map[string]string

// NewExtractedData wraps raw model output.
func NewExtractedData(raw string) ExtractedData {
	return ExtractedData{ResponseKey: raw}
}

// Response returns the raw model text.
func (d ExtractedData) Response() string {
	return d[ResponseKey]
}

// DefaultFields are requested when the caller does not name any.
var DefaultFields = []string{"name", "email", "skills", "experience", "education"}

// ParseResult is the payload returned for a successfully parsed document.
type ParseResult struct {
	Content       string        `json:"content"`
	ExtractedData ExtractedData `json:"extracted_data"`
	Status        ParseStatus   `json:"status"`
	Message       string        `json:"message,omitempty"`
}

// ParseSuccessMessage is the confirmation sent with every successful parse.
const ParseSuccessMessage = "CV parsed successfully"

// NewParseResult assembles the response once both text extraction and field
// extraction have succeeded.
func NewParseResult(content string, data ExtractedData) *ParseResult {
	return &ParseResult{
		Content:       content,
		ExtractedData: data,
		Status:        ParseStatusSuccess,
		Message:       ParseSuccessMessage,
	}
}
