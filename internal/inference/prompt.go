package inference

import (
	"fmt"
	"strings"

	"cvparser/internal/domain"
)

// ResolveFields returns fields, or DefaultFields when none are given.
func ResolveFields(fields []string) []string {
	if len(fields) == 0 {
		return domain.DefaultFields
	}
	return fields
}

// BuildFieldExtractionPrompt returns the instruction sent to the model for a
// CV's extracted text. It asks for a JSON object with exactly the requested
// keys, using null for anything the text does not contain.
func BuildFieldExtractionPrompt(text string, fields []string) string {
	fields = ResolveFields(fields)
	return fmt.Sprintf(`Analyze the following CV/resume text and extract the following information as JSON:
Fields to extract: %s

CV Text:
%s

Return only a valid JSON object with exactly these keys: %s.
If a field cannot be found, set its value to null.`,
		strings.Join(fields, ", "), text, quoteAll(fields))
}

func quoteAll(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	return strings.Join(quoted, ", ")
}
