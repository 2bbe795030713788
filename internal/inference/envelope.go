package inference

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// generateResponseSchema describes the non-streaming /api/generate reply.
// Only "response" is required; Ollama adds timing fields we ignore.
const generateResponseSchema = `{
  "type": "object",
  "required": ["response"],
  "properties": {
    "response": {"type": "string"},
    "model": {"type": "string"},
    "done": {"type": "boolean"}
  }
}`

var envelopeSchema = jsonschema.MustCompileString("generate_response.json", generateResponseSchema)

// DecodeGenerateResponse validates body against the generate reply shape and
// returns the model's raw text.
func DecodeGenerateResponse(body []byte) (string, error) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return "", fmt.Errorf("decoding response: %w (raw: %s)", err, truncate(string(body), 200))
	}
	if err := envelopeSchema.Validate(v); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}

	var resp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return resp.Response, nil
}

func truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
