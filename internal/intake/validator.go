// Package intake gates uploads on size and extension before any extraction work.
package intake

import (
	"strings"

	"cvparser/internal/config"
	"cvparser/internal/domain"
)

// Validator checks uploaded files against the configured ceiling and allow-list.
type Validator struct {
	allowed   []string
	allowSet  map[string]struct{}
	maxSizeMB int64
	maxBytes  int64
}

// NewValidator creates a Validator from upload settings.
func NewValidator(cfg *config.UploadConfig) *Validator {
	allowed := cfg.AllowedFileTypes
	if len(allowed) == 0 {
		for _, ft := range domain.DefaultAllowedFileTypes {
			allowed = append(allowed, string(ft))
		}
	}
	set := make(map[string]struct{}, len(allowed))
	for _, ext := range allowed {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return &Validator{
		allowed:   allowed,
		allowSet:  set,
		maxSizeMB: cfg.MaxFileSizeMB,
		maxBytes:  cfg.MaxFileSizeBytes(),
	}
}

// Validate rejects files larger than the ceiling or with an extension outside
// the allow-list. Size is checked first. It returns the normalized extension.
func (v *Validator) Validate(filename string, size int64) (domain.FileType, error) {
	if size > v.maxBytes {
		return "", domain.NewClientInputError("File size exceeds maximum allowed size of %dMB", v.maxSizeMB)
	}

	ext := Extension(filename)
	if _, ok := v.allowSet[ext]; !ok {
		return "", domain.NewClientInputError("Unsupported file type: %s. Allowed types: %s",
			ext, strings.Join(v.allowed, ", "))
	}
	return domain.FileType(ext), nil
}

// AllowedTypes returns the allow-list in configured order.
func (v *Validator) AllowedTypes() []string {
	out := make([]string, len(v.allowed))
	copy(out, v.allowed)
	return out
}

// Extension returns the lowercased substring after the last '.'. A name
// without a dot is returned whole, lowercased.
func Extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return strings.ToLower(filename[i+1:])
	}
	return strings.ToLower(filename)
}
