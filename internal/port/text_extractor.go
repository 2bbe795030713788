package port

import (
	"context"

	"cvparser/internal/domain"
)

// TextExtractor turns a document's bytes into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, fileType domain.FileType, data []byte) (string, error)
}
