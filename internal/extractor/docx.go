package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"cvparser/internal/domain"
)

// DOCXExtractor reads body paragraphs from Office Open XML documents.
type DOCXExtractor struct{}

func (e *DOCXExtractor) SupportedFormats() []domain.FileType {
	return []domain.FileType{domain.FileTypeDOCX}
}

// Extract returns the document's body-level paragraphs joined by newlines.
// Paragraphs nested in tables or text boxes are not included.
func (e *DOCXExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening DOCX: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("word/document.xml not found in DOCX")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("opening document.xml: %w", err)
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := parseDocxParagraphs(rc)
	if err != nil {
		return "", fmt.Errorf("parsing DOCX XML: %w", err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// parseDocxParagraphs walks document.xml and collects the text of each w:p
// that is a direct child of w:body.
func parseDocxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		stack      []string
		current    strings.Builder
		inPara     bool
		paraDepth  int
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if name == "p" && !inPara && len(stack) > 0 && stack[len(stack)-1] == "body" {
				inPara = true
				paraDepth = len(stack)
				current.Reset()
			}
			// Only run-level tab, br and cr are characters; w:pPr/w:tabs holds tab stops.
			if inPara && len(stack) > 0 && stack[len(stack)-1] == "r" {
				switch name {
				case "tab":
					current.WriteByte('\t')
				case "br", "cr":
					current.WriteByte('\n')
				}
			}
			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
			if inPara && len(stack) == paraDepth && t.Name.Local == "p" {
				paragraphs = append(paragraphs, current.String())
				inPara = false
			}

		case xml.CharData:
			if inPara && len(stack) > 0 && stack[len(stack)-1] == "t" {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
