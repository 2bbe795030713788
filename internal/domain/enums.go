package domain

// FileType is a document format, named by its lowercase extension.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
	FileTypeXLSX FileType = "xlsx"
	FileTypeODT  FileType = "odt"
)

// DefaultAllowedFileTypes is the allow-list used when none is configured.
var DefaultAllowedFileTypes = []FileType{FileTypePDF, FileTypeDOCX, FileTypeTXT}

// ParseStatus marks the outcome reported in a ParseResult.
type ParseStatus string

const (
	ParseStatusSuccess ParseStatus = "success"
)
