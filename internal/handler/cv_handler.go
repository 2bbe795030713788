package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cvparser/internal/service"
)

// CVHandler handles the document parsing endpoint.
type CVHandler struct {
	cvService service.CVService
}

// NewCVHandler creates a new CVHandler.
func NewCVHandler(cvService service.CVService) *CVHandler {
	return &CVHandler{cvService: cvService}
}

// ParseCV handles POST /parse-cv
// @Summary Parse a CV
// @Description Upload a CV (PDF, DOCX or TXT) and extract structured fields with the configured model
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV document (PDF, DOCX or TXT)"
// @Param fields formData []string false "Fields to extract (default: name, email, skills, experience, education)" collectionFormat(multi)
// @Success 200 {object} domain.ParseResult "CV parsed"
// @Failure 400 {object} ErrorResponse "Missing file, unsupported type or file too large"
// @Failure 500 {object} ErrorResponse "Extraction or inference failure"
// @Router /parse-cv [post]
func (h *CVHandler) ParseCV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.ParseCVInput{
		Filename: header.Filename,
		Size:     header.Size,
		File:     file,
		Fields:   requestedFields(c),
	}

	result, err := h.cvService.Parse(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// requestedFields collects the optional field list. Values may be repeated
// or comma separated; "request" is accepted as an alias of "fields".
func requestedFields(c *gin.Context) []string {
	var fields []string
	for _, key := range []string{"fields", "request"} {
		for _, v := range c.PostFormArray(key) {
			for _, f := range strings.Split(v, ",") {
				if f = strings.TrimSpace(f); f != "" {
					fields = append(fields, f)
				}
			}
		}
	}
	return fields
}
