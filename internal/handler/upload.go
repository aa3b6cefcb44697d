package handler

import (
	"io"
	"math"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// UploadHandler serves POST /post-image: one multipart file field in,
// a small JSON description of the file out. Nothing is stored.
type UploadHandler struct {
	Handler
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(s *server.Server) *UploadHandler {
	return &UploadHandler{
		Handler: NewHandler(s),
	}
}

// UploadImageRequest has no bindable fields; the file is pulled from
// the multipart form inside the handler. It still flows through the
// typed pipeline so logging and tracing stay uniform.
type UploadImageRequest struct{}

func (r *UploadImageRequest) Validate() error {
	return nil
}

// UploadImageResponse mirrors the documented response keys verbatim,
// including the unusual "Size(kb)".
type UploadImageResponse struct {
	Filename string  `json:"Filename"`
	Format   string  `json:"Format"`
	SizeKB   float64 `json:"Size(kb)"`
}

// UploadImage reads the uploaded file into memory and reports its
// name, content type, and size in kilobytes rounded to two decimals.
func (h *UploadHandler) UploadImage(c echo.Context, req *UploadImageRequest) (UploadImageResponse, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// A missing file field is a validation failure like any other.
		return UploadImageResponse{}, errs.NewUnprocessableEntityError("Validation failed", true, []errs.FieldError{
			{Field: "image", Error: "is required"},
		})
	}

	src, err := file.Open()
	if err != nil {
		return UploadImageResponse{}, errs.NewBadRequestError("could not read uploaded file", false)
	}
	defer src.Close()

	// Bounded, synchronous read: the only I/O in the whole API.
	data, err := io.ReadAll(src)
	if err != nil {
		return UploadImageResponse{}, errs.NewBadRequestError("could not read uploaded file", false)
	}

	sizeKB := math.Round(float64(len(data))/1024*100) / 100

	return UploadImageResponse{
		Filename: file.Filename,
		Format:   file.Header.Get("Content-Type"),
		SizeKB:   sizeKB,
	}, nil
}
