package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rbiomeds/newsdesk/internal/apperr"
	"github.com/rbiomeds/newsdesk/internal/media"
	"github.com/rbiomeds/newsdesk/internal/observability/metrics"
)

// uploadField is the multipart form field carrying the file.
const uploadField = "image"

type UploadRouter struct {
	e       *echo.Echo
	gateway *media.Gateway
}

func NewUploadRouter(e *echo.Echo, gateway *media.Gateway) *UploadRouter {
	return &UploadRouter{
		e:       e,
		gateway: gateway,
	}
}

func (r *UploadRouter) Bind() {
	r.e.POST("/api/upload", r.uploadHandler)
}

// uploadHandler godoc
// @Summary Upload an image
// @Description Forwards the file to the media host and returns its durable URL
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "image file, at most 5 MiB"
// @Success 200 {object} map[string]string
// @Router /api/upload [post]
func (r *UploadRouter) uploadHandler(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return apperr.NewMissingFile(uploadField)
	}

	// Reject oversize payloads before reading the file into memory,
	// let alone forwarding it.
	if fileHeader.Size > media.MaxUploadBytes {
		uploadErr := &apperr.PayloadTooLargeError{Size: fileHeader.Size, Limit: media.MaxUploadBytes}
		metrics.RecordUpload(fileHeader.Size, uploadErr)
		return uploadErr
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Join(errors.New("failed to open uploaded file"), err)
	}
	defer func() {
		_ = src.Close()
	}()

	data, err := io.ReadAll(src)
	if err != nil {
		return errors.Join(errors.New("failed to read uploaded file"), err)
	}

	imageURL, err := r.gateway.Upload(c.Request().Context(), data, fileHeader.Header.Get("Content-Type"))
	metrics.RecordUpload(int64(len(data)), err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"imageUrl": imageURL})
}
