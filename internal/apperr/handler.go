package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler translates application errors into HTTP responses at the
// boundary. Validation and missing-file errors map to 400, missing targets to
// 404, oversized payloads to 413. Everything else, including store and media
// host failures, collapses to a 500 carrying the upstream message.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var nfe *NotFoundError
		if errors.As(err, &nfe) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": nfe.Error()})
			return
		}

		var mfe *MissingFileError
		if errors.As(err, &mfe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": mfe.Error()})
			return
		}

		var ple *PayloadTooLargeError
		if errors.As(err, &ple) {
			_ = c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": ple.Error()})
			return
		}

		var ue *UploadError
		if errors.As(err, &ue) {
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": ue.Error()})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
