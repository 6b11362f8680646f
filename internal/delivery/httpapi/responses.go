package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"book-api/internal/domain/apperrors"
)

type messageResponse struct {
	Message string `json:"message"`
}

type dataResponse struct {
	Data interface{} `json:"data"`
}

type validationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// respondError maps the domain error taxonomy onto the JSON surface:
// ValidationError 422, NotFound 404, Unauthorized 401, everything else a
// generic 500.
func respondError(c echo.Context, err error) error {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, validationResponse{
			Message: ve.Message(),
			Errors:  ve.Errors,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Resource not found."})
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Identifiants incorrects"})
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
	}
}
