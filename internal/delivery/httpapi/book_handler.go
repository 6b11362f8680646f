package httpapi

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"book-api/internal/application/command"
	"book-api/internal/application/interfaces"
	"book-api/internal/application/services"
)

type BookHandler struct {
	books interfaces.BookService
}

func NewBookHandler(books interfaces.BookService) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) List(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	result, err := h.books.List(c.Request().Context(), page, services.DefaultPageSize)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *BookHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Resource not found."})
	}

	result, err := h.books.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dataResponse{Data: result.Result})
}

func (h *BookHandler) Create(c echo.Context) error {
	var createCommand command.CreateBookCommand
	if err := c.Bind(&createCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := h.books.Create(c.Request().Context(), &createCommand)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dataResponse{Data: result.Result})
}

func (h *BookHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Resource not found."})
	}

	var updateCommand command.UpdateBookCommand
	if err := c.Bind(&updateCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := h.books.Update(c.Request().Context(), id, &updateCommand)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dataResponse{Data: result.Result})
}

func (h *BookHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Resource not found."})
	}

	if err := h.books.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Livre supprimé"})
}
