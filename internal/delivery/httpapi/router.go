package httpapi

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"book-api/internal/application/interfaces"
	"book-api/internal/config"
)

// NewRouter builds the echo instance with the full route table. Book
// reads are public; everything mutating requires a bearer token.
func NewRouter(books interfaces.BookService, auth interfaces.AuthService, tokens interfaces.TokenService, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	bookHandler := NewBookHandler(books)
	authHandler := NewAuthHandler(auth)

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login, LoginRateLimiter(cfg))
	e.GET("/books", bookHandler.List)
	e.GET("/books/:id", bookHandler.Get)

	protected := e.Group("", BearerAuth(tokens))
	protected.POST("/logout", authHandler.Logout)
	protected.POST("/books", bookHandler.Create)
	protected.PUT("/books/:id", bookHandler.Update)
	protected.PATCH("/books/:id", bookHandler.Update)
	protected.DELETE("/books/:id", bookHandler.Delete)

	return e
}
