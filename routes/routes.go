package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"repuestos-web/controllers"
	"repuestos-web/middlewares"
)

// Register wires all HTTP routes. loginLimiter caps password attempts on the
// only credential endpoint.
func Register(app *fiber.App, store *session.Store,
	auth *controllers.AuthController,
	parts *controllers.PartController,
	excel *controllers.ExcelController,
	loginLimiter fiber.Handler) {

	// Public endpoints
	app.Get("/", auth.Home)
	app.Get("/login", auth.LoginGet)
	app.Post("/login", loginLimiter, auth.LoginPost)

	// Everything else requires the session flag
	protected := app.Group("", middlewares.RequireLogin(store))
	protected.Get("/logout", auth.Logout)
	protected.Get("/search", parts.SearchGet)
	protected.Post("/search", parts.SearchPost)
	protected.Get("/add", parts.AddGet)
	protected.Post("/add", parts.AddPost)
	protected.Post("/delete/:id", parts.Delete)
	protected.Get("/excel", excel.Open)
}
