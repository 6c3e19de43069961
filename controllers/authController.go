package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"repuestos-web/config"
	"repuestos-web/middlewares"
)

// AuthController implements the shared-password session gate. There are no
// per-user accounts: a single configured password flips the session flag.
type AuthController struct {
	Cfg   *config.Config
	Store *session.Store
}

func NewAuthController(cfg *config.Config, store *session.Store) *AuthController {
	return &AuthController{Cfg: cfg, Store: store}
}

// GET /
func (ct *AuthController) Home(c *fiber.Ctx) error {
	sess, err := ct.Store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	if middlewares.IsLoggedIn(sess) {
		return c.Redirect("/search", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// GET /login
func (ct *AuthController) LoginGet(c *fiber.Ctx) error {
	sess, err := ct.Store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	ok, errMsg := takeFlashes(sess)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Render("login", fiber.Map{"Ok": ok, "Error": errMsg})
}

// POST /login
func (ct *AuthController) LoginPost(c *fiber.Ctx) error {
	sess, err := ct.Store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	// Plain comparison against the configured service password; this is a
	// shared gate, not a per-user credential.
	if c.FormValue("password") == ct.Cfg.ServicePassword {
		middlewares.MarkLoggedIn(sess)
		flashOK(sess, "Ingreso correcto")
		if err := sess.Save(); err != nil {
			return err
		}
		return c.Redirect("/search", fiber.StatusSeeOther)
	}

	flashError(sess, "Contraseña incorrecta.")
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// GET /logout
func (ct *AuthController) Logout(c *fiber.Ctx) error {
	sess, err := ct.Store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	if err := sess.Destroy(); err != nil {
		return err
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
