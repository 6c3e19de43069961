package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const loggedInKey = "logged_in"

// RequireLogin guards a route group: anonymous callers are redirected to the
// login page, nothing is partially rendered.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
		}
		if ok, _ := sess.Get(loggedInKey).(bool); !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// MarkLoggedIn sets the session flag checked by RequireLogin. The caller is
// responsible for saving the session.
func MarkLoggedIn(sess *session.Session) {
	sess.Set(loggedInKey, true)
}

// IsLoggedIn reads the session flag.
func IsLoggedIn(sess *session.Session) bool {
	ok, _ := sess.Get(loggedInKey).(bool)
	return ok
}
