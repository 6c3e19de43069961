package controllers

import "github.com/gofiber/fiber/v2/middleware/session"

const (
	flashOKKey  = "flash_ok"
	flashErrKey = "flash_error"
)

// flashOK and flashError queue a one-shot notice for the next rendered page.
// The caller saves the session.
func flashOK(sess *session.Session, msg string) {
	sess.Set(flashOKKey, msg)
}

func flashError(sess *session.Session, msg string) {
	sess.Set(flashErrKey, msg)
}

// takeFlashes returns and clears any queued notices.
func takeFlashes(sess *session.Session) (ok, errMsg string) {
	if v, is := sess.Get(flashOKKey).(string); is {
		ok = v
		sess.Delete(flashOKKey)
	}
	if v, is := sess.Get(flashErrKey).(string); is {
		errMsg = v
		sess.Delete(flashErrKey)
	}
	return ok, errMsg
}
