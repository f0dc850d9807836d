package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"
)

// htmxError returns an error message as HTML that HTMX will display in the
// page's flash slot.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	c.Set("HX-Retarget", "#flash")
	c.Set("HX-Reswap", "innerHTML")
	return c.SendString(
		`<div class="flash flash-error" role="alert">` + html.EscapeString(message) + `</div>`,
	)
}

// isHTMX reports whether the request was issued by HTMX.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// fail reports a boundary error: an inline fragment for HTMX requests, the
// error page otherwise.
func fail(c fiber.Ctx, status int, message string) error {
	if isHTMX(c) {
		return htmxError(c, message)
	}
	return fiber.NewError(status, message)
}
