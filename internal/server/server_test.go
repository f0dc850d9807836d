package server

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tactics/internal/testutil"
	"tactics/internal/workspace"
)

// TestEncryptCookieSessionRoundTrip verifies that the encryptcookie +
// session middleware stack keeps an encoded workspace readable when a
// client replays encrypted session cookies across multiple requests.
func TestEncryptCookieSessionRoundTrip(t *testing.T) {
	// Use the same key-derivation as production (deriveEncryptionKey).
	secret := "test-secret-that-is-long-enough-for-production"
	encryptionKey := deriveEncryptionKey(secret)

	app := fiber.New()

	// Mirror the production middleware order:
	// 1. encryptcookie  2. session  3. route handler
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: encryptionKey,
	}))

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	app.Post("/session-set", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		ws := workspace.New(nil)
		ws.LoadDataset(testutil.SampleCSV)
		raw, err := ws.Encode()
		if err != nil {
			return err
		}
		sess.Set(workspace.SessionKey, raw)
		return c.SendString("ok")
	})
	app.Get("/session-get", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		raw, _ := sess.Get(workspace.SessionKey).(string)
		ws, err := workspace.Decode(raw)
		if err != nil {
			return c.Status(500).SendString(err.Error())
		}
		return c.SendString(ws.Records[0].Label())
	})

	// --- Request 1: establish a session ---
	req, _ := http.NewRequest("POST", "/session-set", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request 1 failed: %v", err)
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("request 1: expected 200, got %d: %s", resp.StatusCode, body)
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("request 1: no cookies returned")
	}

	// --- Requests 2 and 3: replay cookies (triggers encryptcookie decryption) ---
	for i := 2; i <= 3; i++ {
		r, _ := http.NewRequest("GET", "/session-get", nil)
		for _, c := range cookies {
			r.AddCookie(c)
		}

		resp, err := app.Test(r)
		if err != nil {
			t.Fatalf("request %d failed (possible encryptcookie panic): %v", i, err)
		}
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != 200 {
			t.Fatalf("request %d: expected 200, got %d: %s", i, resp.StatusCode, body)
		}
		if string(body) != "1" {
			t.Errorf("request %d: expected first record label '1', got %q", i, body)
		}
		if next := resp.Cookies(); len(next) > 0 {
			cookies = next
		}
	}
}

func TestDeriveEncryptionKey(t *testing.T) {
	a := deriveEncryptionKey("secret-a")
	b := deriveEncryptionKey("secret-b")

	if a == b {
		t.Error("different secrets produced the same key")
	}
	if a != deriveEncryptionKey("secret-a") {
		t.Error("key derivation is not deterministic")
	}
	// 32 bytes base64-encoded with padding
	if len(a) != 44 {
		t.Errorf("key length = %d, want 44", len(a))
	}
}
