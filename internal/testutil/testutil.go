// Package testutil provides test fixtures and helpers.
package testutil

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
)

// SampleCSV is the two-row dataset used across the engine tests.
const SampleCSV = "ID,Statement\n" +
	"1,Hurry! limited time only\n" +
	"2,A calm and ordinary day."

// MixedCSV exercises both default tactics, a row without matches and a short row.
const MixedCSV = "ID,Statement,Channel\n" +
	"1,Hurry - limited time only,email\n" +
	"2,Exclusive VIP early access for members only,social\n" +
	"3,A calm and ordinary day.,print\n" +
	"4"

// MultipartFile builds a multipart/form-data body holding one file field.
func MultipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &body, w.FormDataContentType()
}

// Client replays cookies between requests against a Fiber app so the
// session survives across calls.
type Client struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

// NewClient returns a Client bound to app.
func NewClient(t *testing.T, app *fiber.App) *Client {
	return &Client{t: t, app: app, cookies: make(map[string]*http.Cookie)}
}

// Do sends req with the stored cookies and records any cookies set in the
// response. It returns the response and its body.
func (c *Client) Do(req *http.Request) (*http.Response, string) {
	c.t.Helper()

	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.app.Test(req)
	if err != nil {
		c.t.Fatalf("%s %s failed: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		c.cookies[cookie.Name] = cookie
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("failed to read response body: %v", err)
	}
	return resp, string(body)
}
