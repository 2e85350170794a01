// Package registry submits collector registrations to the spreadsheet web
// app that backs the portfolio's purchase registry.
package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalid  = errors.New("registry: invalid registration")
	ErrRejected = errors.New("registry: submission rejected")
)

// timestampLayout matches JavaScript's Date.toISOString, which the sheet
// script stores verbatim.
const timestampLayout = "2006-01-02T15:04:05.000Z"

type Registration struct {
	Name    string
	Email   string
	Phone   string
	Artwork string
	Date    string
	Notes   string
}

func (r Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: email %q", ErrInvalid, r.Email)
	}
	return nil
}

type Client struct {
	URL  string
	HTTP *http.Client
	Now  func() time.Time
	Log  logrus.FieldLogger
}

func NewClient(url string) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: 15 * time.Second},
		Now:  time.Now,
		Log:  logrus.StandardLogger().WithField("component", "registry"),
	}
}

// Submit posts reg as a multipart form. Any non-2xx response is reported as
// ErrRejected. There are no retries.
func (c *Client) Submit(ctx context.Context, reg Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := [][2]string{
		{"name", reg.Name},
		{"email", reg.Email},
		{"phone", reg.Phone},
		{"artwork", reg.Artwork},
		{"date", reg.Date},
		{"notes", reg.Notes},
		{"timestamp", c.Now().UTC().Format(timestampLayout)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("registry: encode %s: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("registry: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, &body)
	if err != nil {
		return fmt.Errorf("registry: build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.WithError(err).Error("submission failed")
		return fmt.Errorf("registry: post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.WithField("status", resp.StatusCode).Error("submission rejected")
		return fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}
	c.Log.WithFields(logrus.Fields{
		"artwork": reg.Artwork,
		"email":   reg.Email,
	}).Info("registration saved")
	return nil
}
