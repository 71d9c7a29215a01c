// Package flash carries one-shot notifications across a redirect in a signed
// cookie.
package flash

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"unicode/utf8"
)

const cookieName = "hris_flash"

// maxCookieValue keeps the signed cookie under the 4 KB browsers accept.
const maxCookieValue = 3800

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Message is shown once on the next rendered page
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

func Success(text string) Message { return Message{Kind: KindSuccess, Text: text} }
func Error(text string) Message   { return Message{Kind: KindError, Text: text} }
func Info(text string) Message    { return Message{Kind: KindInfo, Text: text} }

type Store struct {
	codec  *Codec
	secure bool
}

func NewStore(codec *Codec, secure bool) *Store {
	return &Store{codec: codec, secure: secure}
}

// Set queues msg for the next request. Text too long for a cookie is cut
// short and ends in "...".
func (s *Store) Set(w http.ResponseWriter, msg Message) {
	value, err := s.encode(msg)
	for err == nil && len(value) > maxCookieValue {
		msg.Text = truncate(msg.Text, len(msg.Text)/2)
		value, err = s.encode(msg)
	}
	if err != nil {
		slog.Error("Failed to encode flash message", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) encode(msg Message) (string, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	return s.codec.Sign(raw), nil
}

// truncate cuts text to at most n bytes on a rune boundary
func truncate(text string, n int) string {
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n] + "..."
}

// Pop returns the queued message, if any, and clears it. Tampered cookies are
// dropped.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) (Message, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return Message{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := s.codec.Verify(cookie.Value)
	if err != nil {
		slog.WarnContext(r.Context(), "Discarding tampered flash cookie")
		return Message{}, false
	}

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil || msg.Text == "" {
		return Message{}, false
	}
	return msg, true
}
