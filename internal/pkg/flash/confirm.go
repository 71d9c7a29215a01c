package flash

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const confirmTTL = 10 * time.Minute

var ErrConfirmationInvalid = errors.New("confirmation token is invalid or expired")

// ConfirmToken binds a confirmation dialog to one action on one subject
// (for example "delete-employee" on id 12).
func (c *Codec) ConfirmToken(action, subject string, now time.Time) string {
	payload := strings.Join([]string{action, subject, uuid.NewString(), now.UTC().Format(time.RFC3339)}, "|")
	return c.Sign([]byte(payload))
}

// CheckConfirmToken accepts a token issued by ConfirmToken for the same
// action and subject within the last ten minutes.
func (c *Codec) CheckConfirmToken(token, action, subject string, now time.Time) error {
	payload, err := c.Verify(token)
	if err != nil {
		return ErrConfirmationInvalid
	}

	parts := strings.Split(string(payload), "|")
	if len(parts) != 4 || parts[0] != action || parts[1] != subject {
		return ErrConfirmationInvalid
	}
	if _, err := uuid.Parse(parts[2]); err != nil {
		return ErrConfirmationInvalid
	}

	issued, err := time.Parse(time.RFC3339, parts[3])
	if err != nil || now.Sub(issued) > confirmTTL || issued.Sub(now) > time.Minute {
		return ErrConfirmationInvalid
	}
	return nil
}
