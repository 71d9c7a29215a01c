package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")
	signed := codec.Sign([]byte("hello"))

	payload, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(payload))
}

func TestCodec_RejectsTampering(t *testing.T) {
	codec := NewCodec("secret")
	signed := codec.Sign([]byte("hello"))

	_, err := NewCodec("other").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = codec.Verify("aGVsbG8." + signed[len(signed)-4:])
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = codec.Verify("no-dot")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestStore_SetThenPop(t *testing.T) {
	store := NewStore(NewCodec("secret"), false)

	rec := httptest.NewRecorder()
	store.Set(rec, Error("Employee has active records"))

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	popRec := httptest.NewRecorder()
	msg, ok := store.Pop(popRec, req)
	require.True(t, ok)
	assert.Equal(t, KindError, msg.Kind)
	assert.Equal(t, "Employee has active records", msg.Text)

	cleared := popRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, cookieName, cleared[0].Name)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestStore_PopIgnoresForgedCookie(t *testing.T) {
	store := NewStore(NewCodec("secret"), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: NewCodec("forged").Sign([]byte(`{"kind":"info","text":"x"}`))})

	_, ok := store.Pop(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestStore_PopWithoutCookie(t *testing.T) {
	store := NewStore(NewCodec("secret"), false)
	_, ok := store.Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestConfirmToken(t *testing.T) {
	codec := NewCodec("secret")
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	token := codec.ConfirmToken("delete-employee", "12", now)

	assert.NoError(t, codec.CheckConfirmToken(token, "delete-employee", "12", now.Add(time.Minute)))
	assert.ErrorIs(t, codec.CheckConfirmToken(token, "delete-employee", "13", now), ErrConfirmationInvalid)
	assert.ErrorIs(t, codec.CheckConfirmToken(token, "delete-holiday", "12", now), ErrConfirmationInvalid)
	assert.ErrorIs(t, codec.CheckConfirmToken(token, "delete-employee", "12", now.Add(11*time.Minute)), ErrConfirmationInvalid)
	assert.ErrorIs(t, codec.CheckConfirmToken("garbage", "delete-employee", "12", now), ErrConfirmationInvalid)
}

func TestStore_SetTruncatesLongMessages(t *testing.T) {
	store := NewStore(NewCodec("secret"), false)
	long := strings.Repeat("<é", 8000)

	rec := httptest.NewRecorder()
	store.Set(rec, Error(long))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.LessOrEqual(t, len(cookies[0].Value), maxCookieValue)

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.AddCookie(cookies[0])

	msg, ok := store.Pop(httptest.NewRecorder(), req)
	require.True(t, ok)
	assert.True(t, utf8.ValidString(msg.Text))
	assert.True(t, strings.HasSuffix(msg.Text, "..."))
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(msg.Text, "...")))
	assert.Greater(t, len(msg.Text), 100)
}
