package jwt

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type rawTokenKey struct{}

// Service verifies session tokens issued by the HR API. This front-end never
// mints tokens for real users.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	// Verifier finds the token in the Authorization header or the session
	// cookie, verifies it and keeps the raw string for forwarding.
	Verifier() func(http.Handler) http.Handler
	// Encode signs claims with the session secret
	Encode(claims map[string]interface{}) (string, error)
	CookieName() string
}

type JWTService struct {
	tokenAuth  *jwtauth.JWTAuth
	cookieName string
}

func NewJWTService(secretKey string, cookieName string) Service {
	return &JWTService{
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		cookieName: cookieName,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) CookieName() string {
	return j.cookieName
}

func (j *JWTService) Encode(claims map[string]interface{}) (string, error) {
	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, err
}

func (j *JWTService) Verifier() func(http.Handler) http.Handler {
	verify := jwtauth.Verify(j.tokenAuth, jwtauth.TokenFromHeader, j.tokenFromCookie)

	return func(next http.Handler) http.Handler {
		keepRaw := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := jwtauth.TokenFromHeader(r)
			if raw == "" {
				raw = j.tokenFromCookie(r)
			}
			if raw != "" {
				r = r.WithContext(WithRawToken(r.Context(), raw))
			}
			next.ServeHTTP(w, r)
		})
		return verify(keepRaw)
	}
}

func (j *JWTService) tokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(j.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// WithRawToken stores the session token string in ctx
func WithRawToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, rawTokenKey{}, token)
}

// RawToken returns the session token string stored by the verifier
func RawToken(ctx context.Context) string {
	token, _ := ctx.Value(rawTokenKey{}).(string)
	return token
}

// Subject identifies the session owner for snapshot scoping: the user_id
// claim, then sub, then the raw token.
func Subject(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err == nil {
		if id, ok := claims["user_id"]; ok && id != nil {
			switch v := id.(type) {
			case string:
				if v != "" {
					return v
				}
			case float64:
				return formatNumericClaim(v)
			}
		}
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			return sub
		}
	}
	return RawToken(ctx)
}

func formatNumericClaim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
