package session

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"net/http"
)

const (
	SessionCookieName = "mpdp-session"
	TempCookieName    = "mpdp-temp"
)

var randReader io.Reader = rand.Reader

// NewToken returns 32 random bytes, base64url encoded.
func NewToken() (string, error) {
	var b [32]byte
	if _, err := io.ReadFull(randReader, b[:]); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b[:]), nil
}

func readCookie(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	if c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func setCookie(w http.ResponseWriter, name string, value string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
