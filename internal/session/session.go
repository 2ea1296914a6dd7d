package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName holds the signed cart session. The cookie carries the two values
// the browser frontend used to keep in local storage: the platform-issued cart
// id and the last-known checkout URL, plus a session id that scopes
// notifications to one browser.
const CookieName = "cart_session"

type Session struct {
	ID          string
	CartID      string
	CheckoutURL string
}

func (s Session) IsZero() bool { return s.ID == "" && s.CartID == "" && s.CheckoutURL == "" }

type Manager struct {
	Secret []byte
	TTL    time.Duration
}

func NewManager(secret []byte) *Manager {
	return &Manager{Secret: secret, TTL: 14 * 24 * time.Hour}
}

// Read parses the session cookie. Any parse or signature failure yields an
// empty session: a broken cookie means a fresh cart, never an error.
func (m *Manager) Read(c echo.Context) Session {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Session{}
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}
	}

	sess := Session{}
	if v, ok := claims["sid"].(string); ok {
		sess.ID = v
	}
	if v, ok := claims["cid"].(string); ok {
		sess.CartID = v
	}
	if v, ok := claims["curl"].(string); ok {
		sess.CheckoutURL = v
	}
	return sess
}

func (m *Manager) Write(c echo.Context, sess Session) error {
	exp := time.Now().Add(m.TTL)
	claims := jwt.MapClaims{
		"sid":  sess.ID,
		"cid":  sess.CartID,
		"curl": sess.CheckoutURL,
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	c.SetCookie(createCookie(CookieName, signed, "/", exp))
	return nil
}

func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(createCookie(CookieName, "", "/", time.Unix(0, 0)))
}

func createCookie(name, value, path string, expTime time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expTime,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
