package session

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

const TokenCookie = "luxstyle_session"

var ErrRevoked = errors.New("session revoked")

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID    uint
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret  []byte
	ttl     time.Duration
	secure  bool
	revoker Revoker
}

func NewManager(secret string, ttl time.Duration, secure bool, revoker Revoker) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		secure:  secure,
		revoker: revoker,
	}
}

// --------- Token ---------

func (m *Manager) Issue(userID uint, role string, now time.Time) (string, *Identity, error) {
	id := &Identity{
		UserID:    userID,
		Role:      role,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(m.ttl),
	}

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.TokenID,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(id.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign session token")
	}
	return signed, id, nil
}

func (m *Manager) Verify(ctx context.Context, raw string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.Wrap(jwt.ErrTokenInvalidClaims, "invalid session token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, errors.Wrap(jwt.ErrTokenInvalidClaims, "invalid session payload")
	}

	revoked, err := m.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrRevoked
	}

	return &Identity{
		UserID:    uint(userID),
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// --------- Cookie ---------

// Login issues a session for user and stores it in the response cookie.
func (m *Manager) Login(c *gin.Context, user *models.User) (*Identity, error) {
	raw, id, err := m.Issue(user.ID, user.Role, time.Now())
	if err != nil {
		return nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, raw, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return id, nil
}

// FromRequest returns the identity carried by the request cookie, if any.
func (m *Manager) FromRequest(c *gin.Context) (*Identity, error) {
	raw, err := c.Cookie(TokenCookie)
	if err != nil || raw == "" {
		return nil, http.ErrNoCookie
	}
	return m.Verify(c.Request.Context(), raw)
}

// Logout revokes the current token, when there is a valid one, and always expires the cookie.
func (m *Manager) Logout(c *gin.Context) error {
	var revokeErr error
	if id, err := m.FromRequest(c); err == nil {
		ttl := time.Until(id.ExpiresAt)
		if ttl > 0 {
			revokeErr = m.revoker.Revoke(c.Request.Context(), id.TokenID, ttl)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, "", -1, "/", "", m.secure, true)
	return revokeErr
}
