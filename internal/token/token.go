package token

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"pulse/internal/model"
)

const issuer = "pulse"

// Kinds of tokens issued by the Manager.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("token: invalid token")
	ErrWrongKind    = errors.New("token: wrong token kind")
)

// Claims carries the identity embedded in every signed token.
type Claims struct {
	UserID    string `json:"user_id"`
	Staff     bool   `json:"staff"`
	Superuser bool   `json:"superuser"`
	Kind      string `json:"kind"`
	jwt.StandardClaims
}

// Pair is an access/refresh token pair returned on register and login.
type Pair struct {
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Manager signs and verifies HS256 tokens.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a Manager with the given signing secret and lifetimes.
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Issue signs a fresh access/refresh pair for the user.
func (m *Manager) Issue(u *model.User) (*Pair, error) {
	now := time.Now()

	access, err := m.sign(u, KindAccess, now, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(u, KindRefresh, now, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{
		Access:    access,
		Refresh:   refresh,
		ExpiresAt: now.Add(m.accessTTL),
	}, nil
}

func (m *Manager) sign(u *model.User, kind string, now time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    u.ID,
		Staff:     u.IsStaff,
		Superuser: u.IsSuperuser,
		Kind:      kind,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Subject:   u.ID,
			Issuer:    issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the signature and expiry of a token and checks its kind.
func (m *Manager) Parse(tokenStr, kind string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != kind {
		return nil, ErrWrongKind
	}
	return claims, nil
}

// Remaining returns how long the claims stay valid from now. It is used to
// size blacklist entries so revoked tokens expire from Redis on their own.
func (c *Claims) Remaining() time.Duration {
	d := time.Until(time.Unix(c.ExpiresAt, 0))
	if d < 0 {
		return 0
	}
	return d
}
