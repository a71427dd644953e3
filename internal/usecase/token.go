package usecase

import (
	"errors"
	"strconv"
	"time"

	"restaurant/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// 認証済みの呼び出し元
type Identity struct {
	ID       int64
	Username string
	Email    string
	Role     model.Role
}

type tokenClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTを発行・検証する
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewTokenService(secret string, ttl time.Duration, clock Clock) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (s *TokenService) Issue(u model.User) (string, error) {
	now := s.clock.Now()
	claims := tokenClaims{
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify maps a missing or unparsable token to 401 and a token that parses
// but fails signature, expiry or claim checks to 403.
func (s *TokenService) Verify(raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, unauthorized("access denied")
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return Identity{}, unauthorized("access denied")
		}
		return Identity{}, forbidden("invalid token")
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Identity{}, forbidden("invalid token")
	}
	role := model.Role(claims.Role)
	if !role.Valid() {
		return Identity{}, forbidden("invalid token")
	}

	return Identity{ID: id, Username: claims.Username, Email: claims.Email, Role: role}, nil
}
