package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenLifetime = 24 * time.Hour

// Claims carried by a session token.
type Claims struct {
	Username string
	Role     models.Role
	JTI      string
	Expiry   time.Time
}

// IssueToken signs a session JWT for the user. Each token carries a uuid jti
// so logout can revoke it individually.
func IssueToken(username string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     string(role),
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(TokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseToken validates the signature and expiry and unpacks the claims.
func ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}
	username, _ := mapClaims["username"].(string)
	roleStr, _ := mapClaims["role"].(string)
	jti, _ := mapClaims["jti"].(string)
	if username == "" || jti == "" {
		return Claims{}, errors.New("invalid token claims")
	}
	role, err := models.MapRole(roleStr)
	if err != nil {
		return Claims{}, errors.New("invalid token claims")
	}

	expiry := time.Now().Add(TokenLifetime)
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		expiry = exp.Time
	}

	return Claims{Username: username, Role: role, JTI: jti, Expiry: expiry}, nil
}

// TokenStore tracks revoked token ids in Redis until they would have
// expired anyway. A nil client disables revocation (single-node dev setup).
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func (s *TokenStore) revocationKey(jti string) string {
	return "session:revoked:" + jti
}

// Revoke blacklists a token id for the remainder of its lifetime.
func (s *TokenStore) Revoke(ctx context.Context, claims Claims) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.Expiry)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, s.revocationKey(claims.JTI), "1", ttl).Err()
}

// IsRevoked reports whether the token id was revoked by a logout.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s == nil || s.rdb == nil {
		return false, nil
	}
	_, err := s.rdb.Get(ctx, s.revocationKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
