package services

import (
	"time"

	"github.com/AsrafulMasum/bistro-boos-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

// Issue mints an HS256 token embedding the caller-supplied claims, valid
// for the configured expiry (1h by default). The claims are not checked
// against the user directory.
func (s *TokenService) Issue(userClaims map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range userClaims {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.cfg.JWTExpiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
