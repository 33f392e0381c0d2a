package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"parth-agrotech/domain"
)

type (
	// JWTService signs session tokens. The token only names a server-side
	// session; revocation is done by deleting the session.
	JWTService interface {
		GenerateSessionToken(session domain.Session) (string, error)
		ParseSessionToken(token string) (*SessionClaims, error)
	}

	SessionClaims struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey []byte
		issuer    string
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: []byte(secretKey),
		issuer:    "PARTH-AGROTECH",
	}
}

func (j *jwtService) GenerateSessionToken(session domain.Session) (string, error) {
	claims := SessionClaims{
		session.UserID,
		session.Role,
		jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.UserID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return j.secretKey, nil
}

func (j *jwtService) ParseSessionToken(token string) (*SessionClaims, error) {
	t_Token, err := jwt.ParseWithClaims(token, &SessionClaims{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	claims, ok := t_Token.Claims.(*SessionClaims)
	if !ok || !t_Token.Valid || claims.ID == "" || claims.Issuer != j.issuer {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
