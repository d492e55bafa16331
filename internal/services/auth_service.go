package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
)

// ErrInvalidCredentials is returned for any login failure so callers
// cannot tell unknown logins from wrong passwords.
var ErrInvalidCredentials = errors.New("invalid login or password")

const sessionTTL = 12 * time.Hour

// AuthService checks crew credentials and issues session tokens.
type AuthService struct {
	crew   *repositories.CrewRepository
	secret []byte
}

func NewAuthService(crew *repositories.CrewRepository, secret []byte) *AuthService {
	return &AuthService{crew: crew, secret: secret}
}

// Login verifies the login/password pair against the crew roster and
// returns a signed token carrying the staff number and designation.
func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.LoginResponse, error) {
	if req.Login == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	member, err := s.crew.FindByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if member.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sap":         member.SAP,
		"designation": member.Designation,
		"iat":         now.Unix(),
		"exp":         now.Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &dtos.LoginResponse{Token: signed, SAP: member.SAP}, nil
}
