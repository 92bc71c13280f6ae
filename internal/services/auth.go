package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/learnpath-backend/internal/platform/apierr"
	"github.com/yungbote/learnpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

var ErrMissingSecret = errors.New("auth: JWT_SECRET not configured")

// AuthService verifies bearer tokens issued by the identity service. It never issues them.
// Rejected tokens come back as apierr.Unauthorized; a missing secret as ErrMissingSecret.
type AuthService interface {
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	log          *logger.Logger
	jwtSecretKey []byte
	issuer       string
}

func NewAuthService(log *logger.Logger, jwtSecretKey, issuer string) AuthService {
	return &authService{
		log:          log.With("service", "AuthService"),
		jwtSecretKey: []byte(jwtSecretKey),
		issuer:       strings.TrimSpace(issuer),
	}
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if len(as.jwtSecretKey) == 0 {
		return ctx, ErrMissingSecret
	}
	if strings.TrimSpace(tokenString) == "" {
		return ctx, apierr.Unauthorized("unauthorized", errors.New("auth: empty token"))
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if as.issuer != "" {
		opts = append(opts, jwt.WithIssuer(as.issuer))
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return as.jwtSecretKey, nil
	}, opts...)
	if err != nil {
		return ctx, apierr.Unauthorized("unauthorized", fmt.Errorf("auth: parse token: %w", err))
	}
	if !parsed.Valid {
		return ctx, apierr.Unauthorized("unauthorized", errors.New("auth: invalid or expired token"))
	}
	learnerID := strings.TrimSpace(claims.Subject)
	if learnerID == "" {
		return ctx, apierr.Unauthorized("unauthorized", errors.New("auth: token has no subject"))
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{LearnerID: learnerID}), nil
}
