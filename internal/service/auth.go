package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("auth")

type AuthService struct {
	secret []byte
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{
		secret: []byte(secret),
	}
}

type AuthResult struct {
	ActorID   int64
	ActorName string
}

// VerifyToken validates an HS256 bearer token and resolves the acting user.
// The subject claim carries the user ID, the name claim the username.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.VerifyToken")
	defer span.End()

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		err := fmt.Errorf("unexpected claims type")
		span.RecordError(err)
		return nil, err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		span.RecordError(errors.Wrap(err, "subject claim missing"))
		return nil, err
	}

	actorID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		err = errors.Wrap(err, "subject is not a user id")
		span.RecordError(err)
		return nil, err
	}

	actorName, _ := claims["name"].(string)
	if actorName == "" {
		err := fmt.Errorf("name claim missing")
		span.RecordError(err)
		return nil, err
	}

	return &AuthResult{
		ActorID:   actorID,
		ActorName: actorName,
	}, nil
}

// IssueToken mints a token for the given user, valid for 24 hours.
func (s *AuthService) IssueToken(actorID int64, actorName string) (string, error) {

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.FormatInt(actorID, 10),
		"name": actorName,
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	})

	return token.SignedString(s.secret)
}
