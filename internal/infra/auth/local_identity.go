package auth

import (
	"context"
	"sync"
	"time"

	"landmarket/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Token types carried in the "type" claim.
const (
	tokenTypeID      = "id"
	tokenTypeSession = "session"

	localIssuer = "landmarket-local"
)

// localClaims are the claims of locally issued identity and session tokens.
type localClaims struct {
	Email string `json:"email,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// localIdentity is an HS256 stand-in for the managed identity service, used in development.
type localIdentity struct {
	secret []byte
	now    func() time.Time

	mu      sync.RWMutex
	revoked map[string]time.Time // uid -> sessions issued before this instant are invalid
}

// NewLocalIdentity is the constructor for localIdentity.
func NewLocalIdentity(secret string) (service.IdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("auth.localSecret must be provided for the local identity provider")
	}

	return &localIdentity{
		secret:  []byte(secret),
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}, nil
}

// IssueLocalIDToken mints a short-lived identity token accepted by the local provider.
func IssueLocalIDToken(secret, uid, email string, ttl time.Duration) (string, error) {
	return signLocal([]byte(secret), uid, email, tokenTypeID, time.Now(), ttl)
}

func (s *localIdentity) VerifyIDToken(_ context.Context, idToken string) (*service.Identity, error) {
	claims, err := s.parse(idToken, tokenTypeID)
	if err != nil {
		return nil, err
	}

	return &service.Identity{UID: claims.Subject, Email: claims.Email}, nil
}

func (s *localIdentity) CreateSessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	identity, err := s.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	token, err := signLocal(s.secret, identity.UID, identity.Email, tokenTypeSession, s.now(), ttl)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

func (s *localIdentity) VerifySessionCookie(_ context.Context, cookie string) (*service.Identity, error) {
	claims, err := s.parse(cookie, tokenTypeSession)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	revokedAt, ok := s.revoked[claims.Subject]
	s.mu.RUnlock()
	if ok && claims.IssuedAt != nil && !claims.IssuedAt.After(revokedAt) {
		return nil, errors.Wrap(service.ErrInvalidCredential, "session revoked")
	}

	return &service.Identity{UID: claims.Subject, Email: claims.Email}, nil
}

func (s *localIdentity) RevokeSessions(_ context.Context, uid string) error {
	s.mu.Lock()
	s.revoked[uid] = s.now()
	s.mu.Unlock()

	return nil
}

func (s *localIdentity) parse(token, wantType string) (*localClaims, error) {
	if token == "" {
		return nil, service.ErrInvalidCredential
	}

	claims := &localClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(localIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidCredential, err.Error())
	}
	if claims.Type != wantType || claims.Subject == "" {
		return nil, errors.Wrapf(service.ErrInvalidCredential, "unexpected %s token", claims.Type)
	}

	return claims, nil
}

func signLocal(secret []byte, uid, email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := localClaims{
		Email: email,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    localIssuer,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
