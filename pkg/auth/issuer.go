package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/getmockd/magemock/internal/id"
	"github.com/getmockd/magemock/pkg/magento"
)

// Default admin credentials.
const (
	DefaultUsername = "admin"
	DefaultPassword = "password123"
	DefaultTTL      = 4 * time.Hour
	DefaultIssuer   = "magemock"
)

const msgLoginFailed = "Login failed"

// Config holds the accepted credentials and the token settings.
type Config struct {
	Username string
	Password string
	// Secret signs tokens. A random secret is generated when empty.
	Secret string
	TTL    time.Duration
	Issuer string
}

// DefaultConfig returns the credentials the platform's integration tests use.
func DefaultConfig() Config {
	return Config{
		Username: DefaultUsername,
		Password: DefaultPassword,
		TTL:      DefaultTTL,
		Issuer:   DefaultIssuer,
	}
}

// Issuer checks admin credentials and signs tokens.
type Issuer struct {
	cfg    Config
	secret []byte
	now    func() time.Time
}

// NewIssuer creates an Issuer. Zero fields of cfg take their defaults.
func NewIssuer(cfg Config) (*Issuer, error) {
	def := DefaultConfig()
	if cfg.Username == "" {
		cfg.Username = def.Username
	}
	if cfg.Password == "" {
		cfg.Password = def.Password
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = def.Issuer
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate token secret: %w", err)
		}
	}

	return &Issuer{cfg: cfg, secret: secret, now: time.Now}, nil
}

// Issue returns a signed token for valid admin credentials and an
// UnauthorizedError otherwise.
func (i *Issuer) Issue(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(i.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(i.cfg.Password)) == 1
	if !userOK || !passOK {
		return "", &magento.UnauthorizedError{Message: msgLoginFailed}
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Issuer:    i.cfg.Issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		ID:        id.UUID(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token issued by i and returns its claims.
func (i *Issuer) Validate(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(i.cfg.Issuer), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}
