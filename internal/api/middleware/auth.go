package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/loketh/ledger/internal/api/shared/errors"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	CALLER_KEY     contextKey = "caller"
	JWT_CLAIMS_KEY contextKey = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
}

// Authenticator validates bearer tokens issued by the identity provider.
// The subject claim is the caller account.
type Authenticator struct {
	publicKey *rsa.PublicKey
}

// NewAuthenticator parses the configured public key once
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	if cfg.JWTPublicKey == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	return &Authenticator{publicKey: publicKey}, nil
}

// Authenticate validates the Authorization header and returns the caller account
func (a *Authenticator) Authenticate(authHeader string) (domain.Account, *jwt.RegisteredClaims, error) {
	if authHeader == "" {
		return domain.ZeroAccount, nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return domain.ZeroAccount, nil, errors.New("invalid Authorization header format")
	}

	if authType := strings.ToLower(parts[0]); authType != "bearer" {
		return domain.ZeroAccount, nil, fmt.Errorf("unsupported authorization type: %s", authType)
	}

	claims, err := a.validateJWT(parts[1])
	if err != nil {
		return domain.ZeroAccount, nil, err
	}

	caller, err := domain.ParseAccount(claims.Subject)
	if err != nil || domain.IsZeroAccount(caller) {
		return domain.ZeroAccount, nil, errors.New("token subject is not an account address")
	}

	return caller, claims, nil
}

// Auth returns a gin middleware requiring a valid bearer token
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, claims, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		c.Set(string(CALLER_KEY), caller)
		c.Set(string(JWT_CLAIMS_KEY), claims)
		logger.DebugCtx(c.Request.Context(), "JWT authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("caller", caller.Hex()),
		)

		c.Next()
	}
}

// Caller returns the authenticated account of the request
func Caller(c *gin.Context) (domain.Account, bool) {
	v, ok := c.Get(string(CALLER_KEY))
	if !ok {
		return domain.ZeroAccount, false
	}
	caller, ok := v.(domain.Account)
	return caller, ok
}

// validateJWT validates a JWT token with RSA signature and returns claims.
// Expiry and not-before are checked by the parser.
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
