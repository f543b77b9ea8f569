package middleware

import (
	"errors"
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// UserIDKey is the gin context key holding the authenticated user ID
	UserIDKey = "auth_user_id"

	// RoleKey is the gin context key holding the authenticated role
	RoleKey = "auth_role"

	roleAdmin = "admin"
)

// Auth verifies the Bearer token on incoming requests and stores the
// authenticated user ID and role in the request context. Tokens are
// HS256-signed with the shared secret; the "sub" claim carries the user ID.
func Auth(secret string) gin.HandlerFunc {
	secretKey := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Missing or malformed Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, role, err := parseToken(tokenString, secretKey)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(RoleKey, role)

		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != roleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Admin role required",
			})
			return
		}

		c.Next()
	}
}

// AuthenticatedUserID returns the user ID stored by the Auth middleware
func AuthenticatedUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	return userID, ok
}

// parseToken validates the signature and extracts the subject and role claims
func parseToken(tokenString string, secretKey []byte) (uint64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	// JSON numbers decode as float64
	subject, ok := claims["sub"].(float64)
	if !ok || subject <= 0 {
		return 0, "", errors.New("invalid subject claim")
	}

	role, _ := claims["role"].(string)

	return uint64(subject), role, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: message,
	})
}
