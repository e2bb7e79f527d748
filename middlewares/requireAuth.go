package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenCookie carries the gateway-minted session JWT.
	AccessTokenCookie = "access-token"

	// ContextUser and ContextBackendToken are the keys handlers read
	// after RequireAuth has run.
	ContextUser         = "user"
	ContextBackendToken = "backendToken"
)

// RequireAuth validates the gateway JWT from the access-token cookie or an
// Authorization header and exposes its claims plus the embedded upstream
// token to handlers.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := tokenFromRequest(ctx)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set(ContextUser, claims)
		if backendToken, ok := claims["bt"].(string); ok {
			ctx.Set(ContextBackendToken, backendToken)
		}
		ctx.Next()
	}
}

func tokenFromRequest(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	header := ctx.GetHeader("Authorization")
	if after, found := strings.CutPrefix(header, "Bearer "); found {
		return after
	}
	return ""
}

// BackendToken returns the upstream API token for the authenticated user,
// or "" for anonymous requests.
func BackendToken(ctx *gin.Context) string {
	return ctx.GetString(ContextBackendToken)
}
