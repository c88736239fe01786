package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// The three guards are independent: no shared session state, no fallthrough
// from one to another. Each stores the verified subject under its own
// context key so handlers can scope queries to the authenticated identity.

// RequireAdmin verifies the bearer token and enforces the admin role claim.
func RequireAdmin(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, tokens)
		if !ok {
			return
		}
		if claims.Role != auth.RoleAdmin {
			response.Error(c, http.StatusForbidden, "Access denied. Admin only.", nil)
			c.Abort()
			return
		}
		c.Set(string(domain.KeyAdminID), claims.SubjectID)
		c.Next()
	}
}

// RequireRecruiter verifies the bearer token; recruiter tokens carry no
// role claim, so only the subject is checked.
func RequireRecruiter(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, tokens)
		if !ok {
			return
		}
		c.Set(string(domain.KeyRecruiterID), claims.SubjectID)
		c.Next()
	}
}

// RequireUser verifies the bearer token for job-seeker routes.
func RequireUser(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, tokens)
		if !ok {
			return
		}
		c.Set(string(domain.KeyUserID), claims.SubjectID)
		c.Next()
	}
}

func verifyBearer(c *gin.Context, tokens *auth.TokenService) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if authHeader == "" || tokenString == authHeader {
		response.Error(c, http.StatusUnauthorized, "No token provided. Authorization denied.", nil)
		c.Abort()
		return nil, false
	}

	claims, err := tokens.Verify(tokenString)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid token. Authorization denied.", nil)
		c.Abort()
		return nil, false
	}
	return claims, true
}
