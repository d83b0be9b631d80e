package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"
)

// Context keys under which the middleware stores the resolved identity.
const (
	ContextUserID = "userID"
	ContextUser   = "user"
)

// UserFinder resolves user records for the middleware.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (adapters).
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// authenticate validates the bearer token, re-resolves the referenced user
// from the store and attaches the identity to the context. On failure it
// aborts the request and returns nil. A token whose user has since been
// deleted is rejected the same way as a forged or expired one; the failure
// modes are deliberately indistinguishable to the caller.
func authenticate(c *gin.Context, tokens TokenService, users UserFinder) *entity.User {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided, access denied"})
		return nil
	}
	tokenStr := strings.TrimPrefix(auth, "Bearer ")

	userID, err := tokens.Verify(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
		return nil
	}

	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
		return nil
	}

	c.Set(ContextUserID, user.ID)
	c.Set(ContextUser, user)
	return user
}

// AuthRequired returns a Gin middleware that authenticates the request and
// rejects it with 401 when the token or its user cannot be resolved.
func AuthRequired(tokens TokenService, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, tokens, users)
	}
}

// AdminRequired authenticates the request and then authorizes for the admin
// role. The role comes from the freshly fetched user record, never from the
// request context or the token claims, so revoking admin rights takes effect
// on the very next request.
func AdminRequired(tokens TokenService, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := authenticate(c, tokens, users)
		if user == nil {
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":  "Access denied. Admin privileges required.",
				"userRole": user.Role,
			})
			return
		}
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
