package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CurrentUserID returns the authenticated user's id from the gin context
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.GetString("user_id")
	if idStr == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CurrentClaims returns the parsed token claims from the gin context
func CurrentClaims(c *gin.Context) (*AuthClaims, bool) {
	value, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*AuthClaims)
	return claims, ok
}
