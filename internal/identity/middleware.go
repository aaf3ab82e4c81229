package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header carries the id of the user making the request.
// The value is trusted as given; there is no authentication layer.
const Header = "X-Sharer-User-Id"

// Required is a Gin middleware that extracts the sharer user id header.
// Requests without a valid UUID in the header are rejected.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing X-Sharer-User-Id header",
			})
			return
		}

		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid X-Sharer-User-Id header",
			})
			return
		}

		// Store user info into Gin context for later handlers.
		c.Set("userID", id)

		c.Next()
	}
}
