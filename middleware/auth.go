package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"house-of-rahaa/models"
	"house-of-rahaa/utils"
)

// AuthMiddleware verifies the session token carried in the Authorization
// header. The client sends the raw token; a Bearer prefix is tolerated.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Login Required (Token Missing)",
			})
			c.Abort()
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid Token or Session Expired",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// AdminMiddleware gates admin routes with a fresh role lookup. The role is
// read from the users collection rather than the token, so a demoted admin
// loses access before their token expires.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid session identity",
			})
			c.Abort()
			return
		}

		var user models.User
		err = models.Users().FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
		if err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Gallery vault is temporarily locked",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
