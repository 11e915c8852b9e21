package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"house-of-rahaa/models"
)

type WishlistController struct{}

// AddToVault godoc
// @Summary Add product to vault
// @Description Adds a product reference to the user's wishlist, once
// @Tags Vault
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.WishlistRequest true "Product id"
// @Success 200 {object} models.Response
// @Router /auth/add-to-vault [post]
func (ctrl *WishlistController) AddToVault(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Product id is required"})
		return
	}

	pid, err := primitive.ObjectIDFromHex(req.PID)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	var user models.User
	err = models.Users().FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"wishlist": pid}},
		mongoReturnAfter(),
	).Decode(&user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error adding to vault", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Added to Vault", "wishlist": user.Wishlist})
}

// RemoveFromVault godoc
// @Summary Remove product from vault
// @Tags Vault
// @Security BearerAuth
// @Produce json
// @Param pid path string true "Product id"
// @Success 200 {object} models.Response
// @Router /auth/remove-from-vault/{pid} [delete]
func (ctrl *WishlistController) RemoveFromVault(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pid, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	var user models.User
	err = models.Users().FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"wishlist": pid}},
		mongoReturnAfter(),
	).Decode(&user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error removing from vault", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Removed from Vault", "wishlist": user.Wishlist})
}

// GetWishlist godoc
// @Summary Get vault contents
// @Description Returns the user's saved products; dangling references are dropped
// @Tags Vault
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/get-wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user models.User
	err := models.Users().FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error getting vault items", "error": err.Error()})
		return
	}

	products := []models.Product{}
	if len(user.Wishlist) > 0 {
		cursor, err := models.Products().Find(context.Background(), bson.M{"_id": bson.M{"$in": user.Wishlist}})
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Error getting vault items", "error": err.Error()})
			return
		}
		defer cursor.Close(context.Background())
		if err := cursor.All(context.Background(), &products); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Error getting vault items", "error": err.Error()})
			return
		}
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.JSON(200, gin.H{"success": true, "wishlist": products})
}
