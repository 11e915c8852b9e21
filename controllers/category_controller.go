package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"house-of-rahaa/models"
)

type CategoryController struct{}

// CreateCategory godoc
// @Summary Create category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /category/create-category [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	var existing models.Category
	err := models.Categories().FindOne(context.Background(), bson.M{"name": req.Name}).Decode(&existing)
	if err == nil {
		c.JSON(200, gin.H{"success": false, "message": "Category Already Exists"})
		return
	}

	category := models.Category{Name: req.Name, Slug: slug.Make(req.Name)}
	res, err := models.Categories().InsertOne(context.Background(), category)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error in Category", "error": err.Error()})
		return
	}
	category.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(201, gin.H{"success": true, "message": "New category created", "category": category})
}

// UpdateCategory godoc
// @Summary Update category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Router /category/update-category/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	var category models.Category
	err = models.Categories().FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": req.Name, "slug": slug.Make(req.Name)}},
		mongoReturnAfter(),
	).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(404, gin.H{"success": false, "message": "Category not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error while updating category", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category Updated Successfully", "category": category})
}

// GetCategories godoc
// @Summary Get all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /category/get-category [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	cursor, err := models.Categories().Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error while getting all categories", "error": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	categories := []models.Category{}
	if err := cursor.All(context.Background(), &categories); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error while getting all categories", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "All Categories List", "category": categories})
}

// GetSingleCategory godoc
// @Summary Get category by slug
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /category/single-category/{slug} [get]
func (ctrl *CategoryController) GetSingleCategory(c *gin.Context) {
	var category models.Category
	err := models.Categories().FindOne(context.Background(), bson.M{"slug": c.Param("slug")}).Decode(&category)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Get Single Category Successfully", "category": category})
}

// DeleteCategory godoc
// @Summary Delete category
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} models.Response
// @Router /category/delete-category/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	if _, err := models.Categories().DeleteOne(context.Background(), bson.M{"_id": id}); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error while deleting category", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category Deleted Successfully"})
}
