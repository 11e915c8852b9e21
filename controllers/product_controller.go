package controllers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"house-of-rahaa/models"
)

type ProductController struct{}

const productListCacheKey = "products_list_latest"

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// categoryMap resolves category documents for a set of products in one query.
func categoryMap(products []models.Product) map[primitive.ObjectID]models.Category {
	ids := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			ids = append(ids, p.Category)
		}
	}

	categories := map[primitive.ObjectID]models.Category{}
	if len(ids) == 0 {
		return categories
	}

	cursor, err := models.Categories().Find(context.Background(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return categories
	}
	defer cursor.Close(context.Background())

	var list []models.Category
	if err := cursor.All(context.Background(), &list); err != nil {
		return categories
	}
	for _, cat := range list {
		categories[cat.ID] = cat
	}
	return categories
}

func productView(p models.Product, categories map[primitive.ObjectID]models.Category) gin.H {
	view := gin.H{
		"_id":         p.ID,
		"name":        p.Name,
		"slug":        p.Slug,
		"description": p.Description,
		"price":       p.Price,
		"quantity":    p.Quantity,
		"image":       p.Image,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
	if cat, ok := categories[p.Category]; ok {
		view["category"] = cat
	} else {
		view["category"] = p.Category
	}
	return view
}

// AddProduct godoc
// @Summary Add product
// @Description Archive a new artifact (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /product/add-product [post]
func (ctrl *ProductController) AddProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	switch {
	case req.Name == "":
		c.JSON(400, gin.H{"message": "Name is Required"})
		return
	case req.Description == "":
		c.JSON(400, gin.H{"message": "Description is Required"})
		return
	case req.Price == 0:
		c.JSON(400, gin.H{"message": "Price is Required"})
		return
	case req.Category == "":
		c.JSON(400, gin.H{"message": "Category is Required"})
		return
	case req.Image == "":
		c.JSON(400, gin.H{"message": "Image URL is Required"})
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		c.JSON(400, gin.H{"message": "Category is Required"})
		return
	}

	now := time.Now()
	product := models.Product{
		Name:          req.Name,
		Slug:          slug.Make(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		Category:      categoryID,
		Quantity:      req.Stock,
		Image:         req.Image,
		ImagePublicID: req.ImagePublicID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := models.Products().InsertOne(context.Background(), product)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Database Error", "error": err.Error()})
		return
	}
	product.ID = res.InsertedID.(primitive.ObjectID)

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Asset Archived", "product": product})
}

// GetProducts godoc
// @Summary Get all products
// @Description Latest 12 artifacts, category joined, served from cache when warm
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /product/get-product [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, productListCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(12)
	cursor, err := models.Products().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error Fetching Products", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error Fetching Products", "error": err.Error()})
		return
	}

	categories := categoryMap(products)
	views := make([]gin.H, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p, categories))
	}

	response := gin.H{
		"success":    true,
		"countTotal": len(views),
		"message":    "All Products Fetched",
		"products":   views,
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, productListCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// GetSingleProduct godoc
// @Summary Get product by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /product/get-product/{slug} [get]
func (ctrl *ProductController) GetSingleProduct(c *gin.Context) {
	var product models.Product
	err := models.Products().FindOne(context.Background(), bson.M{"slug": c.Param("slug")}).Decode(&product)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	categories := categoryMap([]models.Product{product})

	c.JSON(200, gin.H{
		"success": true,
		"message": "Single Product Fetched",
		"product": productView(product, categories),
	})
}

// UpdateProduct godoc
// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param pid path string true "Product id"
// @Param request body models.CreateProductRequest true "Product"
// @Success 200 {object} models.Response
// @Router /product/update-product/{pid} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	pid, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		update["name"] = req.Name
		update["slug"] = slug.Make(req.Name)
	}
	if req.Description != "" {
		update["description"] = req.Description
	}
	if req.Price != 0 {
		update["price"] = req.Price
	}
	if req.Stock != 0 {
		update["quantity"] = req.Stock
	}
	if req.Image != "" {
		update["image"] = req.Image
	}
	if req.ImagePublicID != "" {
		update["imagePublicId"] = req.ImagePublicID
	}
	if req.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			c.JSON(400, gin.H{"message": "Category is Required"})
			return
		}
		update["category"] = categoryID
	}

	var product models.Product
	err = models.Products().FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": pid},
		bson.M{"$set": update},
		mongoReturnAfter(),
	).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error Updating Product", "error": err.Error()})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product Updated", "product": product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param pid path string true "Product id"
// @Success 200 {object} models.Response
// @Router /product/delete-product/{pid} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	pid, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	var product models.Product
	err = models.Products().FindOneAndDelete(context.Background(), bson.M{"_id": pid}).Decode(&product)
	if err != nil && err != mongo.ErrNoDocuments {
		c.JSON(500, gin.H{"success": false, "message": "Error Deleting Product", "error": err.Error()})
		return
	}

	// The hosted image dies with the product. Best effort only: a failed
	// destroy leaves an orphaned asset, never a failed response.
	if product.ImagePublicID != "" {
		go func(publicID string) {
			svc, err := models.NewCloudinaryService()
			if err != nil {
				log.Println("Image service unavailable:", err)
				return
			}
			if err := svc.DeleteImage(context.Background(), publicID); err != nil {
				log.Println("Image cleanup failed:", err)
			}
		}(product.ImagePublicID)
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product Deleted"})
}

// RelatedProducts godoc
// @Summary Related products
// @Description Up to four artifacts from the same category, excluding the one shown
// @Tags Products
// @Produce json
// @Param pid path string true "Product id"
// @Param cid path string true "Category id"
// @Success 200 {object} models.Response
// @Router /product/related-product/{pid}/{cid} [get]
func (ctrl *ProductController) RelatedProducts(c *gin.Context) {
	pid, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}
	cid, err := primitive.ObjectIDFromHex(c.Param("cid"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	opts := options.Find().SetLimit(4)
	cursor, err := models.Products().Find(
		context.Background(),
		bson.M{"category": cid, "_id": bson.M{"$ne": pid}},
		opts,
	)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Error Getting Related Products", "error": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	products := []models.Product{}
	if err := cursor.All(context.Background(), &products); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Error Getting Related Products", "error": err.Error()})
		return
	}

	categories := categoryMap(products)
	views := make([]gin.H, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p, categories))
	}

	c.JSON(200, gin.H{"success": true, "products": views})
}

// UploadImage godoc
// @Summary Upload product image
// @Description Uploads an image to Cloudinary and returns its URL (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Router /product/upload-image [post]
func (ctrl *ProductController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file required"})
		return
	}

	svc, err := models.NewCloudinaryService()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Image service unavailable", "error": err.Error()})
		return
	}

	if err := svc.ValidateImageFile(fileHeader); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to read upload", "error": err.Error()})
		return
	}
	defer file.Close()

	url, publicID, err := svc.UploadImage(c.Request.Context(), file, fileHeader.Filename, "products")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Upload failed", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "url": url, "public_id": publicID})
}
