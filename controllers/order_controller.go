package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"house-of-rahaa/models"
)

type OrderController struct{}

// GetOrders godoc
// @Summary Get own orders
// @Description Buyer's order ledger, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := models.Orders().Find(context.Background(), bson.M{"buyer": userID}, opts)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error while getting orders", "error": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	orders := []models.Order{}
	if err := cursor.All(context.Background(), &orders); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error while getting orders", "error": err.Error()})
		return
	}

	c.JSON(200, orders)
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Global order ledger with buyer identity joined on (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/all-orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := models.Orders().Find(context.Background(), bson.M{}, opts)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error while getting all orders", "error": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	orders := []models.Order{}
	if err := cursor.All(context.Background(), &orders); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error while getting all orders", "error": err.Error()})
		return
	}

	buyers := ctrl.lookupBuyers(orders)

	result := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		entry := gin.H{
			"_id":         order.ID,
			"products":    order.Products,
			"payment":     order.Payment,
			"buyer":       buyers[order.Buyer],
			"shippedTo":   order.ShippedTo,
			"giftMessage": order.GiftMessage,
			"status":      order.Status,
			"createdAt":   order.CreatedAt,
			"updatedAt":   order.UpdatedAt,
		}
		result = append(result, entry)
	}

	c.JSON(200, result)
}

func (ctrl *OrderController) lookupBuyers(orders []models.Order) map[primitive.ObjectID]gin.H {
	ids := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, o := range orders {
		if !seen[o.Buyer] {
			seen[o.Buyer] = true
			ids = append(ids, o.Buyer)
		}
	}

	buyers := map[primitive.ObjectID]gin.H{}
	if len(ids) == 0 {
		return buyers
	}

	cursor, err := models.Users().Find(context.Background(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Println("Buyer lookup failed:", err)
		return buyers
	}
	defer cursor.Close(context.Background())

	var users []models.User
	if err := cursor.All(context.Background(), &users); err != nil {
		log.Println("Buyer lookup failed:", err)
		return buyers
	}

	for _, u := range users {
		buyers[u.ID] = gin.H{"_id": u.ID, "name": u.Name, "email": u.Email}
	}
	return buyers
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Moves an order to any status in the closed set and dispatches logistics mails (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderId path string true "Order id"
// @Param request body models.OrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/order-status/{orderId} [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order id"})
		return
	}

	var req models.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		c.JSON(400, gin.H{"success": false, "message": "Unknown order status"})
		return
	}

	var order models.Order
	err = models.Orders().FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
		mongoReturnAfter(),
	).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Status Index Failure", "error": err.Error()})
		return
	}

	var buyer models.User
	if err := models.Users().FindOne(context.Background(), bson.M{"_id": order.Buyer}).Decode(&buyer); err == nil && buyer.Email != "" {
		go func(email, status, orderID string) {
			svc, err := models.NewEmailService()
			if err != nil {
				log.Println("Email service unavailable:", err)
				return
			}
			if err := svc.SendStatusEmail(email, status, orderID); err != nil {
				log.Println("Status email failed:", err)
			}
		}(buyer.Email, req.Status, order.ID.Hex())
	}

	c.JSON(200, order)
}
