package controllers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"house-of-rahaa/config"
	"house-of-rahaa/models"
)

type PaymentController struct{}

// VerifySignature recomputes the gateway callback signature as
// hex(HMAC-SHA256(secret, orderID|paymentID)) and compares it with the one
// the client relayed. An order is persisted only when this returns true.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return expected == signature
}

// CartTotal sums the client-supplied line prices. The catalog is not
// consulted: the persisted amount is whatever the cart claims.
func CartTotal(items []models.OrderProduct) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}
	return total
}

// Checkout godoc
// @Summary Open gateway order
// @Description Creates a Razorpay order for the submitted amount and returns its id plus the publishable key
// @Tags Payment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Amount"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /payment/checkout [post]
func (ctrl *PaymentController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Amount is required"})
		return
	}

	client := razorpay.NewClient(config.AppConfig.RazorpayKey, config.AppConfig.RazorpaySecret)

	data := map[string]interface{}{
		"amount":   req.Amount * 100,
		"currency": "INR",
		"receipt":  fmt.Sprintf("rahaa_rcpt_%s", uuid.NewString()),
	}

	order, err := client.Order.Create(data, nil)
	if err != nil {
		log.Println("Razorpay order error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Payment Creation Failed", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"order":   order,
		"key":     config.AppConfig.RazorpayKey,
	})
}

// PaymentVerification godoc
// @Summary Verify payment and persist order
// @Description Recomputes the callback signature; only an exact match creates an order document
// @Tags Payment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PaymentVerificationRequest true "Gateway callback payload plus cart"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /payment/paymentverification [post]
func (ctrl *PaymentController) PaymentVerification(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.PaymentVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid verification payload"})
		return
	}

	if !VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, config.AppConfig.RazorpaySecret) {
		c.JSON(400, gin.H{"success": false, "message": "Security Signature Mismatch"})
		return
	}

	totalAmount := CartTotal(req.Cart)

	now := time.Now()
	order := models.Order{
		Products: req.Cart,
		Payment: models.Payment{
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			Success:           true,
			Amount:            totalAmount,
		},
		Buyer:       userID,
		ShippedTo:   req.Address,
		GiftMessage: req.GiftMessage,
		Status:      "Not Process",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := models.Orders().InsertOne(context.Background(), order)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Verification Failed", "error": err.Error()})
		return
	}
	order.ID = res.InsertedID.(primitive.ObjectID)

	go func(buyerID primitive.ObjectID, orderID string, amount int, products []models.OrderProduct) {
		var buyer models.User
		if err := models.Users().FindOne(context.Background(), bson.M{"_id": buyerID}).Decode(&buyer); err != nil {
			log.Println("Buyer lookup for email failed:", err)
			return
		}
		svc, err := models.NewEmailService()
		if err != nil {
			log.Println("Email service unavailable:", err)
			return
		}
		if err := svc.SendOrderEmail(buyer.Email, orderID, amount, products); err != nil {
			log.Println("Acquisition email failed:", err)
		}
	}(userID, order.ID.Hex(), totalAmount, order.Products)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Acquisition Secured",
		"orderId": order.ID,
	})
}
