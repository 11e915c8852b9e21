package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateProductRequest struct {
	Name          string `json:"name" form:"name"`
	Description   string `json:"description" form:"description"`
	Price         int    `json:"price" form:"price"`
	Category      string `json:"category" form:"category"`
	Stock         int    `json:"stock" form:"stock"`
	Image         string `json:"image" form:"image"`
	ImagePublicID string `json:"image_public_id" form:"image_public_id"`
}

type WishlistRequest struct {
	PID string `json:"pid" binding:"required"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CheckoutRequest struct {
	Amount int `json:"amount"`
}

type PaymentVerificationRequest struct {
	RazorpayOrderID   string         `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string         `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string         `json:"razorpay_signature" binding:"required"`
	Cart              []OrderProduct `json:"cart" binding:"required"`
	Address           string         `json:"address"`
	GiftMessage       string         `json:"giftMessage"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
