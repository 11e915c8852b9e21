package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"house-of-rahaa/models"
	"house-of-rahaa/utils"
)

type AuthController struct{}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid session identity"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// Register godoc
// @Summary Register new user
// @Description Register a new collector account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	var existing models.User
	err := models.Users().FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		c.JSON(200, gin.H{"success": false, "message": "Already Registered, please login"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error in Registration", "error": err.Error()})
		return
	}

	now := time.Now()
	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      models.RoleUser,
		Wishlist:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := models.Users().InsertOne(context.Background(), user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error in Registration", "error": err.Error()})
		return
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	go func(email, name string) {
		svc, err := models.NewEmailService()
		if err != nil {
			log.Println("Email service unavailable:", err)
			return
		}
		if err := svc.SendWelcomeEmail(email, name); err != nil {
			log.Println("Welcome email failed:", err)
		}
	}(user.Email, user.Name)

	c.JSON(201, gin.H{
		"success": true,
		"message": "User Registered Successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password, returns a 7-day session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	var user models.User
	err := models.Users().FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Email is not registered"})
		return
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		c.JSON(200, gin.H{"success": false, "message": "Invalid Password"})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error in login", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successfully",
		"user": gin.H{
			"_id":     user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"phone":   user.Phone,
			"address": user.Address,
			"role":    user.Role,
		},
		"token": token,
	})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Partially update name, password, phone or address
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /auth/profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Password != "" && len(req.Password) < 6 {
		c.JSON(400, gin.H{"success": false, "message": "Password must be at least 6 characters long"})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Address != "" {
		update["address"] = req.Address
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Error while updating profile", "error": err.Error()})
			return
		}
		update["password"] = hash
	}

	var updated models.User
	err := models.Users().FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$set": update},
		mongoReturnAfter(),
	).Decode(&updated)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Error while updating profile", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile Updated Successfully", "updatedUser": updated})
}

// UserAuth godoc
// @Summary Session check
// @Description Confirms the session token is still valid
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/user-auth [get]
func (ctrl *AuthController) UserAuth(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true})
}

// AdminAuth godoc
// @Summary Admin session check
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/admin-auth [get]
func (ctrl *AuthController) AdminAuth(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true})
}

func (ctrl *AuthController) Test(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Vault Protocol: Secure Access Granted"})
}
