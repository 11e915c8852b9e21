package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"house-of-rahaa/controllers"
	"house-of-rahaa/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := &controllers.AuthController{}
	wishlistCtrl := &controllers.WishlistController{}
	orderCtrl := &controllers.OrderController{}
	categoryCtrl := &controllers.CategoryController{}
	productCtrl := &controllers.ProductController{}
	paymentCtrl := &controllers.PaymentController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to House of Rahaa API", "status": "Active"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)

		signedIn := auth.Group("/")
		signedIn.Use(middleware.AuthMiddleware())
		{
			signedIn.GET("/user-auth", authCtrl.UserAuth)
			signedIn.PUT("/profile", authCtrl.UpdateProfile)
			signedIn.GET("/orders", orderCtrl.GetOrders)
			signedIn.POST("/add-to-vault", wishlistCtrl.AddToVault)
			signedIn.GET("/get-wishlist", wishlistCtrl.GetWishlist)
			signedIn.DELETE("/remove-from-vault/:pid", wishlistCtrl.RemoveFromVault)
		}

		admin := auth.Group("/")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.GET("/admin-auth", authCtrl.AdminAuth)
			admin.GET("/all-orders", orderCtrl.GetAllOrders)
			admin.PUT("/order-status/:orderId", orderCtrl.UpdateOrderStatus)
			admin.GET("/test", authCtrl.Test)
		}
	}

	category := v1.Group("/category")
	{
		category.GET("/get-category", categoryCtrl.GetCategories)
		category.GET("/single-category/:slug", categoryCtrl.GetSingleCategory)

		admin := category.Group("/")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/create-category", categoryCtrl.CreateCategory)
			admin.PUT("/update-category/:id", categoryCtrl.UpdateCategory)
			admin.DELETE("/delete-category/:id", categoryCtrl.DeleteCategory)
		}
	}

	product := v1.Group("/product")
	{
		product.GET("/get-product", productCtrl.GetProducts)
		product.GET("/get-product/:slug", productCtrl.GetSingleProduct)
		product.GET("/related-product/:pid/:cid", productCtrl.RelatedProducts)

		admin := product.Group("/")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/add-product", productCtrl.AddProduct)
			admin.PUT("/update-product/:pid", productCtrl.UpdateProduct)
			admin.DELETE("/delete-product/:pid", productCtrl.DeleteProduct)
			admin.POST("/upload-image", productCtrl.UploadImage)
		}
	}

	payment := v1.Group("/payment")
	payment.Use(middleware.AuthMiddleware())
	{
		payment.POST("/checkout", paymentCtrl.Checkout)
		payment.POST("/paymentverification", paymentCtrl.PaymentVerification)
	}
}
