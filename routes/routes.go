package routes

import (
	"github.com/gin-gonic/gin"

	"shopnest/controllers"
	"shopnest/middleware"
)

func RegisterRoutes(r *gin.Engine, mc *controllers.MergeController) {

	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
		api.POST("/logout", controllers.Logout)

		api.GET("/products", controllers.GetProducts)
		api.GET("/products/:id", controllers.GetProduct)
		api.GET("/search", controllers.SearchProducts)

		api.POST("/query", controllers.SubmitQuery)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/cart/save", controllers.SaveCart)
			protected.GET("/cart/fetch/:userid", controllers.FetchCart)
			protected.DELETE("/cart/delete/:userid/:productId", controllers.DeleteCartItem)
			protected.POST("/cart/merge", mc.MergeGuestCart)

			protected.POST("/wishlist/save/:userid/:productId", controllers.SaveWishlistItem)
			protected.GET("/wishlist/fetch/:userid", controllers.FetchWishlist)
			protected.DELETE("/wishlist/delete/:userid/:productId", controllers.DeleteWishlistItem)
			protected.POST("/wishlist/merge", mc.MergeGuestWishlist)

			protected.GET("/users/:id", controllers.GetUser)
			protected.PUT("/users/:id", controllers.EditProfile)
			protected.PUT("/users/:id/password", controllers.ChangePassword)
			protected.POST("/users/:id/addresses", controllers.AddAddress)
			protected.PUT("/users/:id/addresses/:addressId", controllers.UpdateAddress)
			protected.PUT("/users/:id/addresses/:addressId/default", controllers.SetDefaultAddress)
			protected.DELETE("/deleteAddress/:userid/:addressid", controllers.DeleteAddress)
			protected.DELETE("/deleteAccount/:userid", controllers.DeleteAccount)

			protected.POST("/orders", controllers.CreateOrder)
			protected.POST("/orders/verify", controllers.VerifyOrder)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.GET("/queries", controllers.GetQueries)
				admin.GET("/queries/:id", controllers.GetQuery)
				admin.DELETE("/queries/:id", controllers.DeleteQuery)
				admin.POST("/queries/reply", controllers.ReplyQuery)

				admin.POST("/products", controllers.AddProduct)
				admin.GET("/products", controllers.GetProductsAdmin)
				admin.GET("/products/:id", controllers.GetProductAdmin)
				admin.PUT("/products/:id", controllers.EditProduct)
				admin.DELETE("/products/:id", controllers.DeleteProduct)
			}
		}
	}
}
