package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shopnest/config"
	"shopnest/controllers"
	"shopnest/database"
	"shopnest/middleware"
	"shopnest/repository"
	"shopnest/routes"
	"shopnest/services"
)

func main() {

	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	database.ConnectMongo()
	database.InitCollections()
	database.EnsureIndexes()

	services.InitializePayment(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret)

	if err := services.InitializeUploads(config.AppConfig.CloudinaryURL); err != nil {
		log.Println("Cloudinary disabled:", err)
	}
	if err := services.InitializeMailer(config.AppConfig.SendgridAPIKey, config.AppConfig.MailFromName, config.AppConfig.MailFromAddress); err != nil {
		log.Println("Mailer disabled:", err)
	}

	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.CORS())

	mc := controllers.NewMergeController(
		repository.NewMongoCartRepository(database.CartCollection),
		repository.NewMongoWishlistRepository(database.WishlistCollection),
	)
	routes.RegisterRoutes(r, mc)

	r.Run(":" + config.AppConfig.ServerPort)
}
