package main

import (
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/whalechillz-maslabs/whistler-journal/config"
	"github.com/whalechillz-maslabs/whistler-journal/controllers"
	"github.com/whalechillz-maslabs/whistler-journal/database"
	"github.com/whalechillz-maslabs/whistler-journal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	store, err := services.NewMinioStore(cfg.StorageEndpoint, cfg.StorageAccessKey, cfg.StorageSecretKey, cfg.StorageUseSSL, cfg.StoragePublicURL)
	if err != nil {
		log.Fatal("Failed to connect to object storage: ", err)
	}

	photos := controllers.NewPhotoController(services.NewCatalog(db), store)

	r := gin.Default()
	RegisterRoutes(r, photos)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server exited: ", err)
	}
}

// RegisterRoutes wires the journal pages and the gallery API.
func RegisterRoutes(r *gin.Engine, photos *controllers.PhotoController) {
	r.GET("/", controllers.HomePage)
	r.GET("/expenses", controllers.ExpensesPage)
	r.GET("/gallery", controllers.GalleryPage)

	r.GET("/photos", photos.ListPhotos)
	r.POST("/photos", photos.UpdatePhoto)
	r.DELETE("/photos", photos.DeletePhoto)
	r.POST("/upload", photos.UploadPhoto)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
