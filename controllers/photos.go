package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/whalechillz-maslabs/whistler-journal/models"
	"github.com/whalechillz-maslabs/whistler-journal/services"
)

// PhotoController carries the injected store handles; no package-level state.
type PhotoController struct {
	Catalog *services.Catalog
	Store   services.ObjectStore
}

func NewPhotoController(catalog *services.Catalog, store services.ObjectStore) *PhotoController {
	return &PhotoController{Catalog: catalog, Store: store}
}

// photoResponse mirrors the catalog row but adds the resolved public URL.
type photoResponse struct {
	models.Photo
	URL string `json:"url"`
}

// ListPhotos returns photos newest-first, filterable by category and search term
func (pc *PhotoController) ListPhotos(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	photos, err := pc.Catalog.List(category, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch photos"})
		return
	}

	response := []photoResponse{} // [] instead of null for empty result
	for _, p := range photos {
		response = append(response, photoResponse{
			Photo: p,
			URL:   pc.Store.PublicURL(p.FilePath),
		})
	}

	c.JSON(http.StatusOK, gin.H{"photos": response})
}

// UpdatePhoto replaces the tags and category of an existing photo
func (pc *PhotoController) UpdatePhoto(c *gin.Context) {
	var input struct {
		ID       string   `json:"id" binding:"required"`
		Tags     []string `json:"tags"`
		Category string   `json:"category"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	photo, err := pc.Catalog.Update(input.ID, input.Tags, input.Category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "photo": photo})
}

// DeletePhoto removes the catalog row first, then best-effort removes the
// stored object. A storage-side failure is logged, never surfaced; the
// user-visible delete must not block on it.
func (pc *PhotoController) DeletePhoto(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	photo, err := pc.Catalog.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	result := services.DeleteResult{Photo: *photo, Reclaimed: true}
	if err := pc.Store.Remove(c.Request.Context(), photo.FilePath); err != nil {
		// The row is gone; the object is leaked until a sweep reclaims it.
		result.Reclaimed = false
		slog.Warn("storage removal failed after catalog delete",
			"id", result.Photo.ID, "key", result.Photo.FilePath, "reclaimed", result.Reclaimed, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
