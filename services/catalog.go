package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/whalechillz-maslabs/whistler-journal/models"
)

// Catalog wraps the gallery_photos table. The gorm handle is injected so
// tests can run against an in-memory SQLite.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Insert stores a new photo record. The id and uploaded_at are assigned on
// insert and are final.
func (c *Catalog) Insert(photo *models.Photo) error {
	return c.db.Create(photo).Error
}

// List returns photos newest-first, optionally filtered by category and a
// search term. The search matches when the original name contains the term
// (case-insensitive) or the term is an element of the tag set — the two
// strategies are OR'd.
func (c *Catalog) List(category, search string) ([]models.Photo, error) {
	query := c.db.Order("uploaded_at DESC")

	if category != "" {
		query = query.Where("category = ?", category)
	}

	if search != "" {
		// Tags are stored as a JSON array, so each element sits between
		// double quotes; wrapping the term in quotes matches whole elements
		// only.
		namePattern := "%" + strings.ToLower(search) + "%"
		tagPattern := `%"` + search + `"%`
		query = query.Where("LOWER(original_name) LIKE ? OR tags LIKE ?", namePattern, tagPattern)
	}

	photos := []models.Photo{}
	if err := query.Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// Update replaces the tags and category of an existing record and returns
// the updated row. Concurrent edits are last-write-wins.
func (c *Catalog) Update(id string, tags []string, category string) (*models.Photo, error) {
	var photo models.Photo
	if err := c.db.Where("id = ?", id).First(&photo).Error; err != nil {
		return nil, err
	}

	photo.Tags = models.StringList(tags)
	photo.Category = category
	if err := c.db.Model(&photo).Updates(map[string]interface{}{
		"tags":     photo.Tags,
		"category": photo.Category,
	}).Error; err != nil {
		return nil, err
	}

	return &photo, nil
}

// Delete removes a photo record and returns the deleted row so the caller
// can reclaim the stored object. Returns gorm.ErrRecordNotFound for an
// unknown id.
func (c *Catalog) Delete(id string) (*models.Photo, error) {
	var photo models.Photo
	if err := c.db.Where("id = ?", id).First(&photo).Error; err != nil {
		return nil, err
	}

	if err := c.db.Delete(&photo).Error; err != nil {
		return nil, err
	}

	return &photo, nil
}

// DeleteResult reports how far a delete got. The catalog row is always gone
// when one of these exists; Reclaimed says whether the storage object came
// off too, so a cleanup sweep could later reconcile leaked objects.
type DeleteResult struct {
	Photo     models.Photo
	Reclaimed bool
}
