package controllers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/whalechillz-maslabs/whistler-journal/models"
	"github.com/whalechillz-maslabs/whistler-journal/services"
)

const (
	maxHEICSize  = 50 << 20 // 50 MiB, HEIC/HEIF only
	maxImageSize = 20 << 20 // 20 MiB

	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength   = 8
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
	".heif": true,
}

// UploadPhoto runs the upload pipeline for a single file: validate,
// normalize, store, extract, persist. The client loops over a batch and
// calls this once per file, so one failure never affects the others.
func (pc *PhotoController) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedMimeTypes[strings.ToLower(contentType)] && !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	limit := int64(maxImageSize)
	if services.IsHEIC(file.Filename, contentType) {
		limit = maxHEICSize
	}
	if file.Size > limit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read file"})
		return
	}

	// Best-effort HEIC transcode; on failure the original bytes go through.
	finalData, finalName, finalType := services.Normalize(data, file.Filename, contentType)

	filename, err := storageFilename(finalName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	key := "photos/" + filename

	ctx := c.Request.Context()
	if err := pc.Store.Put(ctx, key, finalData, finalType); err != nil {
		slog.Error("object store write failed", "key", key, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	tags, category := services.AnalyzeFilename(file.Filename)

	photo := models.Photo{
		Filename:     filename,
		OriginalName: file.Filename,
		FilePath:     key,
		FileSize:     file.Size,   // size and type of the original upload,
		MimeType:     contentType, // not the transcoded bytes
		Tags:         models.StringList(tags),
		Category:     category,
	}
	if w, h, ok := services.Dimensions(finalData); ok {
		photo.Width = &w
		photo.Height = &h
	}

	if err := pc.Catalog.Insert(&photo); err != nil {
		// Compensate: the object went in but the record did not, so take
		// the object back out before reporting the failure.
		if rmErr := pc.Store.Remove(ctx, key); rmErr != nil {
			slog.Warn("compensating delete failed, object leaked", "key", key, "error", rmErr)
		}
		slog.Error("catalog insert failed", "key", key, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo metadata"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    photo,
		"url":     pc.Store.PublicURL(key),
	})
}

// storageFilename builds a collision-resistant name:
// <unix-ms>-<base36 suffix><final extension>.
func storageFilename(finalName string) (string, error) {
	suffix, err := gonanoid.Generate(base36Alphabet, suffixLength)
	if err != nil {
		return "", fmt.Errorf("generate filename suffix: %w", err)
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, strings.ToLower(filepath.Ext(finalName))), nil
}
