package services

import (
	"bytes"
	"image/jpeg"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jdeng/goheif"
)

// Transcoded JPEGs use 0.8 of maximum quality.
const jpegQuality = 80

// IsHEIC reports whether the declared content type or the filename extension
// indicates the HEIC/HEIF container.
func IsHEIC(name, contentType string) bool {
	switch strings.ToLower(contentType) {
	case "image/heic", "image/heif":
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".heic", ".heif":
		return true
	}
	return false
}

// Normalize transcodes HEIC input to JPEG and swaps the extension and content
// type accordingly. Conversion is strictly best-effort: on any failure the
// input comes back unchanged, and non-HEIC input passes through untouched.
func Normalize(data []byte, name, contentType string) ([]byte, string, string) {
	if !IsHEIC(name, contentType) {
		return data, name, contentType
	}

	img, err := goheif.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Warn("HEIC decode failed, keeping original", "file", name, "error", err)
		return data, name, contentType
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		slog.Warn("JPEG encode failed, keeping original", "file", name, "error", err)
		return data, name, contentType
	}

	newName := strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	return buf.Bytes(), newName, "image/jpeg"
}
