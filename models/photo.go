package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a tag set stored as a JSON text column (SQLite has no array type).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
}

// Photo is one row in gallery_photos, one per stored image.
type Photo struct {
	ID           string     `gorm:"primaryKey;type:text" json:"id"` // SQLite uses text for UUID
	Filename     string     `json:"filename"`                       // generated storage name
	OriginalName string     `json:"original_name"`                  // name as uploaded, drives tagging
	FilePath     string     `gorm:"index" json:"file_path"`         // bucket key, photos/<filename>
	FileSize     int64      `json:"file_size"`                      // size of the original upload
	MimeType     string     `json:"mime_type"`                      // type of the original upload
	Width        *int       `json:"width,omitempty"`
	Height       *int       `json:"height,omitempty"`
	ExifData     *string    `gorm:"type:text" json:"exif_data,omitempty"`     // reserved, not populated yet
	LocationData *string    `gorm:"type:text" json:"location_data,omitempty"` // reserved, not populated yet
	Tags         StringList `gorm:"type:text" json:"tags"`
	Category     string     `gorm:"index" json:"category"`
	UploadedAt   time.Time  `gorm:"index" json:"uploaded_at"`
}

func (Photo) TableName() string {
	return "gallery_photos"
}

// BeforeCreate assigns the id and upload timestamp on insert.
func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.UploadedAt.IsZero() {
		p.UploadedAt = time.Now().UTC()
	}
	return nil
}
