package dbmysql

import (
	"fmt"
	"strings"
)

// MediaItem is an attachment descriptor owned by a publication. The binary lives elsewhere.
type MediaItem struct {
	ID            string `gorm:"primaryKey;size:36;column:id" json:"id"`
	PublicationID string `gorm:"column:publication_id;size:36;not null;index" json:"publication_id"`
	Type          string `gorm:"column:type;size:10;not null" json:"type"` // image, video
	URL           string `gorm:"column:url;size:500;not null" json:"url"`
	OriginalName  string `gorm:"column:original_name;size:255" json:"original_name"`
	Size          int64  `gorm:"column:size" json:"size"`
	OrderPosition int    `gorm:"column:order_position;not null" json:"order_position"`
	Width         int    `gorm:"column:width" json:"width"`
	Height        int    `gorm:"column:height" json:"height"`
}

func (MediaItem) TableName() string {
	return "publication_media"
}

// MediaURL builds the public URL of an uploaded publication file. Absolute URLs pass through.
func MediaURL(publicURL, fileName string) string {
	if fileName == "" {
		return ""
	}
	if strings.HasPrefix(fileName, "http://") || strings.HasPrefix(fileName, "https://") {
		return fileName
	}
	return fmt.Sprintf("%s/uploads/publications/%s", strings.TrimRight(publicURL, "/"), strings.TrimLeft(fileName, "/"))
}
