package common

import (
	"mime"
	"path"
	"strings"
)

// MediaFileType is the kind of an attachment referenced by a publication.
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// DetectFileType maps a MIME type to a media kind, falling back to image.
func DetectFileType(mimeType string) MediaFileType {
	lowerMimeType := strings.ToLower(mimeType)
	if strings.HasPrefix(lowerMimeType, "video/") {
		return MediaFileTypeVideo
	}
	return MediaFileTypeImage
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true, ".mkv": true, ".avi": true, ".m4v": true,
}

// DetectFileTypeByName guesses the media kind from a file name or URL.
func DetectFileTypeByName(name string) MediaFileType {
	ext := strings.ToLower(path.Ext(name))
	if videoExtensions[ext] {
		return MediaFileTypeVideo
	}
	return DetectFileType(mime.TypeByExtension(ext))
}
