package common

import "strings"

// MediaFileType groups uploads by their MIME major type.
type MediaFileType string

const (
	MediaFileTypeImage    MediaFileType = "image"
	MediaFileTypeVideo    MediaFileType = "video"
	MediaFileTypeAudio    MediaFileType = "audio"
	MediaFileTypeDocument MediaFileType = "document"
)

// String returns the string representation
func (mft MediaFileType) String() string {
	return string(mft)
}

// IsValid checks if the media file type is valid
func (mft MediaFileType) IsValid() bool {
	switch mft {
	case MediaFileTypeImage, MediaFileTypeVideo, MediaFileTypeAudio, MediaFileTypeDocument:
		return true
	}
	return false
}

// Dir is the plural folder name used in public file URLs, e.g. "images".
func (mft MediaFileType) Dir() string {
	return string(mft) + "s"
}

func DetectFileType(mimeType string) MediaFileType {
	lowerMimeType := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(lowerMimeType, "image/"):
		return MediaFileTypeImage
	case strings.HasPrefix(lowerMimeType, "video/"):
		return MediaFileTypeVideo
	case strings.HasPrefix(lowerMimeType, "audio/"):
		return MediaFileTypeAudio
	}
	return MediaFileTypeDocument
}
