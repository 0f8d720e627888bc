package domain

import (
	"strings"
)

// Image is a stored image path.
type Image struct {
	path string
}

func NewImage(path string) (Image, error) {
	if strings.TrimSpace(path) == "" {
		return Image{}, newValidationError("image", []FieldError{{Field: "path", Message: "is required"}})
	}
	return Image{path: path}, nil
}

func (i Image) Path() string {
	return i.path
}

type MediaStatus int

const (
	MediaStatusPending MediaStatus = iota
	MediaStatusProcessing
	MediaStatusComplete
)

func (s MediaStatus) String() string {
	switch s {
	case MediaStatusPending:
		return "pending"
	case MediaStatusProcessing:
		return "processing"
	case MediaStatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

func (s MediaStatus) valid() bool {
	return s >= MediaStatusPending && s <= MediaStatusComplete
}

type MediaType int

const (
	MediaTypeVideo MediaType = iota
	MediaTypeTrailer
)

func (t MediaType) String() string {
	if t == MediaTypeTrailer {
		return "trailer"
	}
	return "video"
}

// Media is a stored audio/video file and its transcoding state. To change
// status or encodedPath, build a new Media.
type Media struct {
	filePath    string
	status      MediaStatus
	mediaType   MediaType
	encodedPath string
}

func NewMedia(filePath string, status MediaStatus, mediaType MediaType, encodedPath string) (Media, error) {
	var checks fieldChecks
	if strings.TrimSpace(filePath) == "" {
		checks.add("file_path", "is required")
	}
	if !status.valid() {
		checks.add("media_status", "is not a known status")
	}
	if mediaType != MediaTypeVideo && mediaType != MediaTypeTrailer {
		checks.add("media_type", "is not a known type")
	}
	if err := newValidationError("media", checks); err != nil {
		return Media{}, err
	}

	return Media{
		filePath:    filePath,
		status:      status,
		mediaType:   mediaType,
		encodedPath: encodedPath,
	}, nil
}

// WithEncodedPath returns a copy marked complete with encodedPath set.
func (m Media) WithEncodedPath(encodedPath string) (Media, error) {
	if strings.TrimSpace(encodedPath) == "" {
		return Media{}, newValidationError("media", []FieldError{{Field: "encoded_path", Message: "is required"}})
	}
	return NewMedia(m.filePath, MediaStatusComplete, m.mediaType, encodedPath)
}

func (m Media) FilePath() string { return m.filePath }
func (m Media) Status() MediaStatus { return m.status }
func (m Media) Type() MediaType { return m.mediaType }
func (m Media) EncodedPath() string { return m.encodedPath }
