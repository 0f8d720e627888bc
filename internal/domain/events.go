package domain

import (
	"time"
)

const VideoCreatedEventName = "video.created"

// VideoCreatedEvent asks the encoder to process a freshly stored video file.
// It is raised for both inserts and updates that store a new video file.
type VideoCreatedEvent struct {
	VideoID    string    `json:"resource_id"`
	FilePath   string    `json:"file_path"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewVideoCreatedEvent(video *Video) (VideoCreatedEvent, bool) {
	media, ok := video.VideoFile()
	if !ok {
		return VideoCreatedEvent{}, false
	}
	return VideoCreatedEvent{
		VideoID:    video.ID().String(),
		FilePath:   media.FilePath(),
		OccurredAt: time.Now(),
	}, true
}

func (e VideoCreatedEvent) Name() string {
	return VideoCreatedEventName
}

func (e VideoCreatedEvent) Key() string {
	return e.VideoID
}

func (e VideoCreatedEvent) Payload() any {
	return e
}
