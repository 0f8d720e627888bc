package entity

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	Base
	Title        string  `db:"title"`
	Description  string  `db:"description"`
	YearLaunched int     `db:"year_launched"`
	Duration     int     `db:"duration"`
	Opened       bool    `db:"opened"`
	Rating       string  `db:"rating"`
	ThumbFile    *string `db:"thumb_file"`
	ThumbHalf    *string `db:"thumb_half"`
	BannerFile   *string `db:"banner_file"`
}

// VideoMedia is the trailer or the main video file of a video, one row per type.
type VideoMedia struct {
	VideoID     uuid.UUID `db:"video_id"`
	Type        int16     `db:"type"`
	FilePath    string    `db:"file_path"`
	Status      int16     `db:"status"`
	EncodedPath *string   `db:"encoded_path"`
	UpdatedAt   time.Time `db:"updated_at"`
}
