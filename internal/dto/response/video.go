package response

import (
	"time"

	"video-catalog/internal/domain"
)

type MediaResponse struct {
	FilePath    string  `json:"file_path"`
	Status      string  `json:"status"`
	EncodedPath *string `json:"encoded_path"`
}

type VideoResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	YearLaunched  int            `json:"year_launched"`
	Duration      int            `json:"duration"`
	Opened        bool           `json:"opened"`
	Rating        string         `json:"rating"`
	CategoriesID  []string       `json:"categories_id"`
	GenresID      []string       `json:"genres_id"`
	CastMembersID []string       `json:"cast_members_id"`
	ThumbFile     *string        `json:"thumb_file"`
	ThumbHalf     *string        `json:"thumb_half"`
	BannerFile    *string        `json:"banner_file"`
	TrailerFile   *MediaResponse `json:"trailer_file"`
	VideoFile     *MediaResponse `json:"video_file"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Helper converter
func VideoToResponse(video *domain.Video) VideoResponse {
	return VideoResponse{
		ID:            video.ID().String(),
		Title:         video.Title(),
		Description:   video.Description(),
		YearLaunched:  video.YearLaunched(),
		Duration:      video.Duration(),
		Opened:        video.Opened(),
		Rating:        string(video.Rating()),
		CategoriesID:  video.CategoryIDs(),
		GenresID:      video.GenreIDs(),
		CastMembersID: video.CastMemberIDs(),
		ThumbFile:     imagePath(video.ThumbFile()),
		ThumbHalf:     imagePath(video.ThumbHalf()),
		BannerFile:    imagePath(video.BannerFile()),
		TrailerFile:   mediaToResponse(video.TrailerFile()),
		VideoFile:     mediaToResponse(video.VideoFile()),
		CreatedAt:     video.CreatedAt(),
		UpdatedAt:     video.UpdatedAt(),
	}
}

func imagePath(img domain.Image, ok bool) *string {
	if !ok {
		return nil
	}
	path := img.Path()
	return &path
}

func mediaToResponse(media domain.Media, ok bool) *MediaResponse {
	if !ok {
		return nil
	}

	resp := &MediaResponse{
		FilePath: media.FilePath(),
		Status:   media.Status().String(),
	}
	if encoded := media.EncodedPath(); encoded != "" {
		resp.EncodedPath = &encoded
	}
	return resp
}
