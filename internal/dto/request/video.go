package request

import "video-catalog/pkg/storage"

// VideoRequest is decoded from a multipart form. File fields are nil when the
// client did not send that part.
type VideoRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=255"`
	Description   string   `json:"description" validate:"required,min=3,max=1000"`
	YearLaunched  int      `json:"year_launched" validate:"required,min=1"`
	Duration      int      `json:"duration" validate:"required,min=1"`
	Opened        bool     `json:"opened"`
	Rating        string   `json:"rating" validate:"required,oneof=ER L 10 12 14 16 18"`
	CategoriesID  []string `json:"categories_id" validate:"dive,uuid"`
	GenresID      []string `json:"genres_id" validate:"dive,uuid"`
	CastMembersID []string `json:"cast_members_id" validate:"dive,uuid"`

	ThumbFile   *storage.File `json:"-"`
	ThumbHalf   *storage.File `json:"-"`
	BannerFile  *storage.File `json:"-"`
	TrailerFile *storage.File `json:"-"`
	VideoFile   *storage.File `json:"-"`
}
