package domain

import (
	"time"
)

type Rating string

const (
	RatingER Rating = "ER"
	RatingL  Rating = "L"
	Rating10 Rating = "10"
	Rating12 Rating = "12"
	Rating14 Rating = "14"
	Rating16 Rating = "16"
	Rating18 Rating = "18"
)

var ratings = []Rating{RatingER, RatingL, Rating10, Rating12, Rating14, Rating16, Rating18}

func (r Rating) Valid() bool {
	for _, known := range ratings {
		if r == known {
			return true
		}
	}
	return false
}

// VideoParams builds a new Video. An empty ID gets a random one and zero
// timestamps are set to now.
type VideoParams struct {
	ID            string
	Title         string
	Description   string
	YearLaunched  int
	Duration      int
	Opened        bool
	Rating        Rating
	CategoryIDs   []string
	GenreIDs      []string
	CastMemberIDs []string
	ThumbFile     *Image
	ThumbHalf     *Image
	BannerFile    *Image
	TrailerFile   *Media
	VideoFile     *Media
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VideoUpdate holds the scalar fields Update may change.
type VideoUpdate struct {
	Title        string
	Description  string
	YearLaunched int
	Duration     int
	Opened       bool
	Rating       Rating
}

// Video is the catalog aggregate root. It owns its id sets and media
// attachments by value.
type Video struct {
	id           UUID
	title        string
	description  string
	yearLaunched int
	duration     int
	opened       bool
	rating       Rating

	categories  IDSet
	genres      IDSet
	castMembers IDSet

	thumbFile   *Image
	thumbHalf   *Image
	bannerFile  *Image
	trailerFile *Media
	videoFile   *Media

	createdAt time.Time
	updatedAt time.Time
}

func NewVideo(p VideoParams) (*Video, error) {
	id := RandomUUID()
	if p.ID != "" {
		parsed, err := NewUUID(p.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	now := time.Now()
	createdAt, updatedAt := p.CreatedAt, p.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	v := &Video{
		id:           id,
		title:        p.Title,
		description:  p.Description,
		yearLaunched: p.YearLaunched,
		duration:     p.Duration,
		opened:       p.Opened,
		rating:       p.Rating,
		categories:   NewIDSet(p.CategoryIDs...),
		genres:       NewIDSet(p.GenreIDs...),
		castMembers:  NewIDSet(p.CastMemberIDs...),
		thumbFile:    p.ThumbFile,
		thumbHalf:    p.ThumbHalf,
		bannerFile:   p.BannerFile,
		trailerFile:  p.TrailerFile,
		videoFile:    p.VideoFile,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}

	if err := newValidationError("video", validateVideo(v)); err != nil {
		return nil, err
	}
	return v, nil
}

// Update validates and applies u. On failure the video is left unchanged.
func (v *Video) Update(u VideoUpdate) error {
	next := *v
	next.title = u.Title
	next.description = u.Description
	next.yearLaunched = u.YearLaunched
	next.duration = u.Duration
	next.opened = u.Opened
	next.rating = u.Rating

	if err := newValidationError("video", validateVideo(&next)); err != nil {
		return err
	}

	v.title, v.description = next.title, next.description
	v.yearLaunched, v.duration = next.yearLaunched, next.duration
	v.opened, v.rating = next.opened, next.rating
	v.touch()
	return nil
}

func validateVideo(v *Video) []FieldError {
	var checks fieldChecks
	checks.length("title", v.title, 3, 255)
	checks.length("description", v.description, 3, 1000)
	if v.yearLaunched <= 0 {
		checks.add("year_launched", "must be greater than zero")
	}
	if v.duration <= 0 {
		checks.add("duration", "must be greater than zero")
	}
	if !v.rating.Valid() {
		checks.add("rating", "must be one of ER, L, 10, 12, 14, 16, 18")
	}
	return checks
}

func (v *Video) touch() {
	v.updatedAt = time.Now()
}

func (v *Video) Open() {
	if !v.opened {
		v.opened = true
		v.touch()
	}
}

func (v *Video) Close() {
	if v.opened {
		v.opened = false
		v.touch()
	}
}

func (v *Video) AddCategory(id string) { v.categories.Add(id); v.touch() }
func (v *Video) RemoveCategory(id string) { v.categories.Remove(id); v.touch() }
func (v *Video) AddGenre(id string) { v.genres.Add(id); v.touch() }
func (v *Video) RemoveGenre(id string) { v.genres.Remove(id); v.touch() }
func (v *Video) AddCastMember(id string) { v.castMembers.Add(id); v.touch() }
func (v *Video) RemoveCastMember(id string) { v.castMembers.Remove(id); v.touch() }

// ReplaceRelations swaps all three id sets at once.
func (v *Video) ReplaceRelations(categoryIDs, genreIDs, castMemberIDs []string) {
	v.categories.Replace(categoryIDs)
	v.genres.Replace(genreIDs)
	v.castMembers.Replace(castMemberIDs)
	v.touch()
}

func (v *Video) SetThumbFile(img Image) { v.thumbFile = &img; v.touch() }
func (v *Video) SetThumbHalf(img Image) { v.thumbHalf = &img; v.touch() }
func (v *Video) SetBannerFile(img Image) { v.bannerFile = &img; v.touch() }
func (v *Video) SetTrailerFile(m Media) { v.trailerFile = &m; v.touch() }
func (v *Video) SetVideoFile(m Media) { v.videoFile = &m; v.touch() }

func (v *Video) ID() UUID { return v.id }
func (v *Video) Title() string { return v.title }
func (v *Video) Description() string { return v.description }
func (v *Video) YearLaunched() int { return v.yearLaunched }
func (v *Video) Duration() int { return v.duration }
func (v *Video) Opened() bool { return v.opened }
func (v *Video) Rating() Rating { return v.rating }
func (v *Video) CreatedAt() time.Time { return v.createdAt }
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }

func (v *Video) CategoryIDs() []string { return v.categories.Values() }
func (v *Video) GenreIDs() []string { return v.genres.Values() }
func (v *Video) CastMemberIDs() []string { return v.castMembers.Values() }

func (v *Video) ThumbFile() (Image, bool) { return imageOf(v.thumbFile) }
func (v *Video) ThumbHalf() (Image, bool) { return imageOf(v.thumbHalf) }
func (v *Video) BannerFile() (Image, bool) { return imageOf(v.bannerFile) }
func (v *Video) TrailerFile() (Media, bool) { return mediaOf(v.trailerFile) }
func (v *Video) VideoFile() (Media, bool) { return mediaOf(v.videoFile) }

// Clone returns a deep copy. Id sets and attachments aren't shared.
func (v *Video) Clone() *Video {
	c := *v
	c.categories = v.categories.clone()
	c.genres = v.genres.clone()
	c.castMembers = v.castMembers.clone()
	return &c
}

func imageOf(img *Image) (Image, bool) {
	if img == nil {
		return Image{}, false
	}
	return *img, true
}

func mediaOf(m *Media) (Media, bool) {
	if m == nil {
		return Media{}, false
	}
	return *m, true
}
