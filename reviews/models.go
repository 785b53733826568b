// Package reviews lets users post free-text reviews and 1..10 ratings for movies.
// Reading a movie's reviews is public; writing, editing and deleting are limited to the
// review's author. Unlike the watchlist, a user may review the same movie several times.
package reviews

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/user/cinelog-go/movies"
)

// Rating bounds, mirrored by the reviews_rating_check constraint.
const (
	minRating = 1
	maxRating = 10
)

// maxReviewLength caps review text in characters.
const maxReviewLength = 5000

// Review is a row of the reviews table.
type Review struct {
	ID         int64     `db:"id" json:"_id" example:"3"`
	UserID     int64     `db:"user_id" json:"userId" example:"1"`
	TmdbID     int64     `db:"tmdb_id" json:"tmdbId" example:"129"`
	ReviewText *string   `db:"review_text" json:"reviewText" example:"Still magical on a rewatch."`
	Rating     *int      `db:"rating" json:"rating" example:"9"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// Author is the public identity shown next to a review.
type Author struct {
	ID       int64  `json:"_id" example:"1"`
	Username string `json:"username" example:"chihiro"`
}

// MovieReview is a review as listed on a movie page, with its author expanded.
type MovieReview struct {
	ID         int64     `json:"_id" example:"3"`
	User       Author    `json:"userId"`
	TmdbID     int64     `json:"tmdbId" example:"129"`
	ReviewText *string   `json:"reviewText" example:"Still magical on a rewatch."`
	Rating     *int      `json:"rating" example:"9"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// movieReviewRow is what the movie listing query scans into.
type movieReviewRow struct {
	Review
	Username string `db:"username"`
}

func (row movieReviewRow) toMovieReview() MovieReview {
	return MovieReview{
		ID:         row.ID,
		User:       Author{ID: row.UserID, Username: row.Username},
		TmdbID:     row.TmdbID,
		ReviewText: row.ReviewText,
		Rating:     row.Rating,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

// Rating is an optional rating in a request body. The web client sends a number, the
// select box's string value, or "" when nothing was picked. "" and null leave Value nil.
type Rating struct {
	Value *int
}

// UnmarshalJSON accepts 7, "7", "" and null. Anything else, 7.5 included, is an error.
func (r *Rating) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	r.Value = nil
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("rating %q is not a whole number", raw)
	}
	r.Value = &n
	return nil
}

// MarshalJSON writes the number or null.
func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value)
}

// CreateRequest is the body of POST /api/reviews.
type CreateRequest struct {
	TmdbID     movies.ID `json:"tmdbId" swaggertype:"integer" example:"129"`
	ReviewText string    `json:"reviewText" example:"Still magical on a rewatch."`
	Rating     Rating    `json:"rating" swaggertype:"integer" example:"9"`
}

// UpdateRequest is the body of PATCH /api/reviews/{id}. It must carry non-blank text or a
// rating. Absent fields are left unchanged; blank text sent alongside a rating clears it.
type UpdateRequest struct {
	ReviewText *string `json:"reviewText" example:"Even better the third time."`
	Rating     Rating  `json:"rating" swaggertype:"integer" example:"10"`
}

// NewReview is what the service hands the store on create.
type NewReview struct {
	UserID     int64
	TmdbID     int64
	ReviewText *string
	Rating     *int
}

// Patch is what the service hands the store on update. Nil fields are left unchanged.
type Patch struct {
	ReviewText *string
	ClearText  bool
	Rating     *int
}
