// Package watchlist manages each user's list of movies to watch: add, list, mark
// watched, and remove. Every query is scoped to the authenticated owner.
package watchlist

import (
	"time"

	"github.com/user/cinelog-go/movies"
)

// Item is a watchlist row. Title, poster and release date are copied from the catalog
// when the item is added and never refreshed.
type Item struct {
	ID          int64     `db:"id" json:"_id" example:"12"`
	UserID      int64     `db:"user_id" json:"userId" example:"1"`
	TmdbID      int64     `db:"tmdb_id" json:"tmdbId" example:"129"`
	Title       string    `db:"title" json:"title" example:"Spirited Away"`
	PosterPath  string    `db:"poster_path" json:"posterPath" example:"/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg"`
	ReleaseDate time.Time `db:"release_date" json:"releaseDate" example:"2001-07-20T00:00:00Z"`
	Watched     bool      `db:"watched" json:"watched" example:"false"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// AddRequest is the body of POST /api/watchlist.
type AddRequest struct {
	TmdbID      movies.ID `json:"tmdbId" validate:"required" swaggertype:"integer" example:"129"`
	Title       string    `json:"title" validate:"required" example:"Spirited Away"`
	PosterPath  string    `json:"posterPath" validate:"required" example:"/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg"`
	ReleaseDate string    `json:"releaseDate" validate:"required" example:"2001-07-20"`
}

// UpdateRequest is the body of PATCH /api/watchlist/{id}. When Watched is omitted the
// flag is flipped.
type UpdateRequest struct {
	Watched *bool `json:"watched" example:"true"`
}

// DeleteResponse confirms a removal and echoes the removed item.
type DeleteResponse struct {
	Message string `json:"message" example:"item deleted successfully"`
	Item    *Item  `json:"item"`
}
