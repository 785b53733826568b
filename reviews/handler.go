package reviews

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/auth"
	"github.com/user/cinelog-go/movies"
)

// Handler serves /api/reviews.
type Handler struct {
	service ReviewService
}

// NewHandler creates a review Handler.
func NewHandler(service ReviewService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the review routes on a router mounted at /api/reviews.
// Listing a movie's reviews is public; every other route goes through guard.
func (h *Handler) RegisterRoutes(router chi.Router, guard func(http.Handler) http.Handler) {
	router.Get("/movie/{tmdbId}", h.listMovieReviews)

	router.Group(func(r chi.Router) {
		r.Use(guard)
		r.Post("/", h.createReview)
		r.Get("/user", h.listUserReviews)
		r.Patch("/{id}", h.updateReview)
		r.Delete("/{id}", h.deleteReview)
	})
}

func reviewID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFoundError("Review not found", err)
	}
	return id, nil
}

func currentUserID(r *http.Request) (int64, error) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		return 0, apperror.NewAuthError("Unauthorized, no token.", nil)
	}
	return user.ID, nil
}

// createReview godoc
// @Summary Post a Review
// @Description Creates a review. Either reviewText or rating (1-10) is required.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body reviews.CreateRequest true "Review"
// @Success 201 {object} reviews.Review
// @Failure 400 {object} apperror.ErrorResponse "Movie ID is required / Review must include either text or rating"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Router /api/reviews [post]
// @Security BearerAuth
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var req CreateRequest
	if err := auth.DecodeJSON(w, r, &req); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	review, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusCreated, review)
}

// listMovieReviews godoc
// @Summary List a Movie's Reviews
// @Description Public. Newest first, each with its author's id and username.
// @Tags Reviews
// @Produce json
// @Param tmdbId path int true "TMDB movie id"
// @Success 200 {array} reviews.MovieReview
// @Failure 400 {object} apperror.ErrorResponse "Invalid movie ID"
// @Router /api/reviews/movie/{tmdbId} [get]
func (h *Handler) listMovieReviews(w http.ResponseWriter, r *http.Request) {
	tmdbID, err := movies.ParseID(chi.URLParam(r, "tmdbId"))
	if err != nil {
		auth.WriteError(w, r, apperror.NewValidationError("Invalid movie ID", err))
		return
	}

	out, err := h.service.ListForMovie(r.Context(), tmdbID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, out)
}

// listUserReviews godoc
// @Summary List My Reviews
// @Tags Reviews
// @Produce json
// @Success 200 {array} reviews.Review
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Router /api/reviews/user [get]
// @Security BearerAuth
func (h *Handler) listUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	out, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, out)
}

// updateReview godoc
// @Summary Edit a Review
// @Description Updates the fields present in the body. The body needs non-blank reviewText or a rating; blank reviewText sent with a rating clears the text.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review id"
// @Param body body reviews.UpdateRequest true "Fields to change"
// @Success 200 {object} reviews.Review
// @Failure 400 {object} apperror.ErrorResponse "Validation error"
// @Failure 404 {object} apperror.ErrorResponse "Review not found"
// @Router /api/reviews/{id} [patch]
// @Security BearerAuth
func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	id, err := reviewID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var req UpdateRequest
	if err := auth.DecodeJSON(w, r, &req); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	review, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, review)
}

// deleteReview godoc
// @Summary Delete a Review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review id"
// @Success 200 {object} reviews.Review
// @Failure 404 {object} apperror.ErrorResponse "Review not found"
// @Router /api/reviews/{id} [delete]
// @Security BearerAuth
func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	id, err := reviewID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	review, err := h.service.Delete(r.Context(), userID, id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, review)
}
