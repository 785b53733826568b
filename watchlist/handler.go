package watchlist

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/auth"
)

// Handler serves /api/watchlist. Every route expects the Access Guard to have run.
type Handler struct {
	service *Service
}

// NewHandler creates a watchlist Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the watchlist routes on a router already mounted at
// /api/watchlist and protected by auth.Guard.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", h.addItem)
	router.Get("/", h.listItems)
	router.Patch("/{id}", h.updateItem)
	router.Delete("/{id}", h.deleteItem)
}

// itemID reads the {id} path parameter. Ids that cannot exist are reported as a missing
// item, the same as an id owned by someone else.
func itemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFoundError("Movie not found", err)
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

// addItem godoc
// @Summary Add to Watchlist
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param item body watchlist.AddRequest true "Movie to add"
// @Success 201 {object} watchlist.Item
// @Failure 400 {object} apperror.ErrorResponse "Validation error"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 409 {object} apperror.ErrorResponse "Movie already in watchlist"
// @Router /api/watchlist [post]
// @Security BearerAuth
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var req AddRequest
	if err := auth.DecodeJSON(w, r, &req); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	item, err := h.service.Add(r.Context(), userID, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusCreated, item)
}

// listItems godoc
// @Summary List Watchlist
// @Description Returns the caller's watchlist, newest first.
// @Tags Watchlist
// @Produce json
// @Success 200 {array} watchlist.Item
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Router /api/watchlist [get]
// @Security BearerAuth
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, items)
}

// updateItem godoc
// @Summary Update Watched Flag
// @Description Sets `watched` to the given value, or flips it when the field is omitted.
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param id path int true "Watchlist item id"
// @Param body body watchlist.UpdateRequest false "New watched value"
// @Success 200 {object} watchlist.Item
// @Failure 404 {object} apperror.ErrorResponse "Movie not found"
// @Router /api/watchlist/{id} [patch]
// @Security BearerAuth
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	id, err := itemID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var req UpdateRequest
	if err := auth.DecodeJSON(w, r, &req); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	item, err := h.service.SetWatched(r.Context(), userID, id, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, item)
}

// deleteItem godoc
// @Summary Remove from Watchlist
// @Tags Watchlist
// @Produce json
// @Param id path int true "Watchlist item id"
// @Success 200 {object} watchlist.DeleteResponse
// @Failure 404 {object} apperror.ErrorResponse "Movie not found"
// @Router /api/watchlist/{id} [delete]
// @Security BearerAuth
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	id, err := itemID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	item, err := h.service.Remove(r.Context(), userID, id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, DeleteResponse{Message: "item deleted successfully", Item: item})
}
