package feed

import (
	"encoding/json"
	"net/http"
	"strconv"

	"socialfeed/internal/common"
	"socialfeed/internal/moderation"

	"github.com/gorilla/mux"
)

type FeedHandler struct {
	feedUsecase FeedUsecase
}

func NewFeedHandler(feedUsecase FeedUsecase) *FeedHandler {
	return &FeedHandler{feedUsecase: feedUsecase}
}

type textRequest struct {
	Text string `json:"text"`
}

type lexiconRequest struct {
	Words []string `json:"words"`
}

func pageFromQuery(r *http.Request) common.Page {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return common.NewPage(page, limit)
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.Validation("invalid request body")
	}
	return nil
}

// --------- PUBLICATIONS ---------

func (h *FeedHandler) CreatePublication(w http.ResponseWriter, r *http.Request) {
	var in CreatePublicationInput
	if err := decode(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}
	in.AuthorID = common.ViewerID(r.Context())

	result, err := h.feedUsecase.CreatePublication(r.Context(), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, result)
}

func (h *FeedHandler) GetPublication(w http.ResponseWriter, r *http.Request) {
	view, err := h.feedUsecase.GetPublication(r.Context(), mux.Vars(r)["id"], common.ViewerID(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "publication": view})
}

func (h *FeedHandler) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decode(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	result, err := h.feedUsecase.UpdatePublication(r.Context(), mux.Vars(r)["id"], common.ViewerID(r.Context()), req.Text)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *FeedHandler) DeletePublication(w http.ResponseWriter, r *http.Request) {
	if err := h.feedUsecase.DeletePublication(r.Context(), mux.Vars(r)["id"], common.ViewerID(r.Context())); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	q := FeedQuery{AuthorID: r.URL.Query().Get("author_id"), Page: pageFromQuery(r)}

	page, err := h.feedUsecase.GetFeed(r.Context(), common.ViewerID(r.Context()), q)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": page})
}

func (h *FeedHandler) GetUserPublications(w http.ResponseWriter, r *http.Request) {
	page, err := h.feedUsecase.GetUserPublications(r.Context(), common.ViewerID(r.Context()), mux.Vars(r)["userID"], pageFromQuery(r))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": page})
}

func (h *FeedHandler) LikePublication(w http.ResponseWriter, r *http.Request) {
	result, err := h.feedUsecase.LikePublication(r.Context(), mux.Vars(r)["id"], common.ViewerID(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *FeedHandler) UnlikePublication(w http.ResponseWriter, r *http.Request) {
	result, err := h.feedUsecase.UnlikePublication(r.Context(), mux.Vars(r)["id"], common.ViewerID(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// --------- COMMENTS ---------

func (h *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var in AddCommentInput
	if err := decode(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}
	in.PublicationID = mux.Vars(r)["id"]
	in.AuthorID = common.ViewerID(r.Context())

	result, err := h.feedUsecase.AddComment(r.Context(), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, result)
}

func (h *FeedHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	hierarchical, _ := strconv.ParseBool(r.URL.Query().Get("hierarchical"))

	result, err := h.feedUsecase.GetComments(r.Context(), mux.Vars(r)["id"], common.ViewerID(r.Context()), hierarchical)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *FeedHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decode(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	vars := mux.Vars(r)

	result, err := h.feedUsecase.EditComment(r.Context(), vars["id"], vars["commentID"], common.ViewerID(r.Context()), req.Text)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *FeedHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result, err := h.feedUsecase.DeleteComment(r.Context(), vars["id"], vars["commentID"], common.ViewerID(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *FeedHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result, err := h.feedUsecase.LikeComment(r.Context(), vars["id"], vars["commentID"], common.ViewerID(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *FeedHandler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result, err := h.feedUsecase.UnlikeComment(r.Context(), vars["id"], vars["commentID"], common.ViewerID(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// --------- MODERATION ---------

func (h *FeedHandler) VerifyCommunity(w http.ResponseWriter, r *http.Request) {
	var meta moderation.CommunityMetadata
	if err := decode(r, &meta); err != nil {
		common.WriteError(w, err)
		return
	}

	verdict := h.feedUsecase.VerifyCommunity(r.Context(), meta, common.ViewerID(r.Context()))
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "verdict": verdict})
}

func (h *FeedHandler) AllowedCategories(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": h.feedUsecase.AllowedCategories(),
	})
}

func (h *FeedHandler) ExtendLexicon(w http.ResponseWriter, r *http.Request) {
	var req lexiconRequest
	if err := decode(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	added, err := h.feedUsecase.ExtendLexicon(r.Context(), req.Words)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "added": added})
}

func (h *FeedHandler) SweepModeration(w http.ResponseWriter, r *http.Request) {
	report, err := h.feedUsecase.SweepModeration(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "report": report})
}

// RegisterRoutes mounts the feed on a subrouter with optional authentication. Writes
// demand a viewer; admin routes go on the admin subrouter.
func (h *FeedHandler) RegisterRoutes(api, admin *mux.Router, limits *common.RateLimits) {
	authed := func(limiter *common.RateLimiter, fn http.HandlerFunc) http.Handler {
		return common.RequireViewer(limiter.Middleware(fn))
	}

	pubs := api.PathPrefix("/publications").Subrouter()
	pubs.HandleFunc("", h.GetFeed).Methods(http.MethodGet)
	pubs.Handle("", authed(limits.Publications, h.CreatePublication)).Methods(http.MethodPost)
	pubs.HandleFunc("/{id}", h.GetPublication).Methods(http.MethodGet)
	pubs.Handle("/{id}", authed(limits.Publications, h.UpdatePublication)).Methods(http.MethodPut)
	pubs.Handle("/{id}", authed(limits.Publications, h.DeletePublication)).Methods(http.MethodDelete)
	pubs.Handle("/{id}/like", authed(limits.Likes, h.LikePublication)).Methods(http.MethodPost)
	pubs.Handle("/{id}/like", authed(limits.Likes, h.UnlikePublication)).Methods(http.MethodDelete)

	pubs.HandleFunc("/{id}/comments", h.GetComments).Methods(http.MethodGet)
	pubs.Handle("/{id}/comments", authed(limits.Comments, h.AddComment)).Methods(http.MethodPost)
	pubs.Handle("/{id}/comments/{commentID}", authed(limits.Comments, h.EditComment)).Methods(http.MethodPut)
	pubs.Handle("/{id}/comments/{commentID}", authed(limits.Comments, h.DeleteComment)).Methods(http.MethodDelete)
	pubs.Handle("/{id}/comments/{commentID}/like", authed(limits.Likes, h.LikeComment)).Methods(http.MethodPost)
	pubs.Handle("/{id}/comments/{commentID}/like", authed(limits.Likes, h.UnlikeComment)).Methods(http.MethodDelete)

	api.HandleFunc("/users/{userID}/publications", h.GetUserPublications).Methods(http.MethodGet)

	mod := api.PathPrefix("/moderation").Subrouter()
	mod.Handle("/community", authed(limits.Search, h.VerifyCommunity)).Methods(http.MethodPost)
	mod.HandleFunc("/categories", h.AllowedCategories).Methods(http.MethodGet)

	admin.HandleFunc("/moderation/lexicon", h.ExtendLexicon).Methods(http.MethodPost)
	admin.HandleFunc("/moderation/sweep", h.SweepModeration).Methods(http.MethodPost)
}
