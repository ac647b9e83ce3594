package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"socialfeed/internal/common"

	"github.com/gorilla/mux"
)

// Handler maps HTTP requests onto SocialService.
type Handler struct {
	socialService SocialService
}

func NewHandler(socialService SocialService) *Handler {
	return &Handler{socialService: socialService}
}

type targetRequest struct {
	TargetUserID string `json:"target_user_id"`
}

type respondRequest struct {
	Action string `json:"action"` // accept or reject
}

func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.Validation("invalid request body"))
		return
	}

	rec, err := h.socialService.SendFriendRequest(r.Context(), common.ViewerID(r.Context()), req.TargetUserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "relationship": rec})
}

func (h *Handler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.Validation("invalid request body"))
		return
	}
	if req.Action != "accept" && req.Action != "reject" {
		common.WriteError(w, common.Validation("action must be accept or reject"))
		return
	}

	requesterID := mux.Vars(r)["requesterID"]
	rec, err := h.socialService.RespondToRequest(r.Context(), common.ViewerID(r.Context()), requesterID, req.Action == "accept")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "relationship": rec})
}

func (h *Handler) BlockUser(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.Validation("invalid request body"))
		return
	}

	rec, err := h.socialService.BlockUser(r.Context(), common.ViewerID(r.Context()), req.TargetUserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "relationship": rec})
}

func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	ids, err := h.socialService.ListFriends(r.Context(), common.ViewerID(r.Context()))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "friends": ids})
}

func (h *Handler) AvailableUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.socialService.AvailableUsers(r.Context(), common.ViewerID(r.Context()), q.Get("q"), common.NewPage(page, limit))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": result})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		common.WriteError(w, common.Validation("invalid request body"))
		return
	}

	profile, err := h.socialService.UpdateProfile(r.Context(), common.ViewerID(r.Context()), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "profile": profile})
}

func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.socialService.DeleteProfile(r.Context(), common.ViewerID(r.Context())); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// RegisterRoutes mounts the social routes. Every route requires an authenticated viewer.
func (h *Handler) RegisterRoutes(api *mux.Router, limits *common.RateLimits) {
	authed := func(limiter *common.RateLimiter, fn http.HandlerFunc) http.Handler {
		return common.RequireViewer(limiter.Middleware(fn))
	}

	friends := api.PathPrefix("/friends").Subrouter()
	friends.Handle("", common.RequireViewer(http.HandlerFunc(h.ListFriends))).Methods(http.MethodGet)
	friends.Handle("/requests", authed(limits.Social, h.SendFriendRequest)).Methods(http.MethodPost)
	friends.Handle("/requests/{requesterID}", authed(limits.Social, h.RespondToRequest)).Methods(http.MethodPut)
	friends.Handle("/blocks", authed(limits.Social, h.BlockUser)).Methods(http.MethodPost)

	users := api.PathPrefix("/users").Subrouter()
	users.Handle("/available", authed(limits.Search, h.AvailableUsers)).Methods(http.MethodGet)
	users.Handle("/me/profile", common.RequireViewer(http.HandlerFunc(h.UpdateProfile))).Methods(http.MethodPut)
	users.Handle("/me/profile", authed(limits.Social, h.DeleteProfile)).Methods(http.MethodDelete)
}
