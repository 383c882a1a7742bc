package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"memopad/internal/api/middleware"
	"memopad/internal/api/shared"
	"memopad/internal/domain"
	"memopad/internal/service"
	"memopad/internal/store"
)

// MemoHandler handles memo-related HTTP requests.
type MemoHandler struct {
	memoService service.MemoService
	validator   *validator.Validate
}

// NewMemoHandler creates a new MemoHandler.
func NewMemoHandler(memoService service.MemoService) *MemoHandler {
	return &MemoHandler{
		memoService: memoService,
		validator:   validator.New(),
	}
}

// requireUserID pulls the authenticated user from the context set by the
// auth middleware, responding 401 when it is absent.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return userID, true
}

// memoIDFromURL parses the {id} route parameter. A malformed ID cannot name
// an existing memo, so it is reported the same way as a missing one.
func memoIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	memoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Memo not found")
		return uuid.Nil, false
	}
	return memoID, true
}

// respondMemoError maps a service error onto the HTTP contract.
func respondMemoError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}

// listQueryFromRequest builds a store.ListQuery from the URL query string.
func listQueryFromRequest(r *http.Request, deleted bool) store.ListQuery {
	q := store.ListQuery{
		Deleted:  deleted,
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Sort:     store.SortOrder(r.URL.Query().Get("sort")).Normalize(),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		q.PageSize = limit
	}
	return q
}

// ListMemos handles GET /api/memos.
func (h *MemoHandler) ListMemos(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	h.list(w, r, userID, listQueryFromRequest(r, false))
}

// ListTrash handles GET /api/memos/trash.
func (h *MemoHandler) ListTrash(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	h.list(w, r, userID, listQueryFromRequest(r, true))
}

func (h *MemoHandler) list(w http.ResponseWriter, r *http.Request, userID uuid.UUID, q store.ListQuery) {
	memos, total, err := h.memoService.ListMemos(r.Context(), userID, q)
	if err != nil {
		respondMemoError(w, r, err)
		return
	}

	items := make([]MemoResponse, 0, len(memos))
	for _, memo := range memos {
		items = append(items, memoToResponse(memo))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MemoListResponse{
		Memos: items,
		Total: total,
	})
}

// CreateMemo handles POST /api/memos.
func (h *MemoHandler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateMemoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	memo, err := h.memoService.CreateMemo(
		r.Context(),
		userID,
		req.Title,
		req.Content,
		req.Category,
		attachmentsToDomain(req.Attachments),
	)
	if err != nil {
		respondMemoError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, memoToResponse(memo))
}

// GetMemo handles GET /api/memos/{id}.
func (h *MemoHandler) GetMemo(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	memoID, ok := memoIDFromURL(w, r)
	if !ok {
		return
	}

	memo, err := h.memoService.GetMemo(r.Context(), userID, memoID)
	if err != nil {
		respondMemoError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memoToResponse(memo))
}

// UpdateMemo handles PUT /api/memos/{id}.
func (h *MemoHandler) UpdateMemo(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	memoID, ok := memoIDFromURL(w, r)
	if !ok {
		return
	}

	var req UpdateMemoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	update := domain.MemoUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		IsDone:      req.IsDone,
		IsPinned:    req.IsPinned,
		Attachments: attachmentsToDomain(req.Attachments),
	}

	memo, err := h.memoService.UpdateMemo(r.Context(), userID, memoID, update)
	if err != nil {
		respondMemoError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memoToResponse(memo))
}

// DeleteMemo handles DELETE /api/memos/{id}. The memo is moved to the trash,
// not removed; only emptying the trash is destructive.
func (h *MemoHandler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	memoID, ok := memoIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.memoService.DeleteMemo(r.Context(), userID, memoID); err != nil {
		respondMemoError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "memo moved to trash",
	})
}

// RestoreMemo handles PUT /api/memos/{id}/restore.
func (h *MemoHandler) RestoreMemo(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	memoID, ok := memoIDFromURL(w, r)
	if !ok {
		return
	}

	memo, err := h.memoService.RestoreMemo(r.Context(), userID, memoID)
	if err != nil {
		respondMemoError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memoToResponse(memo))
}

// EmptyTrash handles DELETE /api/memos/trash.
func (h *MemoHandler) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	count, err := h.memoService.EmptyTrash(r.Context(), userID)
	if err != nil {
		respondMemoError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EmptyTrashResponse{DeletedCount: count})
}
