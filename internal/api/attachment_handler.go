package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"memopad/internal/api/shared"
	"memopad/internal/platform/blob"
)

// AttachmentHandler issues presigned upload slots for memo attachments.
// The blob bytes never pass through this service.
type AttachmentHandler struct {
	blobStore *blob.Store
	validator *validator.Validate
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(blobStore *blob.Store) *AttachmentHandler {
	return &AttachmentHandler{
		blobStore: blobStore,
		validator: validator.New(),
	}
}

// PresignUpload handles POST /api/attachments/presign.
func (h *AttachmentHandler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req PresignAttachmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	upload, err := h.blobStore.PresignUpload(r.Context(), req.MimeType)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to prepare upload", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, upload)
}
