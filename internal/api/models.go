package api

import (
	"time"

	"memopad/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// Token is the bearer session token used for API authorization.
	Token string `json:"token"`
}

// PasswordResetRequestPayload defines the payload for requesting a reset link.
type PasswordResetRequestPayload struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetPayload defines the payload for consuming a reset token.
type PasswordResetPayload struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// AttachmentPayload mirrors domain.Attachment on the wire.
type AttachmentPayload struct {
	URL      string `json:"url"       validate:"required"`
	Name     string `json:"name"      validate:"required"`
	MimeType string `json:"mime_type"`
}

// CreateMemoRequest defines the payload for creating a new memo.
type CreateMemoRequest struct {
	Title       string              `json:"title"       validate:"required,min=1"`
	Content     string              `json:"content"     validate:"required,min=1"`
	Category    string              `json:"category"`
	Attachments []AttachmentPayload `json:"attachments" validate:"omitempty,dive"`
}

// UpdateMemoRequest defines the payload for a partial memo edit. Every field
// is optional, but at least one must be present.
type UpdateMemoRequest struct {
	Title       *string             `json:"title,omitempty"       validate:"omitempty,min=1"`
	Content     *string             `json:"content,omitempty"     validate:"omitempty,min=1"`
	Category    *string             `json:"category,omitempty"`
	IsDone      *bool               `json:"is_done,omitempty"`
	IsPinned    *bool               `json:"is_pinned,omitempty"`
	Attachments []AttachmentPayload `json:"attachments,omitempty" validate:"omitempty,dive"`
}

// MemoResponse represents the response data for a memo.
type MemoResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Title       string              `json:"title"`
	Content     string              `json:"content"`
	Category    string              `json:"category"`
	IsDone      bool                `json:"is_done"`
	IsPinned    bool                `json:"is_pinned"`
	IsDeleted   bool                `json:"is_deleted"`
	Attachments []AttachmentPayload `json:"attachments"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// MemoListResponse carries one page of memos plus the total count of memos
// matching the filters, so clients can compute the page count.
type MemoListResponse struct {
	Memos []MemoResponse `json:"memos"`
	Total int            `json:"total"`
}

// EmptyTrashResponse reports how many memos a purge removed.
type EmptyTrashResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ProfileResponse is the authenticated user's account summary.
type ProfileResponse struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	MemoCount int       `json:"memo_count"`
}

// PresignAttachmentRequest asks for a presigned upload slot for one blob.
type PresignAttachmentRequest struct {
	Name     string `json:"name"      validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
}

// memoToResponse converts a domain.Memo to a MemoResponse.
func memoToResponse(memo *domain.Memo) MemoResponse {
	attachments := make([]AttachmentPayload, 0, len(memo.Attachments))
	for _, a := range memo.Attachments {
		attachments = append(attachments, AttachmentPayload{
			URL:      a.URL,
			Name:     a.Name,
			MimeType: a.MimeType,
		})
	}

	return MemoResponse{
		ID:          memo.ID.String(),
		UserID:      memo.UserID.String(),
		Title:       memo.Title,
		Content:     memo.Content,
		Category:    memo.Category,
		IsDone:      memo.IsDone,
		IsPinned:    memo.IsPinned,
		IsDeleted:   memo.IsDeleted,
		Attachments: attachments,
		CreatedAt:   memo.CreatedAt,
		UpdatedAt:   memo.UpdatedAt,
	}
}

// attachmentsToDomain converts wire attachments to domain attachments.
// A nil slice stays nil so that partial updates can distinguish "not
// supplied" from "cleared".
func attachmentsToDomain(payload []AttachmentPayload) []domain.Attachment {
	if payload == nil {
		return nil
	}
	attachments := make([]domain.Attachment, 0, len(payload))
	for _, a := range payload {
		attachments = append(attachments, domain.Attachment{
			URL:      a.URL,
			Name:     a.Name,
			MimeType: a.MimeType,
		})
	}
	return attachments
}
