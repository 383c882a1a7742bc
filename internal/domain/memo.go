package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Memo
var (
	ErrEmptyMemoID       = errors.New("memo ID cannot be empty")
	ErrEmptyMemoUserID   = errors.New("memo user ID cannot be empty")
	ErrEmptyMemoTitle    = errors.New("memo title cannot be empty")
	ErrEmptyMemoContent  = errors.New("memo content cannot be empty")
	ErrInvalidAttachment = errors.New("attachment must have a URL and a name")
)

// Attachment references a blob uploaded to external storage. Only the
// location and display metadata are persisted; the bytes live in the
// blob store.
type Attachment struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
}

// Validate checks that the attachment carries enough to be rendered.
func (a Attachment) Validate() error {
	if a.URL == "" || a.Name == "" {
		return ErrInvalidAttachment
	}
	return nil
}

// Memo is a short note owned by exactly one user. A memo is either active
// or trashed (IsDeleted); trashed memos are recoverable until they are
// purged, which removes the row permanently.
type Memo struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Category    string       `json:"category"`
	IsDone      bool         `json:"is_done"`
	IsPinned    bool         `json:"is_pinned"`
	IsDeleted   bool         `json:"is_deleted"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewMemo creates a new active Memo owned by the given user.
// It generates a new UUID for the memo ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewMemo(userID uuid.UUID, title, content, category string, attachments []Attachment) (*Memo, error) {
	if attachments == nil {
		attachments = []Attachment{}
	}
	memo := &Memo{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Content:     content,
		Category:    category,
		Attachments: attachments,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := memo.Validate(); err != nil {
		return nil, err
	}

	return memo, nil
}

// Validate checks if the Memo has valid data.
// Returns an error if any field fails validation.
func (m *Memo) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMemoID
	}

	if m.UserID == uuid.Nil {
		return ErrEmptyMemoUserID
	}

	if m.Title == "" {
		return ErrEmptyMemoTitle
	}

	if m.Content == "" {
		return ErrEmptyMemoContent
	}

	for _, a := range m.Attachments {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// MoveToTrash transitions an active memo to the trash.
// Returns ErrMemoTrashed if the memo is already trashed.
func (m *Memo) MoveToTrash() error {
	if m.IsDeleted {
		return ErrMemoTrashed
	}
	m.IsDeleted = true
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// RestoreFromTrash transitions a trashed memo back to active.
// Returns ErrMemoNotTrashed if the memo is not in the trash.
func (m *Memo) RestoreFromTrash() error {
	if !m.IsDeleted {
		return ErrMemoNotTrashed
	}
	m.IsDeleted = false
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// MemoUpdate carries a partial edit of a memo. Nil fields are left
// untouched; at least one field must be set.
type MemoUpdate struct {
	Title       *string
	Content     *string
	Category    *string
	IsDone      *bool
	IsPinned    *bool
	Attachments []Attachment
}

// Empty reports whether the update carries no recognized fields.
func (u MemoUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Category == nil &&
		u.IsDone == nil && u.IsPinned == nil && u.Attachments == nil
}

// Apply merges the update into the memo and refreshes UpdatedAt.
// Returns ErrNoFieldsSpecified for an empty update, ErrMemoTrashed when the
// memo is not active, and validation errors if the result is invalid.
func (m *Memo) Apply(update MemoUpdate) error {
	if update.Empty() {
		return ErrNoFieldsSpecified
	}
	if m.IsDeleted {
		return ErrMemoTrashed
	}

	if update.Title != nil {
		m.Title = *update.Title
	}
	if update.Content != nil {
		m.Content = *update.Content
	}
	if update.Category != nil {
		m.Category = *update.Category
	}
	if update.IsDone != nil {
		m.IsDone = *update.IsDone
	}
	if update.IsPinned != nil {
		m.IsPinned = *update.IsPinned
	}
	if update.Attachments != nil {
		m.Attachments = update.Attachments
	}

	if err := m.Validate(); err != nil {
		return err
	}

	m.UpdatedAt = time.Now().UTC()
	return nil
}
