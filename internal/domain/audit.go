package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one append-only record of a mutating or tenant-crossing action.
// CompanyID is the tenant context at the time of the action.
type AuditEntry struct {
	ID               uuid.UUID
	Action           AuditAction
	UserID           uuid.UUID
	CompanyID        uuid.UUID
	ItemID           *uuid.UUID
	ItemName         *string
	QuantityChange   *int
	PreviousQuantity *int
	NewQuantity      *int
	Note             *string
	CreatedAt        time.Time
}

// NewAuditEntry builds an entry with a fresh id and the current UTC time.
func NewAuditEntry(action AuditAction, userID, companyID uuid.UUID) AuditEntry {
	return AuditEntry{
		ID:        uuid.New(),
		Action:    action,
		UserID:    userID,
		CompanyID: companyID,
		CreatedAt: time.Now().UTC(),
	}
}

// WithNote returns a copy of e carrying the given item name and note.
func (e AuditEntry) WithNote(itemName, note string) AuditEntry {
	e.ItemName = &itemName
	e.Note = &note
	return e
}
