package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

type historyService interface {
	ItemHistory(ctx context.Context, itemID uuid.UUID) ([]domain.AuditEntry, error)
}

//go:generate moq -out history_service_mock_test.go -pkg rest . historyService

// AuditHandler serves the item audit trail.
type AuditHandler struct {
	svc historyService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc historyService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// ItemHistory handles GET /items/{id}/audit.
func (h *AuditHandler) ItemHistory(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	entries, err := h.svc.ItemHistory(r.Context(), itemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": toAuditEntries(entries)})
}
