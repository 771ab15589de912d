package handlers

import (
	"OptiTools/internal/service"
	"OptiTools/internal/sms"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// BulkHandler принимает пакеты сообщений и отдаёт принятые.
type BulkHandler struct {
	BulkService *service.BulkService
	Logger      *zap.SugaredLogger
}

// NewBulkHandler создаёт хендлер bulkmessages
func NewBulkHandler(bulkService *service.BulkService, logger *zap.SugaredLogger) *BulkHandler {
	return &BulkHandler{BulkService: bulkService, Logger: logger}
}

// Send принимает пакет в форме {"messages":[...]}
func (h *BulkHandler) Send(w http.ResponseWriter, r *http.Request) {
	var batch sms.Batch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	res, err := h.BulkService.Accept(r.Context(), batch)
	if err != nil {
		h.Logger.Errorw("accept batch failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.Logger.Infow("batch accepted", "event_id", res.EventID, "messages", res.Messages)

	writeJSON(w, http.StatusOK, res)
}

// List отдаёт последние сообщения (?limit=N)
func (h *BulkHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	msgs, err := h.BulkService.Recent(r.Context(), limit)
	if err != nil {
		h.Logger.Errorw("list messages failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
