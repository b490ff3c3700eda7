package handlers

import (
	"net/http"

	"temperature_converter/internal/models"

	"github.com/gin-gonic/gin"
)

const errLoadHistory = "failed to load history"

// HistoryEntry is a record plus the line the history list shows for it.
type HistoryEntry struct {
	models.ConversionRecord
	Text string `json:"text" example:"212.00 Fahrenheit to 100.00 Celsius"`
}

type HistoryResponse struct {
	Count   int            `json:"count"`
	Records []HistoryEntry `json:"records"`
}

func newHistoryEntry(r models.ConversionRecord) HistoryEntry {
	return HistoryEntry{ConversionRecord: r, Text: r.String()}
}

func newHistoryEntries(records []models.ConversionRecord) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		out = append(out, newHistoryEntry(r))
	}
	return out
}

// @Summary      Conversion history
// @Description  Every successful conversion of this process, oldest first
// @Tags         history
// @Produce      json
// @Success      200  {object}  HistoryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	records, err := h.services.All(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "history_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{Count: len(records), Records: newHistoryEntries(records)})
}
