package handlers

import (
	"net/http"
	"time"

	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/internal/usecases/queries"
)

type (
	journalEntryData struct {
		Seq  int       `json:"seq"`
		Text string    `json:"text"`
		At   time.Time `json:"at"`
	}

	JournalHandler struct {
		app *usecases.Application
	}
)

func NewJournalHandler(app *usecases.Application) *JournalHandler {
	return &JournalHandler{app: app}
}

func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.app.Queries.GetJournal.Execute(r.Context(), queries.GetJournalQuery{})
	if err != nil {
		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, err.Error())

		return
	}

	data := make([]journalEntryData, 0, len(entries))
	for _, entry := range entries {
		data = append(data, journalEntryData{
			Seq:  entry.Seq,
			Text: entry.Text,
			At:   entry.At,
		})
	}

	writeEnveloped(w, r, http.StatusOK, data, nil)
}
