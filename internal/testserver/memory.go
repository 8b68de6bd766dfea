package testserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

func encodeEvent(name string, payload any) ([]byte, error) {
	data, err := json.Marshal([]any{name, payload})
	if err != nil {
		return nil, err
	}
	return append([]byte("42"), data...), nil
}

// MemoryItems returns the stored memory items in insertion order.
func (s *Server) MemoryItems() []models.MemoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MemoryItem(nil), s.memory...)
}

func (s *Server) saveMemory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TextoOriginal string              `json:"texto_original"`
		Items         []models.MemoryItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Items == nil {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "items must be an array"}, http.StatusBadRequest)
		return
	}

	ids := make([]int64, 0, len(req.Items))
	s.mu.Lock()
	for _, item := range req.Items {
		s.memorySeq++
		// one second apart keeps the ordering deterministic
		s.memoryClock = s.memoryClock.Add(time.Second)
		item.ID = s.memorySeq
		item.TextoOriginal = req.TextoOriginal
		item.TimestampGuardado = s.memoryClock.Format(time.RFC3339)
		s.memory = append(s.memory, item)
		ids = append(ids, item.ID)
	}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.SaveMemoryResponse{Success: true, IDs: ids, Count: len(ids)}, http.StatusOK)
}

func (s *Server) loadMemory(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = models.DefaultMemoryLimit
	}
	tipo := models.MemoryType(r.URL.Query().Get("tipo"))

	s.mu.Lock()
	items := make([]models.MemoryItem, 0, len(s.memory))
	for _, item := range s.memory {
		if tipo == "" || item.Tipo == tipo {
			items = append(items, item)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TimestampGuardado > items[j].TimestampGuardado
	})
	if len(items) > limit {
		items = items[:limit]
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}
