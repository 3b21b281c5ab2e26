package adapthttp

import (
	"net/http"

	"nutrilog/internal/app"
)

// foodRequest mirrors app.FoodInput; the web client also sends a meal type,
// which foods do not carry.
type foodRequest struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Unit     string  `json:"unit"`
	Qty      int     `json:"qty"`
}

func (s *Server) handleFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	switch r.Method {
	case http.MethodGet:
		foods, err := s.svc.Foods.List(ctx, user.ID)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, foods)

	case http.MethodPost:
		var req foodRequest
		if err := parseJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		food, err := s.svc.Foods.Create(ctx, user.ID, app.FoodInput{
			Name:     req.Name,
			Calories: req.Calories,
			Unit:     req.Unit,
			Qty:      req.Qty,
		})
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, food)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleFood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Foods.Delete(r.Context(), userFromContext(r.Context()).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
