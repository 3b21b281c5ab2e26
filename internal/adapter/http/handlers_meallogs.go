package adapthttp

import (
	"net/http"

	"nutrilog/internal/app"
)

type mealLogRequest struct {
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	MealName string   `json:"mealName"`
	Qty      int      `json:"qty"`
	Calories *float64 `json:"calories"`
	Notes    *string  `json:"notes"`
}

func (s *Server) decodeMealLog(w http.ResponseWriter, r *http.Request) (app.MealLogInput, bool) {
	var req mealLogRequest
	if err := parseJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return app.MealLogInput{}, false
	}
	date, err := parseDate(req.Date, s.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return app.MealLogInput{}, false
	}
	return app.MealLogInput{
		Date:     date,
		Type:     req.Type,
		MealName: req.MealName,
		Qty:      req.Qty,
		Calories: req.Calories,
		Notes:    req.Notes,
	}, true
}

func (s *Server) handleMealLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	switch r.Method {
	case http.MethodGet:
		logs, err := s.svc.MealLogs.List(ctx, user.ID)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, logs)

	case http.MethodPost:
		in, ok := s.decodeMealLog(w, r)
		if !ok {
			return
		}
		l, err := s.svc.MealLogs.Create(ctx, user.ID, in)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, l)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleMealLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		in, ok := s.decodeMealLog(w, r)
		if !ok {
			return
		}
		l, err := s.svc.MealLogs.Update(ctx, user.ID, id, in)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, l)

	case http.MethodDelete:
		if err := s.svc.MealLogs.Delete(ctx, user.ID, id); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
