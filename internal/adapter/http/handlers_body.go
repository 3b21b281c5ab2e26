package adapthttp

import (
	"net/http"

	"nutrilog/internal/app"
)

type weightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
	Notes  *string `json:"notes"`
}

type heightRequest struct {
	Date   string  `json:"date"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
	Notes  *string `json:"notes"`
}

func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.Weights.List(ctx, user.ID)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req weightRequest
		if err := parseJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		date, err := parseDate(req.Date, s.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		rec, err := s.svc.Weights.Record(ctx, user.ID, app.WeightInput{
			Date: date, Weight: req.Weight, Unit: req.Unit, Notes: req.Notes,
		})
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWeight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Weights.Delete(r.Context(), userFromContext(r.Context()).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (s *Server) handleHeights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.Heights.List(ctx, user.ID)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req heightRequest
		if err := parseJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		date, err := parseDate(req.Date, s.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		rec, err := s.svc.Heights.Record(ctx, user.ID, app.HeightInput{
			Date: date, Height: req.Height, Unit: req.Unit, Notes: req.Notes,
		})
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleHeight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Heights.Delete(r.Context(), userFromContext(r.Context()).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
