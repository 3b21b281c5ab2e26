package adapthttp

import (
	"net/http"

	"nutrilog/internal/app"
)

type measurementRequest struct {
	Date       string  `json:"date"`
	Height     float64 `json:"height"`
	HeightUnit string  `json:"heightUnit"`
	Weight     float64 `json:"weight"`
	Notes      *string `json:"notes"`
}

func (s *Server) decodeMeasurement(w http.ResponseWriter, r *http.Request) (app.MeasurementInput, bool) {
	var req measurementRequest
	if err := parseJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return app.MeasurementInput{}, false
	}
	date, err := parseDate(req.Date, s.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return app.MeasurementInput{}, false
	}
	return app.MeasurementInput{
		Date:       date,
		Height:     req.Height,
		HeightUnit: req.HeightUnit,
		Weight:     req.Weight,
		Notes:      req.Notes,
	}, true
}

func (s *Server) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.Measurements.List(ctx, user.ID)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		in, ok := s.decodeMeasurement(w, r)
		if !ok {
			return
		}
		m, err := s.svc.Measurements.Create(ctx, user.ID, in)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, m)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		in, ok := s.decodeMeasurement(w, r)
		if !ok {
			return
		}
		m, err := s.svc.Measurements.Update(ctx, user.ID, id, in)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, m)

	case http.MethodDelete:
		if err := s.svc.Measurements.Delete(ctx, user.ID, id); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
