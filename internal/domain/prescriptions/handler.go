package prescriptions

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/appointments/{appointmentID}/prescriptions", listByAppointmentHandler(svc))
}

type prescriptionResponse struct {
	ID            int64  `json:"id"`
	Medication    string `json:"medication"`
	Dosage        string `json:"dosage"`
	Instructions  string `json:"instructions"`
	AppointmentID int64  `json:"appointment_id"`
	ItemID        int64  `json:"item_id"`
	Quantity      int    `json:"quantity"`
}

func listByAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		items, err := svc.ListByAppointment(r.Context(), id)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]prescriptionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, prescriptionResponse{
				ID:            p.ID,
				Medication:    p.Medication,
				Dosage:        p.Dosage,
				Instructions:  p.Instructions,
				AppointmentID: p.AppointmentID,
				ItemID:        p.ItemID,
				Quantity:      p.Quantity,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
