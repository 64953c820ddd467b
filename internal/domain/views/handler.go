package views

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/appointments"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/view", func(vr chi.Router) {
		vr.Get("/", getViewHandler(svc))
		vr.Post("/screen", setScreenHandler(svc))
		vr.Post("/modal", openModalHandler(svc))
		vr.Delete("/modal", closeModalHandler(svc))
		vr.Post("/highlight", highlightHandler(svc))
		vr.Delete("/highlight", clearHighlightHandler(svc))
	})
}

type viewResponse struct {
	Screen            string `json:"screen"`
	Modal             string `json:"modal"`
	AppointmentFilter string `json:"appointment_filter"`
	HighlightedID     *int64 `json:"highlighted_id"`
}

func toViewResponse(s Snapshot) viewResponse {
	out := viewResponse{
		Screen:            string(s.Screen),
		Modal:             string(s.Modal),
		AppointmentFilter: string(s.AppointmentFilter),
	}
	if s.HighlightedID != 0 {
		id := s.HighlightedID
		out.HighlightedID = &id
	}
	return out
}

func getViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toViewResponse(svc.Snapshot()))
	}
}

type setScreenRequest struct {
	Screen string `json:"screen"`
}

func setScreenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setScreenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		screen, ok := ParseScreen(req.Screen)
		if !ok {
			http.Error(w, "unknown screen", http.StatusBadRequest)
			return
		}

		svc.SetScreen(screen)
		writeJSON(w, http.StatusOK, toViewResponse(svc.Snapshot()))
	}
}

type openModalRequest struct {
	Modal string `json:"modal"`
}

func openModalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openModalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		modal, ok := ParseModal(req.Modal)
		if !ok {
			http.Error(w, "unknown modal", http.StatusBadRequest)
			return
		}

		svc.OpenModal(modal)
		writeJSON(w, http.StatusOK, toViewResponse(svc.Snapshot()))
	}
}

func closeModalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.CloseModal()
		writeJSON(w, http.StatusOK, toViewResponse(svc.Snapshot()))
	}
}

type highlightRequest struct {
	AppointmentID int64 `json:"appointment_id"`
}

func highlightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req highlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snapshot, err := svc.Highlight(r.Context(), req.AppointmentID)
		if err != nil {
			switch {
			case errors.Is(err, appointments.ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			case errors.Is(err, appointments.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(snapshot))
	}
}

func clearHighlightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearHighlight()
		writeJSON(w, http.StatusOK, toViewResponse(svc.Snapshot()))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
