package appointments

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/clinics"
	"pet-care-hub/internal/domain/pets"
)

// Notifier publica el banner de confirmación (ver internal/domain/notices).
type Notifier interface {
	Publish(message string)
}

func RegisterRoutes(r chi.Router, svc *Service, clinicSvc *clinics.Service, notifier Notifier) {
	r.Post("/bookings", bookHandler(svc, clinicSvc, notifier))
	r.Get("/bookings/concerns", listConcernsHandler())

	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Post("/{appointmentID}/cancel", cancelHandler(svc))
		ar.Post("/{appointmentID}/reschedule", rescheduleHandler(svc))
	})
}

type bookPetRequest struct {
	PetID    int64    `json:"pet_id"`
	Concerns []string `json:"concerns"`
	Details  string   `json:"details"`
}

type bookRequest struct {
	ClinicID int64            `json:"clinic_id"`
	Slot     string           `json:"slot"`
	Modality string           `json:"modality"`
	DoctorID int64            `json:"doctor_id"`
	Pets     []bookPetRequest `json:"pets"`
}

type appointmentResponse struct {
	ID       int64  `json:"id"`
	ClinicID int64  `json:"clinic_id"`
	PetID    int64  `json:"pet_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
	Modality string `json:"modality"`
	DoctorID int64  `json:"doctor_id"`
}

func bookHandler(svc *Service, clinicSvc *clinics.Service, notifier Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var modality Modality
		if raw := strings.TrimSpace(req.Modality); raw != "" {
			m, ok := ParseModality(raw)
			if !ok {
				http.Error(w, "modality must be in-person or video", http.StatusBadRequest)
				return
			}
			modality = m
		}

		selections := make([]PetSelection, 0, len(req.Pets))
		for _, p := range req.Pets {
			selections = append(selections, PetSelection{
				PetID:    p.PetID,
				Concerns: p.Concerns,
				Details:  p.Details,
			})
		}

		created, err := svc.Book(r.Context(), BookInput{
			ClinicID: req.ClinicID,
			Slot:     req.Slot,
			Modality: modality,
			DoctorID: req.DoctorID,
			Pets:     selections,
		})
		if err != nil {
			writeErr(w, err)
			return
		}

		if notifier != nil {
			// la clínica existe: Book ya la validó
			if clinic, err := clinicSvc.GetByID(r.Context(), req.ClinicID); err == nil {
				notifier.Publish(fmt.Sprintf("Appointment booked at %s for %s!", clinic.Name, req.Slot))
			}
		}

		out := make([]appointmentResponse, 0, len(created))
		for _, a := range created {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// listConcernsHandler devuelve los tags prearmados del formulario de booking.
func listConcernsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CommonConcerns)
	}
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Appointment
			err   error
		)

		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, ok := ParseStatus(raw)
			if !ok {
				http.Error(w, "unknown status", http.StatusBadRequest)
				return
			}
			items, err = svc.ListByStatus(r.Context(), status)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

type cancelRequest struct {
	Confirm bool `json:"confirm"`
}

func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		var req cancelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Cancel(r.Context(), id, req.Confirm)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

type rescheduleRequest struct {
	Slot string `json:"slot"`
}

func rescheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		var req rescheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Reschedule(r.Context(), id, req.Slot)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, clinics.ErrNotFound),
		errors.Is(err, pets.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrTerminalStatus):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConfirmationRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:       a.ID,
		ClinicID: a.ClinicID,
		PetID:    a.PetID,
		Date:     a.Date,
		Time:     a.Time,
		Reason:   a.Reason,
		Status:   string(a.Status),
		Modality: string(a.Modality),
		DoctorID: a.DoctorID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
