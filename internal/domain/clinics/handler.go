package clinics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clinics", func(cr chi.Router) {
		cr.Get("/", listClinicsHandler(svc))
		cr.Get("/{clinicID}", getClinicHandler(svc))
		cr.Post("/{clinicID}/pin", togglePinHandler(svc))
	})
}

type doctorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type clinicResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"review_count"`
	DistanceKM  float64          `json:"distance_km"`
	Pinned      bool             `json:"pinned"`
	Slots       []string         `json:"available_slots"`
	ImageURL    string           `json:"image_url"`
	Doctors     []doctorResponse `json:"doctors"`
}

func listClinicsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]clinicResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClinicResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "clinicID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid clinic id", http.StatusBadRequest)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClinicResponse(c))
	}
}

func togglePinHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "clinicID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid clinic id", http.StatusBadRequest)
			return
		}

		c, err := svc.TogglePin(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClinicResponse(c))
	}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "clinic not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toClinicResponse(c Clinic) clinicResponse {
	docs := make([]doctorResponse, 0, len(c.Doctors))
	for _, d := range c.Doctors {
		docs = append(docs, doctorResponse{ID: d.ID, Name: d.Name})
	}
	slots := c.Slots
	if slots == nil {
		slots = []string{}
	}
	return clinicResponse{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		Rating:      c.Rating,
		ReviewCount: c.ReviewCount,
		DistanceKM:  c.DistanceKM,
		Pinned:      c.Pinned,
		Slots:       slots,
		ImageURL:    c.ImageURL,
		Doctors:     docs,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
