package addresses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/addresses", func(ar chi.Router) {
		ar.Get("/", listAddressesHandler(svc))
		ar.Get("/labels", listLabelSuggestionsHandler())
		ar.Post("/", addAddressHandler(svc))
		ar.Delete("/{addressID}", removeAddressHandler(svc))
		ar.Post("/{addressID}/select", selectAddressHandler(svc))
	})
}

type addressResponse struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

type addressListResponse struct {
	Items      []addressResponse `json:"items"`
	SelectedID *int64            `json:"selected_id"`
}

func listAddressesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := addressListResponse{Items: make([]addressResponse, 0, len(items))}
		for _, a := range items {
			out.Items = append(out.Items, toAddressResponse(a))
		}
		if id := svc.Selected(); id != 0 {
			out.SelectedID = &id
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listLabelSuggestionsHandler devuelve las opciones fijas del formulario;
// "Other" se maneja como texto libre del lado del cliente.
func listLabelSuggestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, LabelSuggestions)
	}
}

type addAddressRequest struct {
	Label  string `json:"label"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

func addAddressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Add(r.Context(), AddInput{
			Label:  req.Label,
			Street: req.Street,
			City:   req.City,
			Zip:    req.Zip,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAddressResponse(a))
	}
}

func removeAddressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "addressID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid address id", http.StatusBadRequest)
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func selectAddressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "addressID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid address id", http.StatusBadRequest)
			return
		}

		if err := svc.Select(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAddressResponse(a Address) addressResponse {
	return addressResponse{
		ID:     a.ID,
		Label:  a.Label,
		Street: a.Street,
		City:   a.City,
		Zip:    a.Zip,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
