package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/shop"
)

// Notifier publica el banner de confirmación al agregar items.
type Notifier interface {
	Publish(message string)
}

func RegisterRoutes(r chi.Router, svc *Service, shopSvc *shop.Service, notifier Notifier) {
	r.Route("/cart", func(cr chi.Router) {
		cr.Get("/", getCartHandler(svc, shopSvc))
		cr.Post("/items", addItemHandler(svc, shopSvc, notifier))
		cr.Patch("/items/{itemID}", updateQuantityHandler(svc))
		cr.Delete("/items/{itemID}", removeItemHandler(svc))
	})
}

type cartLineResponse struct {
	ItemID   int64   `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type cartResponse struct {
	Items    []cartLineResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
}

func getCartHandler(svc *Service, shopSvc *shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := cartResponse{Items: make([]cartLineResponse, 0, len(lines))}
		for _, line := range lines {
			item, err := shopSvc.GetByID(r.Context(), line.ItemID)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			out.Items = append(out.Items, cartLineResponse{
				ItemID:   line.ItemID,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: line.Quantity,
			})
			out.Subtotal += item.Price * float64(line.Quantity)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type addItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity *int  `json:"quantity"` // opcional, default 1
}

func addItemHandler(svc *Service, shopSvc *shop.Service, notifier Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		line, err := svc.Add(r.Context(), req.ItemID, quantity)
		if err != nil {
			writeErr(w, err)
			return
		}

		if notifier != nil {
			if item, err := shopSvc.GetByID(r.Context(), req.ItemID); err == nil {
				notifier.Publish(fmt.Sprintf("%s added to cart!", item.Name))
			}
		}

		writeJSON(w, http.StatusCreated, struct {
			ItemID   int64 `json:"item_id"`
			Quantity int   `json:"quantity"`
		}{line.ItemID, line.Quantity})
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func updateQuantityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}

		var req updateQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.UpdateQuantity(r.Context(), itemID, req.Quantity); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func removeItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}

		if err := svc.Remove(r.Context(), itemID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shop.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, shop.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
