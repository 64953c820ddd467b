package concierge

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/concierge", func(cr chi.Router) {
		cr.Post("/session", initHandler(svc))
		cr.Get("/messages", listMessagesHandler(svc))
		cr.Post("/messages", sendMessageHandler(svc))
	})
}

type messageResponse struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type transcriptResponse struct {
	State    string            `json:"state"`
	Messages []messageResponse `json:"messages"`
}

func initHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Initialize(r.Context()); err != nil {
			if errors.Is(err, ErrBusy) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			// el fallback ya quedó en el transcript; el estado lo cuenta todo
			writeJSON(w, http.StatusBadGateway, map[string]string{"state": string(svc.State())})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"state": string(svc.State())})
	}
}

func listMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transcript := svc.Transcript()

		out := transcriptResponse{
			State:    string(svc.State()),
			Messages: make([]messageResponse, 0, len(transcript)),
		}
		for _, m := range transcript {
			out.Messages = append(out.Messages, messageResponse{
				Sender: string(m.Sender),
				Text:   m.Text,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reply, err := svc.Send(r.Context(), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, ErrBusy):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrNotReady):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{
			Sender: string(reply.Sender),
			Text:   reply.Text,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
