package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"pet-care-hub/internal/ports/assistant"
	"pet-care-hub/internal/router"
)

// fakeAssistant responde siempre lo mismo; suficiente para el flujo HTTP.
type fakeAssistant struct{ reply string }

func (f fakeAssistant) CreateSession(ctx context.Context) (assistant.Session, error) {
	return assistant.Session{ID: "s-1"}, nil
}

func (f fakeAssistant) Send(ctx context.Context, s assistant.Session, text string) (string, error) {
	return f.reply, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Assistant: fakeAssistant{reply: "Drink plenty of water."},
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_BookingLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Las clínicas llegan pinned-first y después por distancia
	{
		st, body := doReq(t, ts.URL, "GET", "/clinics", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list clinics, got %d body=%s", st, string(body))
		}
		var clinics []struct {
			ID     int64 `json:"id"`
			Pinned bool  `json:"pinned"`
		}
		mustUnmarshal(t, body, &clinics)
		if len(clinics) != 3 {
			t.Fatalf("expected 3 clinics, got %d", len(clinics))
		}
		if clinics[0].ID != 2 || !clinics[0].Pinned {
			t.Fatalf("expected pinned clinic 2 first, got %d", clinics[0].ID)
		}
		if clinics[1].ID != 1 || clinics[2].ID != 3 {
			t.Fatalf("expected distance order 1,3 after pinned, got %d,%d", clinics[1].ID, clinics[2].ID)
		}
	}

	// 2) Booking para dos mascotas en la misma clínica y slot
	var apptIDs []int64
	{
		st, body := doReq(t, ts.URL, "POST", "/bookings", map[string]any{
			"clinic_id": 1,
			"slot":      "09:00 AM",
			"pets": []map[string]any{
				{"pet_id": 1, "concerns": []string{"Vaccinations"}},
				{"pet_id": 2, "concerns": []string{"Skin Issue"}, "details": "scratching"},
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 booking, got %d body=%s", st, string(body))
		}
		var created []struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
			Reason string `json:"reason"`
		}
		mustUnmarshal(t, body, &created)
		if len(created) != 2 {
			t.Fatalf("expected 2 appointments, got %d", len(created))
		}
		for _, a := range created {
			if a.Status != "upcoming" {
				t.Fatalf("expected upcoming, got %s", a.Status)
			}
			apptIDs = append(apptIDs, a.ID)
		}
		if created[0].Reason != "Concerns: Vaccinations." {
			t.Fatalf("unexpected reason %q", created[0].Reason)
		}
	}

	// 3) El banner de confirmación queda publicado
	{
		st, body := doReq(t, ts.URL, "GET", "/notices/banner", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 banner, got %d", st)
		}
		var banner struct {
			Message string `json:"message"`
		}
		mustUnmarshal(t, body, &banner)
		if banner.Message != "Appointment booked at Happy Paws Veterinary Clinic for 09:00 AM!" {
			t.Fatalf("unexpected banner %q", banner.Message)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/notices/banner", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 dismiss, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/notices/banner", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 after dismiss, got %d", st)
		}
	}

	id := apptIDs[0]

	// 4) Reschedule a otro slot de la misma clínica
	{
		st, body := doReq(t, ts.URL, "POST", apptPath(id)+"/reschedule", map[string]any{"slot": "11:30 AM"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 reschedule, got %d body=%s", st, string(body))
		}

		// slot ajeno a la clínica => 400
		st, _ = doReq(t, ts.URL, "POST", apptPath(id)+"/reschedule", map[string]any{"slot": "10:00 AM"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 foreign slot, got %d", st)
		}
	}

	// 5) Cancelar exige confirm
	{
		st, _ := doReq(t, ts.URL, "POST", apptPath(id)+"/cancel", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without confirm, got %d", st)
		}

		st, body := doReq(t, ts.URL, "POST", apptPath(id)+"/cancel", map[string]any{"confirm": true})
		if st != http.StatusOK {
			t.Fatalf("expected 200 cancel, got %d body=%s", st, string(body))
		}
		var cancelled struct {
			Status string `json:"status"`
		}
		mustUnmarshal(t, body, &cancelled)
		if cancelled.Status != "cancelled" {
			t.Fatalf("expected cancelled, got %s", cancelled.Status)
		}

		// terminal: segundo cancel => 409
		st, _ = doReq(t, ts.URL, "POST", apptPath(id)+"/cancel", map[string]any{"confirm": true})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 terminal cancel, got %d", st)
		}
	}

	// 6) La cancelada desaparece del filtro upcoming
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments?status=upcoming", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var items []struct {
			ID int64 `json:"id"`
		}
		mustUnmarshal(t, body, &items)
		for _, a := range items {
			if a.ID == id {
				t.Fatalf("cancelled appointment %d still listed as upcoming", id)
			}
		}
	}
}

func TestHTTP_ViewHighlight(t *testing.T) {
	ts := newTestServer(t)

	// highlight de una cita past (seed id 2) navega y filtra
	st, body := doReq(t, ts.URL, "POST", "/view/highlight", map[string]any{"appointment_id": 2})
	if st != http.StatusOK {
		t.Fatalf("expected 200 highlight, got %d body=%s", st, string(body))
	}
	var view struct {
		Screen            string `json:"screen"`
		AppointmentFilter string `json:"appointment_filter"`
		HighlightedID     *int64 `json:"highlighted_id"`
	}
	mustUnmarshal(t, body, &view)
	if view.Screen != "Appointments" || view.AppointmentFilter != "past" {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.HighlightedID == nil || *view.HighlightedID != 2 {
		t.Fatalf("expected highlight 2, got %v", view.HighlightedID)
	}

	st, body = doReq(t, ts.URL, "DELETE", "/view/highlight", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 clear highlight, got %d", st)
	}
	mustUnmarshal(t, body, &view)
	if view.HighlightedID != nil {
		t.Fatalf("expected highlight cleared, got %v", *view.HighlightedID)
	}
	if view.Screen != "Appointments" {
		t.Fatalf("expected screen untouched by clear, got %s", view.Screen)
	}

	// cita inexistente => 404
	st, _ = doReq(t, ts.URL, "POST", "/view/highlight", map[string]any{"appointment_id": 999})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown appointment, got %d", st)
	}
}

func TestHTTP_CartFlow(t *testing.T) {
	ts := newTestServer(t)

	// agregar dos veces el mismo item acumula
	st, _ := doReq(t, ts.URL, "POST", "/cart/items", map[string]any{"item_id": 201, "quantity": 2})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/cart/items", map[string]any{"item_id": 201})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add default qty, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/cart", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 cart, got %d", st)
	}
	var cart struct {
		Items []struct {
			ItemID   int64   `json:"item_id"`
			Price    float64 `json:"price"`
			Quantity int     `json:"quantity"`
		} `json:"items"`
		Subtotal float64 `json:"subtotal"`
	}
	mustUnmarshal(t, body, &cart)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected merged line qty 3, got %+v", cart.Items)
	}
	if math.Abs(cart.Subtotal-3*55.99) > 1e-9 {
		t.Fatalf("unexpected subtotal %.2f", cart.Subtotal)
	}

	// banner del último add
	st, body = doReq(t, ts.URL, "GET", "/notices/banner", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 banner, got %d", st)
	}
	var banner struct {
		Message string `json:"message"`
	}
	mustUnmarshal(t, body, &banner)
	if banner.Message != "Premium Dry Dog Food added to cart!" {
		t.Fatalf("unexpected banner %q", banner.Message)
	}

	// item desconocido => 404
	st, _ = doReq(t, ts.URL, "POST", "/cart/items", map[string]any{"item_id": 999})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown item, got %d", st)
	}

	// setear cantidad 0 elimina el renglón
	st, _ = doReq(t, ts.URL, "PATCH", "/cart/items/201", map[string]any{"quantity": 0})
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 update, got %d", st)
	}
	st, body = doReq(t, ts.URL, "GET", "/cart", nil)
	mustUnmarshal(t, body, &cart)
	if len(cart.Items) != 0 || cart.Subtotal != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestHTTP_Addresses(t *testing.T) {
	ts := newTestServer(t)

	var list struct {
		Items []struct {
			ID    int64  `json:"id"`
			Label string `json:"label"`
		} `json:"items"`
		SelectedID *int64 `json:"selected_id"`
	}

	// seed: Home seleccionada
	_, body := doReq(t, ts.URL, "GET", "/addresses", nil)
	mustUnmarshal(t, body, &list)
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 seeded addresses, got %d", len(list.Items))
	}
	if list.SelectedID == nil || *list.SelectedID != 1 {
		t.Fatalf("expected address 1 selected, got %v", list.SelectedID)
	}

	// agregar selecciona la nueva
	st, body := doReq(t, ts.URL, "POST", "/addresses", map[string]any{
		"label": "Other", "street": "9 Side St", "city": "Petville", "zip": "11111",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add address, got %d body=%s", st, string(body))
	}
	var created struct {
		ID int64 `json:"id"`
	}
	mustUnmarshal(t, body, &created)

	_, body = doReq(t, ts.URL, "GET", "/addresses", nil)
	mustUnmarshal(t, body, &list)
	if list.SelectedID == nil || *list.SelectedID != created.ID {
		t.Fatalf("expected new address selected, got %v", list.SelectedID)
	}

	// borrar la seleccionada reasigna a la primera restante
	st, _ = doReq(t, ts.URL, "DELETE", addressPath(created.ID), nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete, got %d", st)
	}
	_, body = doReq(t, ts.URL, "GET", "/addresses", nil)
	mustUnmarshal(t, body, &list)
	if list.SelectedID == nil || *list.SelectedID != 1 {
		t.Fatalf("expected selection back to 1, got %v", list.SelectedID)
	}

	// borrar inexistente => 404
	st, _ = doReq(t, ts.URL, "DELETE", addressPath(999), nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 delete unknown, got %d", st)
	}

	// campos en blanco => 400
	st, _ = doReq(t, ts.URL, "POST", "/addresses", map[string]any{
		"label": "Home", "street": " ", "city": "x", "zip": "1",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 blank street, got %d", st)
	}
}

func TestHTTP_Concierge(t *testing.T) {
	ts := newTestServer(t)

	// send antes de la sesión => 409
	st, _ := doReq(t, ts.URL, "POST", "/concierge/messages", map[string]any{"text": "hi"})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 before session, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/concierge/session", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 session, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/concierge/messages", map[string]any{"text": "my dog seems tired"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 send, got %d body=%s", st, string(body))
	}
	var reply struct {
		Sender string `json:"sender"`
		Text   string `json:"text"`
	}
	mustUnmarshal(t, body, &reply)
	if reply.Sender != "ai" || reply.Text != "Drink plenty of water." {
		t.Fatalf("unexpected reply %+v", reply)
	}

	st, body = doReq(t, ts.URL, "GET", "/concierge/messages", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 transcript, got %d", st)
	}
	var transcript struct {
		State    string `json:"state"`
		Messages []struct {
			Sender string `json:"sender"`
		} `json:"messages"`
	}
	mustUnmarshal(t, body, &transcript)
	if transcript.State != "ready" {
		t.Fatalf("expected ready, got %s", transcript.State)
	}
	// saludo + user + ai
	if len(transcript.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(transcript.Messages))
	}
}

func TestHTTP_ShopAndPrescriptions(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/shop/items?category=Food", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 shop items, got %d", st)
	}
	var items []struct {
		Category string `json:"category"`
	}
	mustUnmarshal(t, body, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 food items, got %d", len(items))
	}
	for _, it := range items {
		if it.Category != "Food" {
			t.Fatalf("expected only Food, got %s", it.Category)
		}
	}

	st, _ = doReq(t, ts.URL, "GET", "/shop/items?category=Toys", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown category, got %d", st)
	}

	// recetas de la cita past del seed
	st, body = doReq(t, ts.URL, "GET", "/appointments/2/prescriptions", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 prescriptions, got %d", st)
	}
	var rx []struct {
		ItemID int64 `json:"item_id"`
	}
	mustUnmarshal(t, body, &rx)
	if len(rx) != 2 {
		t.Fatalf("expected 2 prescriptions, got %d", len(rx))
	}
}

func TestHTTP_FormSuggestions(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/bookings/concerns", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 concerns, got %d", st)
	}
	var concerns []string
	mustUnmarshal(t, body, &concerns)
	if len(concerns) != 6 || concerns[0] != "Annual Check-up" || concerns[5] != "Follow-up" {
		t.Fatalf("unexpected concern tags %v", concerns)
	}

	st, body = doReq(t, ts.URL, "GET", "/addresses/labels", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 labels, got %d", st)
	}
	var labels []string
	mustUnmarshal(t, body, &labels)
	if len(labels) != 2 || labels[0] != "Home" || labels[1] != "Work" {
		t.Fatalf("unexpected label suggestions %v", labels)
	}
}

func TestHTTP_ClinicPinReordersList(t *testing.T) {
	ts := newTestServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/clinics/3/pin", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 pin, got %d", st)
	}

	_, body := doReq(t, ts.URL, "GET", "/clinics", nil)
	var clinics []struct {
		ID     int64 `json:"id"`
		Pinned bool  `json:"pinned"`
	}
	mustUnmarshal(t, body, &clinics)

	// pinned: 2 (1.2km) antes que 3 (5.8km); luego la no pinned
	if clinics[0].ID != 2 || clinics[1].ID != 3 || clinics[2].ID != 1 {
		t.Fatalf("unexpected order %+v", clinics)
	}
}

// -------------------------
// Helpers
// -------------------------

func apptPath(id int64) string {
	return "/appointments/" + strconv.FormatInt(id, 10)
}

func addressPath(id int64) string {
	return "/addresses/" + strconv.FormatInt(id, 10)
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out
}
