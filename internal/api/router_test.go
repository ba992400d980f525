package api

import (
	"context"
	"encoding/json"
	"fmt"
	"fruit-order-service/internal/api/dto"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/services"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type mapRepo struct {
	orders map[domain.OrderID]*domain.Order
}

func (m *mapRepo) SaveOrder(_ context.Context, o *domain.Order) error {
	cp := *o
	cp.Fruits = append([]domain.Fruit(nil), o.Fruits...)
	m.orders[o.ID] = &cp
	return nil
}

func (m *mapRepo) GetOrder(_ context.Context, id domain.OrderID) (*domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("map repo: %w", domain.ErrOrderNotFound)
	}
	cp := *o
	cp.Fruits = append([]domain.Fruit(nil), o.Fruits...)
	return &cp, nil
}

func (m *mapRepo) ListOrders(context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := &mapRepo{orders: map[domain.OrderID]*domain.Order{}}
	srv := httptest.NewServer(NewRouter(services.NewOrderService(repo)))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, payload string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, body
}

const createBody = `{"fruits":[
	{"fruit_type":"Banana","net":{"value":"1","unit":"Kilograms"},"tare":{"value":"0.2","unit":"Kilograms"}},
	{"fruit_type":"Apple","net":{"value":"500","unit":"Grams"}}
]}`

func TestCreateAndGetOrder(t *testing.T) {
	srv := newTestServer(t)

	res, body := do(t, http.MethodPost, srv.URL+"/orders", createBody)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", res.StatusCode, body)
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Errorf("response should carry a request id")
	}

	var created dto.OrderResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(created.Fruits) != 2 {
		t.Fatalf("fruits = %d, want 2", len(created.Fruits))
	}
	banana := created.Fruits[0]
	if banana.Gross.Value != "1.20" || banana.Gross.Unit != "Kilograms" {
		t.Errorf("gross = %+v, want 1.20 Kilograms", banana.Gross)
	}
	if banana.WeightData != "NetWeight: 1 Kilograms\nTareWeight: 0.2 Kilograms\nGrossWeight: 1.2 Kilograms" {
		t.Errorf("weight_data = %q", banana.WeightData)
	}
	if created.Fruits[1].Tare != nil {
		t.Errorf("apple tare = %+v, want null", created.Fruits[1].Tare)
	}

	res, body = do(t, http.MethodGet, srv.URL+"/orders/"+created.OrderID, "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", res.StatusCode, body)
	}

	res, body = do(t, http.MethodGet, srv.URL+"/orders/"+created.OrderID+"/totals?unit=Grams", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("totals status = %d, body = %s", res.StatusCode, body)
	}
	var totals dto.TotalsResponse
	if err := json.Unmarshal(body, &totals); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if totals.Gross == nil || totals.Gross.Value != "1700.00" {
		t.Errorf("gross total = %+v, want 1700.00", totals.Gross)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"mixed units", `{"fruits":[{"fruit_type":"Banana","net":{"value":"1","unit":"Kilograms"},"tare":{"value":"200","unit":"Grams"}}]}`, http.StatusBadRequest},
		{"precision", `{"fruits":[{"fruit_type":"Banana","net":{"value":"1.001","unit":"Kilograms"}}]}`, http.StatusBadRequest},
		{"unknown field", `{"fruits":[],"extra":1}`, http.StatusBadRequest},
		{"empty", `{"fruits":[]}`, http.StatusBadRequest},
		{"not json", `nope`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := do(t, http.MethodPost, srv.URL+"/orders", tc.body)
			if res.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d, body = %s", res.StatusCode, tc.want, body)
			}
		})
	}
}

func TestCorrectFruitAndNotFound(t *testing.T) {
	srv := newTestServer(t)

	_, body := do(t, http.MethodPost, srv.URL+"/orders", createBody)
	var created dto.OrderResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	fix := `{"fruit_type":"Apple","net":{"value":"550","unit":"Grams"},"tare":{"value":"25","unit":"Grams"}}`
	res, body := do(t, http.MethodPut, srv.URL+"/orders/"+created.OrderID+"/fruits/1", fix)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("correct status = %d, body = %s", res.StatusCode, body)
	}
	var updated dto.OrderResponse
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Fruits[1].Gross.Value != "575.00" {
		t.Errorf("gross = %+v, want 575.00", updated.Fruits[1].Gross)
	}

	res, _ = do(t, http.MethodPut, srv.URL+"/orders/"+created.OrderID+"/fruits/9", fix)
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("out of range status = %d, want 400", res.StatusCode)
	}

	res, _ = do(t, http.MethodGet, srv.URL+"/orders/"+domain.NewOrderID().String(), "")
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("unknown order status = %d, want 404", res.StatusCode)
	}

	res, _ = do(t, http.MethodGet, srv.URL+"/orders/not-a-uuid", "")
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", res.StatusCode)
	}
}

func TestConvertEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, body := do(t, http.MethodGet, srv.URL+"/convert?value=1&from=Pounds&to=Grams", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", res.StatusCode, body)
	}
	var out dto.ConvertResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.To.Value != "453.59" || out.To.Unit != "Grams" {
		t.Fatalf("to = %+v, want 453.59 Grams", out.To)
	}

	res, _ = do(t, http.MethodGet, srv.URL+"/convert?value=1&from=Grams&to=Pounds", "")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("rounds-to-zero status = %d, want 400", res.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	res, _ := do(t, http.MethodGet, srv.URL+"/health", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}
