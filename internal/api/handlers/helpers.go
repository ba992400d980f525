package handlers

import (
	"encoding/json"
	"errors"
	"fruit-order-service/internal/api/dto"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/platform/logger"
	"io"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Error("encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps domain failures to status codes. Validation errors
// carry their message to the client; anything else is logged and hidden.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, r, http.StatusNotFound, "order not found")
	case domain.IsValidation(err):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		logger.L().Error(op+" failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads exactly one JSON object with no unknown fields.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func weightResponse(w domain.Weight) dto.WeightResponse {
	return dto.WeightResponse{Value: w.Value().StringFixed(2), Unit: string(w.Unit())}
}

func orderResponse(o *domain.Order) dto.OrderResponse {
	res := dto.OrderResponse{
		OrderID: o.ID.String(),
		Fruits:  make([]dto.FruitResponse, 0, len(o.Fruits)),
	}
	for _, f := range o.Fruits {
		fr := dto.FruitResponse{
			FruitType:  string(f.Type),
			Net:        weightResponse(f.Weights.Net().Weight()),
			Gross:      weightResponse(f.Weights.Gross().Weight()),
			WeightData: domain.EncodeProfile(f.Weights),
		}
		if tare, ok := f.Weights.Tare(); ok {
			t := weightResponse(tare.Weight())
			fr.Tare = &t
		}
		res.Fruits = append(res.Fruits, fr)
	}
	return res
}
