package handlers

import (
	"fruit-order-service/internal/api/dto"
	"fruit-order-service/internal/services"
	"net/http"
)

// Convert handles GET /convert?value=1&from=Pounds&to=Grams.
func Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	out, err := services.Convert(q.Get("value"), q.Get("from"), q.Get("to"))
	if err != nil {
		writeDomainError(w, r, "convert", err)
		return
	}

	res := dto.ConvertResponse{
		From: dto.WeightResponse{Value: q.Get("value"), Unit: q.Get("from")},
		To:   weightResponse(out),
	}
	writeJSON(w, r, http.StatusOK, res)
}
