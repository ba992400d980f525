package dto

type WeightRequest struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

type FruitRequest struct {
	FruitType string         `json:"fruit_type"`
	Net       WeightRequest  `json:"net"`
	Tare      *WeightRequest `json:"tare"`
}

type CreateOrderRequest struct {
	Fruits []FruitRequest `json:"fruits"`
}

type WeightResponse struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

type FruitResponse struct {
	FruitType  string          `json:"fruit_type"`
	Net        WeightResponse  `json:"net"`
	Tare       *WeightResponse `json:"tare"`
	Gross      WeightResponse  `json:"gross"`
	WeightData string          `json:"weight_data"`
}

type OrderResponse struct {
	OrderID string          `json:"order_id"`
	Fruits  []FruitResponse `json:"fruits"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type TotalsResponse struct {
	OrderID string          `json:"order_id"`
	Unit    string          `json:"unit"`
	Net     *WeightResponse `json:"net"`
	Tare    *WeightResponse `json:"tare"`
	Gross   *WeightResponse `json:"gross"`
}
