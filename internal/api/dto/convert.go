package dto

type ConvertResponse struct {
	From WeightResponse `json:"from"`
	To   WeightResponse `json:"to"`
}
