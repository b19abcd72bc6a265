package request

type PayRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	CardNumber  string `json:"card_number" binding:"required"`
}
