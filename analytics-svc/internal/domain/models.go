package domain

type ProductAnalytics struct {
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
}

type DailyOrders struct {
	Date      string `json:"date"`
	Orders    int64  `json:"orders"`
	Cancelled int64  `json:"cancelled"`
}
