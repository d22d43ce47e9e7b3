package common

const (
	// RedisKeyLastPrice stores the most recently observed price per stock code.
	RedisKeyLastPrice = "stock_alert:last_price:%s"
)
