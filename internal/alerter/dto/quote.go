package dto

// NaverQuoteResponse is the upstream polling API response envelope.
type NaverQuoteResponse struct {
	PollingInterval int              `json:"pollingInterval"`
	Datas           []NaverQuoteData `json:"datas"`
	Time            string           `json:"time"`
}

// NaverQuoteData is one quoted instrument in the polling response.
// Prices come back as comma-grouped strings.
type NaverQuoteData struct {
	ItemCode                    string `json:"itemCode"`
	StockName                   string `json:"stockName"`
	ClosePrice                  string `json:"closePrice"`
	CompareToPreviousClosePrice string `json:"compareToPreviousClosePrice"`
	FluctuationsRatio           string `json:"fluctuationsRatio"`
	OpenPrice                   string `json:"openPrice"`
	HighPrice                   string `json:"highPrice"`
	LowPrice                    string `json:"lowPrice"`
	AccumulatedTradingVolume    string `json:"accumulatedTradingVolume"`
}
