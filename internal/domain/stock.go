package domain

// StockQuote is the latest global quote for a symbol, in USD.
type StockQuote struct {
	Symbol           string  `json:"symbol"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Price            float64 `json:"price"`
	Volume           int64   `json:"volume"`
	LatestTradingDay string  `json:"latest_trading_day"`
	PreviousClose    float64 `json:"previous_close"`
	Change           float64 `json:"change"`
	ChangePercent    string  `json:"change_percent"`
}

type SymbolMatch struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	Currency    string `json:"currency"`
	MarketOpen  string `json:"market_open"`
	MarketClose string `json:"market_close"`
	Timezone    string `json:"timezone"`
}

type SymbolSearch struct {
	Results []SymbolMatch `json:"results"`
	Count   int           `json:"count"`
}

type IntradayPoint struct {
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// IntradaySeries holds the most recent points first.
type IntradaySeries struct {
	Symbol   string          `json:"symbol"`
	Interval string          `json:"interval"`
	Data     []IntradayPoint `json:"data"`
}
