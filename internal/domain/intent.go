package domain

// Intent is the coarse category a query is routed to.
type Intent int

const (
	IntentUnmatched Intent = iota
	IntentGreeting
	IntentHelp
	IntentGoodbye
	IntentWeather
	IntentStock
	IntentNews
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentHelp:
		return "help"
	case IntentGoodbye:
		return "goodbye"
	case IntentWeather:
		return "weather"
	case IntentStock:
		return "stock"
	case IntentNews:
		return "news"
	default:
		return "unmatched"
	}
}

// WeatherRequest holds the slots extracted from a weather query.
type WeatherRequest struct {
	City     string
	Country  string
	Days     int
	Forecast bool
}

// StockRequest holds either a ticker or a free-text company name.
// Search marks queries that asked to list matching symbols instead of quoting one.
type StockRequest struct {
	Term   string
	Search bool
}

type NewsKind int

const (
	NewsTopHeadlines NewsKind = iota
	NewsSearch
	NewsByCountry
)

// NewsRequest is one of top-headlines (Country, Category), search (Topic)
// or by-country (CountryName, resolved into Country).
type NewsRequest struct {
	Kind        NewsKind
	Country     string
	Category    string
	Topic       string
	CountryName string
}
