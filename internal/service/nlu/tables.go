package nlu

import (
	"regexp"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

// Tables holds every keyword list and pattern the classifier and extractor
// read. Build it once with DefaultTables and share the pointer; nothing
// mutates it afterwards.
type Tables struct {
	Greetings       []string
	HelpTerms       []string
	Goodbyes        []string
	WeatherKeywords []string
	StockKeywords   []string
	NewsKeywords    []string

	TimeWords           []string
	ForecastKeywords    []string
	Tickers             []string
	StockSearchKeywords []string
	StockNoiseWords     []string
	LeadingFillers      []string
	NewsCategories      []string

	Countries *domain.CountryDirectory

	sepIn      *regexp.Regexp
	sepFor     *regexp.Regexp
	sepOf      *regexp.Regexp
	sepWith    *regexp.Regexp
	sepLookFor *regexp.Regexp
	sepStock   *regexp.Regexp

	dayCount  *regexp.Regexp
	dayPhrase *regexp.Regexp

	newsGeneric  []*regexp.Regexp
	newsCategory []*regexp.Regexp
	newsSearch   []*regexp.Regexp
	newsCountry  []*regexp.Regexp
}

const categoryAlternation = `(technology|business|sports|entertainment|health|science)`

// DefaultTables returns the keyword tables used in production.
func DefaultTables() *Tables {
	return &Tables{
		Greetings: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
		HelpTerms: []string{"help", "what can you do", "how do you work", "what are your features"},
		Goodbyes:  []string{"goodbye", "bye", "see you", "later", "exit", "quit"},
		WeatherKeywords: []string{
			"weather", "whether", "temperature", "forecast",
			"how is the weather", "what is the weather",
			"weather in", "whether in", "weather for", "whether for",
		},
		StockKeywords: []string{"stock", "stocks", "price", "prices", "stock price", "how is", "what is"},
		NewsKeywords:  []string{"news", "headline", "headlines"},

		TimeWords:           []string{"today", "tomorrow", "now", "tonight", "this week", "next week"},
		ForecastKeywords:    []string{"forecast", "5 day", "3 day", "7 day"},
		Tickers:             []string{"aapl", "msft", "googl", "amzn", "tsla", "meta", "nvda", "intc", "amd"},
		StockSearchKeywords: []string{"search", "find", "stocks with", "look for"},
		StockNoiseWords:     []string{"stock", "stocks", "price", "prices", "share", "shares"},
		LeadingFillers: []string{
			"please", "can", "could", "you", "show", "me", "give", "tell", "get", "check",
			"what", "what's", "whats", "is", "are", "how", "how's", "hows", "the", "a", "an",
			"find", "search", "look", "up", "for", "about", "current", "latest", "today's",
		},
		NewsCategories: []string{"technology", "business", "sports", "entertainment", "health", "science"},

		Countries: domain.NewCountryDirectory(),

		sepIn:      regexp.MustCompile(`(?i) in `),
		sepFor:     regexp.MustCompile(`(?i) for `),
		sepOf:      regexp.MustCompile(`(?i) of `),
		sepWith:    regexp.MustCompile(`(?i) with `),
		sepLookFor: regexp.MustCompile(`(?i) look for `),
		sepStock:   regexp.MustCompile(`(?i) stock`),

		dayCount:  regexp.MustCompile(`(\d+)\s*day`),
		dayPhrase: regexp.MustCompile(`(?i)\s*\b(?:for\s+)?(?:the\s+)?(?:next\s+)?\d+\s*-?\s*days?\s*$`),

		newsGeneric: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:top|latest|today'?s|breaking)\s+(?:news\s+)?headlines?\b`),
			regexp.MustCompile(`(?i)\b(?:top|latest|today'?s|breaking)\s+news\b`),
			regexp.MustCompile(`(?i)^\W*(?:please\s+)?(?:(?:show|give|tell)\s+me\s+|get\s+)?(?:the\s+)?(?:news|headlines?)(?:\s+today)?\W*$`),
		},
		newsCategory: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b` + categoryAlternation + `\s+(?:news|headlines?)\b`),
			regexp.MustCompile(`(?i)\b(?:news|headlines?)\s+(?:on|about|in|for)\s+` + categoryAlternation + `\b`),
		},
		newsSearch: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bsearch\s+(?:for\s+)?news\s+(?:about|on|regarding|for)\s+(.+?)\s*[?.!]*$`),
			regexp.MustCompile(`(?i)\bfind\s+(?:me\s+)?news\s+(?:about|on|regarding|for)\s+(.+?)\s*[?.!]*$`),
			regexp.MustCompile(`(?i)\bnews\s+(?:about|on|regarding)\s+(.+?)\s*[?.!]*$`),
			regexp.MustCompile(`(?i)\bsearch\s+(?:for\s+)?news\s+(.+?)\s*[?.!]*$`),
		},
		newsCountry: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:news|headlines?)\s+from\s+(.+?)\s*[?.!]*$`),
		},
	}
}
