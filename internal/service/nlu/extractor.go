package nlu

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

const (
	defaultForecastDays = 5
	defaultNewsCountry  = "us"
)

// Left behind once a trailing time word is cut ("in Paris for tomorrow").
var danglingWords = []string{"for", "on", "at", "in"}

// Extractor pulls request slots out of a query. Every method reports false
// when the query carries no usable slot, which lets the caller move on to
// the next intent.
type Extractor struct {
	t *Tables
}

func NewExtractor(t *Tables) *Extractor {
	return &Extractor{t: t}
}

// Weather reads the location after " in " (or " for "), an optional
// ", country" suffix and, for forecasts, a day count.
func (e *Extractor) Weather(q Query) (domain.WeatherRequest, bool) {
	req := domain.WeatherRequest{Days: defaultForecastDays}

	if m := e.t.dayCount.FindStringSubmatch(q.Lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			req.Days = n
		}
		req.Forecast = true
	}
	if containsAny(q.Lower, e.t.ForecastKeywords) {
		req.Forecast = true
	}

	for _, sep := range []*regexp.Regexp{e.t.sepIn, e.t.sepFor} {
		span, ok := afterFirst(q.Raw, sep)
		if !ok {
			continue
		}
		location := e.cleanLocation(span, req.Forecast)
		if location == "" {
			continue
		}

		city, country, _ := strings.Cut(location, ",")
		req.City = strings.TrimSpace(city)
		req.Country = strings.TrimSpace(country)
		if req.City == "" {
			continue
		}
		return req, true
	}
	return domain.WeatherRequest{}, false
}

func (e *Extractor) cleanLocation(span string, forecast bool) string {
	location := strings.TrimSpace(span)
	for {
		prev := location
		location = strings.TrimRight(location, "?.!")
		location = strings.TrimSpace(location)
		for _, w := range e.t.TimeWords {
			location, _ = trimTrailingWord(location, w)
		}
		if forecast {
			location = e.t.dayPhrase.ReplaceAllString(location, "")
			location, _ = trimTrailingWord(location, "forecast")
		}
		for _, w := range danglingWords {
			location, _ = trimTrailingWord(location, w)
		}
		location = strings.TrimSpace(location)
		if location == prev {
			return location
		}
	}
}

// Stock finds a ticker or company name. Sources are tried in order: text
// after " of ", an explicit symbol search, a leading allowlisted ticker, and
// the words before " stock". The search keywords are checked before the
// ticker allowlist, so "AAPL find peers for Apple" becomes a symbol search
// rather than an AAPL quote.
func (e *Extractor) Stock(q Query) (domain.StockRequest, bool) {
	if rest, ok := afterFirst(q.Raw, e.t.sepOf); ok {
		term := trimTrailingPunct(dropWords(rest, e.t.StockNoiseWords))
		term = dropLeading(term, []string{"the"})
		if term != "" {
			return domain.StockRequest{Term: term}, true
		}
	}

	if containsAny(q.Lower, e.t.StockSearchKeywords) {
		if term := e.searchTerm(q.Raw); term != "" {
			return domain.StockRequest{Term: term, Search: true}, true
		}
	}

	if fields := strings.Fields(q.Raw); len(fields) > 0 {
		first := strings.Trim(fields[0], "?.,!")
		for _, ticker := range e.t.Tickers {
			if strings.EqualFold(first, ticker) {
				return domain.StockRequest{Term: first}, true
			}
		}
	}

	if before, ok := beforeFirst(q.Raw, e.t.sepStock); ok {
		term := trimTrailingPunct(dropLeading(trimTrailingPunct(before), e.t.LeadingFillers))
		if term != "" {
			return domain.StockRequest{Term: term}, true
		}
	}

	return domain.StockRequest{}, false
}

func (e *Extractor) searchTerm(raw string) string {
	for _, sep := range []*regexp.Regexp{e.t.sepWith, e.t.sepFor, e.t.sepLookFor} {
		if rest, ok := afterFirst(raw, sep); ok {
			term := trimTrailingPunct(dropWords(rest, e.t.StockNoiseWords))
			if term != "" {
				return term
			}
		}
	}
	return ""
}

// News applies the headline, category, topic and country pattern families in
// that order; the first match wins. Headline phrases are found anywhere in
// the query, so a query that also names a country ("latest news from
// Germany") skips them and reaches the country family. A by-country request
// whose name is not in the directory comes back with an empty Country.
func (e *Extractor) News(q Query) (domain.NewsRequest, bool) {
	if !matchesAny(q.Raw, e.t.newsCountry) {
		for _, re := range e.t.newsGeneric {
			if re.MatchString(q.Raw) {
				return domain.NewsRequest{Kind: domain.NewsTopHeadlines, Country: defaultNewsCountry}, true
			}
		}
	}

	for _, re := range e.t.newsCategory {
		if m := re.FindStringSubmatch(q.Raw); m != nil {
			return domain.NewsRequest{
				Kind:     domain.NewsTopHeadlines,
				Country:  defaultNewsCountry,
				Category: strings.ToLower(m[1]),
			}, true
		}
	}

	for _, re := range e.t.newsSearch {
		if m := re.FindStringSubmatch(q.Raw); m != nil {
			if topic := trimTrailingPunct(m[1]); topic != "" {
				return domain.NewsRequest{Kind: domain.NewsSearch, Topic: topic}, true
			}
		}
	}

	for _, re := range e.t.newsCountry {
		if m := re.FindStringSubmatch(q.Raw); m != nil {
			name := trimTrailingPunct(m[1])
			if name == "" {
				continue
			}
			code, _ := e.t.Countries.Resolve(name)
			return domain.NewsRequest{Kind: domain.NewsByCountry, Country: code, CountryName: name}, true
		}
	}

	return domain.NewsRequest{}, false
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
