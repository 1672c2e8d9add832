package nlu

import "github.com/seu-repo/mcp-chatbot/internal/domain"

type rule struct {
	intent   domain.Intent
	keywords []string
}

// Classifier assigns a query to the first intent whose keywords it contains.
type Classifier struct {
	rules []rule
}

func NewClassifier(t *Tables) *Classifier {
	return &Classifier{
		rules: []rule{
			{domain.IntentGreeting, t.Greetings},
			{domain.IntentHelp, t.HelpTerms},
			{domain.IntentGoodbye, t.Goodbyes},
			{domain.IntentWeather, t.WeatherKeywords},
			{domain.IntentStock, t.StockKeywords},
			{domain.IntentNews, t.NewsKeywords},
		},
	}
}

// Classify never fails; IntentUnmatched means no rule fired.
func (c *Classifier) Classify(q Query) domain.Intent {
	for _, r := range c.rules {
		if containsAny(q.Lower, r.keywords) {
			return r.intent
		}
	}
	return domain.IntentUnmatched
}

// Matches evaluates a single rule, regardless of priority.
func (c *Classifier) Matches(intent domain.Intent, q Query) bool {
	for _, r := range c.rules {
		if r.intent == intent {
			return containsAny(q.Lower, r.keywords)
		}
	}
	return false
}

// Order lists intents in the order they are tried.
func (c *Classifier) Order() []domain.Intent {
	out := make([]domain.Intent, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.intent
	}
	return out
}
