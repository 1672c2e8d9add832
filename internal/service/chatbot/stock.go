package chatbot

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/service/format"
	"github.com/seu-repo/mcp-chatbot/internal/service/nlu"
)

func (c *Chatbot) handleStock(ctx context.Context, q nlu.Query) reply {
	req, ok := c.extractor.Stock(q)
	if !ok {
		return reply{status: noSlots}
	}

	if req.Search {
		res, err := c.stocks.SearchSymbols(ctx, req.Term)
		if err != nil {
			return failure("Sorry, I couldn't search for stocks with '%s'. %s", req.Term, domain.ErrorMessage(err))
		}
		return answer(format.SymbolSearch(res))
	}

	return c.resolveQuote(ctx, req.Term)
}

// resolveQuote treats term as a company name first and falls back to using
// it as a literal ticker when the symbol search finds nothing.
func (c *Chatbot) resolveQuote(ctx context.Context, term string) reply {
	res, err := c.stocks.SearchSymbols(ctx, term)
	switch {
	case err != nil:
		c.log.Debug("Symbol search failed, quoting term directly",
			zap.String("term", term),
			zap.Error(err),
		)
	case len(res.Results) > 0:
		symbol := res.Results[0].Symbol
		quote, err := c.stocks.Quote(ctx, symbol)
		if err != nil {
			return failure("Sorry, I couldn't get stock information for %s (%s). %s", term, symbol, domain.ErrorMessage(err))
		}
		return answer(format.Quote(quote))
	}

	quote, err := c.stocks.Quote(ctx, strings.ToUpper(term))
	if err != nil {
		if domain.IsConfigurationError(err) {
			return failure("Sorry, I couldn't get stock information for %s. %s", term, domain.ErrorMessage(err))
		}
		return failure("Sorry, I couldn't find stock information for '%s'. Try searching for a different company or use the stock symbol directly.", term)
	}
	return answer(format.Quote(quote))
}
