package chatbot

import (
	"context"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
	"github.com/seu-repo/mcp-chatbot/internal/service/format"
	"github.com/seu-repo/mcp-chatbot/internal/service/nlu"
)

const newsPageSize = 5

func (c *Chatbot) handleNews(ctx context.Context, q nlu.Query) reply {
	req, ok := c.extractor.News(q)
	if !ok {
		return reply{status: noSlots}
	}

	switch req.Kind {
	case domain.NewsSearch:
		res, err := c.news.SearchArticles(ctx, req.Topic, domain.SearchOptions{PageSize: newsPageSize})
		if err != nil {
			return failure("Sorry, I couldn't search for news about '%s'. %s", req.Topic, domain.ErrorMessage(err))
		}
		return answer(format.NewsSearch(res, req.Topic))

	case domain.NewsByCountry:
		if req.Country == "" {
			return failure("Sorry, I don't recognize '%s' as a country. Try using country codes like 'US', 'GB', 'IN'.", req.CountryName)
		}
		res, err := c.news.TopHeadlines(ctx, req.Country, "", newsPageSize)
		if err != nil {
			return failure("Sorry, I couldn't get news from %s. %s", req.CountryName, domain.ErrorMessage(err))
		}
		return answer(format.News(res))

	default:
		res, err := c.news.TopHeadlines(ctx, req.Country, req.Category, newsPageSize)
		if err != nil {
			if req.Category != "" {
				return failure("Sorry, I couldn't get %s news. %s", req.Category, domain.ErrorMessage(err))
			}
			return failure("Sorry, I couldn't get headlines. %s", domain.ErrorMessage(err))
		}
		return answer(format.News(res))
	}
}
