// Package v1 implements the v1 HTTP API routes.
package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wikiseek/wikiseek"
	"github.com/wikiseek/wikiseek/application/service"
	"github.com/wikiseek/wikiseek/domain/article"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/domain/wikierr"
	"github.com/wikiseek/wikiseek/infrastructure/api/middleware"
	"github.com/wikiseek/wikiseek/infrastructure/api/v1/dto"
	"github.com/wikiseek/wikiseek/internal/log"
	"github.com/wikiseek/wikiseek/internal/markdown"
	"github.com/wikiseek/wikiseek/internal/text"
)

// SearchRouter handles the search endpoint.
type SearchRouter struct {
	client *wikiseek.Client
	logger *log.Logger
}

// NewSearchRouter creates a SearchRouter.
func NewSearchRouter(client *wikiseek.Client) *SearchRouter {
	return &SearchRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for the search endpoint.
func (r *SearchRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.Search)

	return router
}

// Search handles GET /api/v1/search?q=<query>. The query may carry a
// language prefix ("en: golang"). Results come back in display order.
func (r *SearchRouter) Search(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	query := req.URL.Query().Get("q")
	if query == "" {
		middleware.WriteError(w, req, wikierr.NoResults(query), r.logger)
		return
	}

	result, err := r.client.Articles.Query(ctx, query)
	if err != nil {
		if werr, ok := wikierr.As(err); ok && werr.Kind() == wikierr.KindNoResults {
			lang, _ := language.ResolveWith(query, r.defaultLanguage())
			middleware.WriteErrorMessage(w, req, err, r.logger,
				markdown.FormatNoResults(werr.Query(), lang.Name()))
			return
		}
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	articles := result.Articles()
	article.SortForDisplay(articles)

	middleware.WriteJSON(w, http.StatusOK, r.buildResponse(result.Query(), result, articles))
}

// defaultLanguage returns the configured fallback language.
func (r *SearchRouter) defaultLanguage() language.Language {
	if l, ok := language.FromCode(r.client.Config().DefaultLanguage()); ok {
		return l
	}
	return language.Default()
}

func (r *SearchRouter) buildResponse(query string, result service.Result, articles []article.Enriched) dto.SearchResponse {
	cfg := r.client.Config()
	lang := result.Language()

	results := make([]dto.ArticleResult, 0, len(articles))
	for _, a := range articles {
		description := a.Description()
		if description == "" {
			description = a.BestDescription(cfg.MaxDescriptionLength())
		} else {
			description = text.Truncate(description, cfg.MaxDescriptionLength())
		}

		content := a.BestContent(cfg.MaxContentLength())

		item := dto.ArticleResult{
			Title:       a.Hit().Title(),
			Description: description,
			Content:     content,
			Message:     markdown.FormatArticleMessage(a.Hit().Title(), content, a.URL()),
			URL:         a.URL(),
			ImageURL:    a.ImageURL(),
			WikidataID:  a.WikidataID(),
			WordCount:   a.WordCount(),
		}

		if info, ok := a.Info(); ok {
			if coords, has := info.Coordinates(); has {
				item.Coordinates = &dto.Coordinates{Lat: coords.Lat, Lon: coords.Lon}
			}
			item.Categories = info.Categories()
		}

		results = append(results, item)
	}

	return dto.SearchResponse{
		Query: query,
		Language: dto.LanguageInfo{
			Code: lang.Code(),
			Name: lang.Name(),
			Flag: lang.Flag(),
		},
		Count:   len(results),
		Results: results,
	}
}
