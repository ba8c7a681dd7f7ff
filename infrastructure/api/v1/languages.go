package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wikiseek/wikiseek"
	"github.com/wikiseek/wikiseek/domain/language"
	"github.com/wikiseek/wikiseek/infrastructure/api/middleware"
	"github.com/wikiseek/wikiseek/infrastructure/api/v1/dto"
)

// LanguagesRouter handles the language catalog endpoint.
type LanguagesRouter struct {
	client *wikiseek.Client
}

// NewLanguagesRouter creates a LanguagesRouter.
func NewLanguagesRouter(client *wikiseek.Client) *LanguagesRouter {
	return &LanguagesRouter{client: client}
}

// Routes returns the chi router for the languages endpoint.
func (r *LanguagesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)

	return router
}

// List handles GET /api/v1/languages.
func (r *LanguagesRouter) List(w http.ResponseWriter, req *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, dto.LanguagesResponse{
		Default:   r.client.Config().DefaultLanguage(),
		Popular:   toLanguageInfos(language.Popular()),
		Languages: toLanguageInfos(language.All()),
	})
}

func toLanguageInfos(langs []language.Language) []dto.LanguageInfo {
	infos := make([]dto.LanguageInfo, len(langs))
	for i, l := range langs {
		infos[i] = dto.LanguageInfo{Code: l.Code(), Name: l.Name(), Flag: l.Flag()}
	}
	return infos
}
