// Package dto defines the JSON shapes of the v1 API.
package dto

// SearchResponse is the body of GET /api/v1/search.
type SearchResponse struct {
	Query    string          `json:"query"`
	Language LanguageInfo    `json:"language"`
	Count    int             `json:"count"`
	Results  []ArticleResult `json:"results"`
}

// ArticleResult is one article in a search response.
type ArticleResult struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	Message     string       `json:"message"`
	URL         string       `json:"url"`
	ImageURL    string       `json:"image_url,omitempty"`
	WikidataID  string       `json:"wikidata_id,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
	WordCount   int          `json:"word_count,omitempty"`
}

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LanguageInfo describes a language edition.
type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// LanguagesResponse is the body of GET /api/v1/languages.
type LanguagesResponse struct {
	Default   string         `json:"default"`
	Popular   []LanguageInfo `json:"popular"`
	Languages []LanguageInfo `json:"languages"`
}
