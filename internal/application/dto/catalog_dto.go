package dto

// SearchResultDTO producto rankeado por el buscador léxico.
type SearchResultDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	Score       int    `json:"score"`
}

// SearchResponse respuesta de GET /api/products/search.
type SearchResponse struct {
	Query   string            `json:"query"`
	Total   int               `json:"total"`
	Results []SearchResultDTO `json:"results"`
}

// AutocompleteResponse respuesta de GET /api/products/autocomplete.
type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// SuggestCategoryRequest petición de POST /api/categories/suggest.
type SuggestCategoryRequest struct {
	Description string `json:"description"`
	Top         int    `json:"top"` // 0 = solo la mejor
}

// CategorySuggestionDTO categoría inferida con su confianza.
type CategorySuggestionDTO struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// SuggestCategoryResponse respuesta del sugeridor.
type SuggestCategoryResponse struct {
	Suggestions []CategorySuggestionDTO `json:"suggestions"` // vacío = sin evidencia
}
