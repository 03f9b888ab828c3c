package insights

import (
	"context"
	"strings"

	"github.com/jhoicas/inventory-intel/internal/application/dto"
	"github.com/jhoicas/inventory-intel/internal/domain"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
	"github.com/jhoicas/inventory-intel/internal/domain/repository"
)

// Tope de sugerencias de autocompletado devueltas por petición.
const defaultAutocompleteMax = 10

// CatalogUseCase expone la búsqueda léxica, el autocompletado y el sugeridor
// de categorías sobre el snapshot de productos.
type CatalogUseCase struct {
	products  repository.ProductRepository
	suggester *intelligence.Suggester
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, suggester *intelligence.Suggester) *CatalogUseCase {
	return &CatalogUseCase{products: products, suggester: suggester}
}

// Search rankea el catálogo contra la consulta. category opcional restringe
// los resultados a una categoría exacta (insensible a mayúsculas y acentos).
func (uc *CatalogUseCase) Search(ctx context.Context, query, category string) (*dto.SearchResponse, error) {
	products, err := uc.products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var ranked []intelligence.SearchResult
	if category != "" {
		ranked = intelligence.SearchWithCategory(query, products, category)
	} else {
		ranked = intelligence.Search(query, products)
	}

	results := make([]dto.SearchResultDTO, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, dto.SearchResultDTO{
			Code:        r.Product.Code,
			Description: r.Product.Description,
			Category:    r.Product.Category,
			Stock:       r.Product.Stock,
			Score:       r.Score,
		})
	}
	return &dto.SearchResponse{
		Query:   query,
		Total:   len(results),
		Results: results,
	}, nil
}

// Autocomplete devuelve hasta max sugerencias de texto para el prefijo dado.
func (uc *CatalogUseCase) Autocomplete(ctx context.Context, partial string, max int) (*dto.AutocompleteResponse, error) {
	if max <= 0 || max > defaultAutocompleteMax {
		max = defaultAutocompleteMax
	}
	products, err := uc.products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AutocompleteResponse{
		Suggestions: intelligence.Autocomplete(partial, products, max),
	}, nil
}

// SuggestCategory infiere la categoría de una descripción. Con Top > 1
// devuelve las mejores n candidatas; una respuesta vacía significa que no hay
// evidencia suficiente.
func (uc *CatalogUseCase) SuggestCategory(req dto.SuggestCategoryRequest) (*dto.SuggestCategoryResponse, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, domain.ErrInvalidInput
	}

	var candidates []intelligence.CategorySuggestion
	if req.Top > 1 {
		candidates = uc.suggester.SuggestTop(req.Description, req.Top)
	} else {
		if best := uc.suggester.Suggest(req.Description); best.Category != "" {
			candidates = []intelligence.CategorySuggestion{best}
		}
	}

	suggestions := make([]dto.CategorySuggestionDTO, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, dto.CategorySuggestionDTO{
			Category:   c.Category,
			Confidence: c.Confidence,
		})
	}
	return &dto.SuggestCategoryResponse{Suggestions: suggestions}, nil
}
