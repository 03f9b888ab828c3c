package intelligence

import (
	"sort"
	"strings"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
	"github.com/jhoicas/inventory-intel/pkg/normalize"
)

// Puntajes del ranking léxico por par (token de consulta, token de producto).
const (
	scoreExactMatch     = 3
	scoreTokenContains  = 2 // el token del producto contiene al de la consulta
	scoreReverseContain = 1 // la consulta contiene al token del producto (len >= 3)
	scoreSharedPrefix   = 1
	scoreCodeBonus      = 5 // el código contiene la consulta completa
)

const (
	minReverseContainLen = 3
	sharedPrefixMax      = 4
	minSharedPrefixLen   = 3
)

// SearchResult es un producto con su puntaje léxico frente a una consulta.
type SearchResult struct {
	Product entity.Product
	Score   int
}

// Search puntúa y ordena el catálogo contra una consulta de texto libre.
//
// Consulta en blanco devuelve todos los productos con puntaje 0 en el orden de
// entrada ("mostrar todo, sin rankear"). Con consulta, solo se devuelven
// productos con puntaje > 0, ordenados de mayor a menor; el empate conserva el
// orden relativo original (ordenamiento estable).
func Search(query string, products []entity.Product) []SearchResult {
	normQuery := normalize.Normalize(query)
	if normQuery == "" {
		all := make([]SearchResult, len(products))
		for i, p := range products {
			all[i] = SearchResult{Product: p}
		}
		return all
	}

	queryTokens := normalize.Tokens(query)

	var results []SearchResult
	for _, p := range products {
		score := scoreProduct(queryTokens, normQuery, p)
		if score > 0 {
			results = append(results, SearchResult{Product: p, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

// SearchWithCategory filtra primero por categoría (insensible a mayúsculas y
// tildes) y luego aplica Search sobre el subconjunto.
func SearchWithCategory(query string, products []entity.Product, category string) []SearchResult {
	want := normalize.Normalize(category)
	if want == "" {
		return Search(query, products)
	}
	var filtered []entity.Product
	for _, p := range products {
		if normalize.Normalize(p.Category) == want {
			filtered = append(filtered, p)
		}
	}
	return Search(query, filtered)
}

// Autocomplete devuelve hasta max descripciones/códigos distintos que empiezan
// por o contienen la consulta parcial normalizada, en orden de descubrimiento.
func Autocomplete(partial string, products []entity.Product, max int) []string {
	q := normalize.Normalize(partial)
	if q == "" || max <= 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var suggestions []string
	for _, p := range products {
		for _, candidate := range []string{p.Description, p.Code} {
			n := normalize.Normalize(candidate)
			if n == "" || (!strings.HasPrefix(n, q) && !strings.Contains(n, q)) {
				continue
			}
			if _, dup := seen[candidate]; dup {
				continue
			}
			seen[candidate] = struct{}{}
			suggestions = append(suggestions, candidate)
			if len(suggestions) == max {
				return suggestions
			}
		}
	}
	return suggestions
}

// scoreProduct acumula el puntaje de todos los pares (token consulta, token
// producto) más el bono de código.
func scoreProduct(queryTokens []string, normQuery string, p entity.Product) int {
	productTokens := tokensForProduct(p)
	score := 0
	for _, qt := range queryTokens {
		for _, pt := range productTokens {
			score += pairScore(qt, pt)
		}
	}
	// Los aciertos por código pesan más que los de descripción.
	if strings.Contains(normalize.Normalize(p.Code), normQuery) {
		score += scoreCodeBonus
	}
	return score
}

// tokensForProduct arma el conjunto de tokens propio del producto:
// palabras de la descripción + palabras de la categoría + fragmentos del código.
func tokensForProduct(p entity.Product) []string {
	tokens := normalize.Tokens(p.Description)
	tokens = append(tokens, normalize.Tokens(p.Category)...)
	tokens = append(tokens, normalize.CodeTokens(p.Code)...)
	return tokens
}

// pairScore puntúa un par de tokens según las reglas de coincidencia exacta,
// contención en ambas direcciones y prefijo compartido. Las reglas son
// excluyentes: aplica la primera que coincida.
func pairScore(queryToken, productToken string) int {
	if queryToken == productToken {
		return scoreExactMatch
	}
	if strings.Contains(productToken, queryToken) {
		return scoreTokenContains
	}
	if len(productToken) >= minReverseContainLen && strings.Contains(queryToken, productToken) {
		return scoreReverseContain
	}
	n := min(len(queryToken), len(productToken), sharedPrefixMax)
	if n >= minSharedPrefixLen && queryToken[:n] == productToken[:n] {
		return scoreSharedPrefix
	}
	return 0
}
