package intelligence

import (
	"math"
	"sort"
	"strings"

	"github.com/jhoicas/inventory-intel/pkg/normalize"
)

// Puntajes del clasificador por palabras clave: coincidencia completa de la
// palabra como substring, o coincidencia de sus primeros 4 caracteres para
// palabras de 4+ (cubre plurales y variantes: "tornillos" matchea "torn").
const (
	keywordFullScore   = 2
	keywordPrefixScore = 1
	keywordPrefixLen   = 4
)

// Confianza del sugeridor: piso fijo más escala lineal por evidencia.
const (
	suggestConfidenceFloor = 0.6
	suggestConfidencePerHit = 0.15
)

// Descripciones de menos de 3 caracteres no aportan evidencia.
const minDescriptionLen = 3

// CategorySuggestion es una categoría inferida con su confianza.
// Category vacío significa "sin evidencia".
type CategorySuggestion struct {
	Category   string
	Confidence float64
}

// CategoryKeywords asocia una categoría con sus palabras clave. El orden de la
// tabla es significativo: ante empate de puntaje gana la primera categoría de
// la tabla (desempate determinista y documentado, no aleatoriedad).
type CategoryKeywords struct {
	Category string   `mapstructure:"category"`
	Keywords []string `mapstructure:"keywords"`
}

// KeywordTable es la tabla ordenada categoría → palabras clave. Es un artefacto
// de configuración que se inyecta al construir el sugeridor; el motor la trata
// como entrada inmutable.
type KeywordTable []CategoryKeywords

// Suggester infiere la categoría más probable de un producto a partir de su
// descripción libre. Es un clasificador explicable por tabla de palabras
// clave: sin embeddings, sin modelo entrenado, totalmente reproducible.
type Suggester struct {
	table         KeywordTable
	maxConfidence float64
}

// NewSuggester construye el sugeridor con la tabla y el tope de confianza dados.
// Una tabla vacía usa la tabla de ferretería por defecto.
func NewSuggester(table KeywordTable, maxConfidence float64) *Suggester {
	if len(table) == 0 {
		table = DefaultKeywordTable()
	}
	if maxConfidence <= 0 {
		maxConfidence = DefaultMaxConfidence
	}
	return &Suggester{table: table, maxConfidence: maxConfidence}
}

// Suggest devuelve la categoría con mayor evidencia en la descripción, o una
// sugerencia vacía si la descripción es demasiado corta o ninguna palabra
// clave aparece.
func (s *Suggester) Suggest(description string) CategorySuggestion {
	scores := s.scores(description)
	best := CategorySuggestion{}
	bestScore := 0
	for _, cs := range scores {
		if cs.score > bestScore { // estricto: ante empate gana la primera de la tabla
			bestScore = cs.score
			best = CategorySuggestion{Category: cs.category, Confidence: s.confidence(cs.score)}
		}
	}
	return best
}

// SuggestTop devuelve hasta n categorías con puntaje > 0, de mayor a menor
// evidencia, con el desempate de orden de tabla.
func (s *Suggester) SuggestTop(description string, n int) []CategorySuggestion {
	if n <= 0 {
		return nil
	}
	scores := s.scores(description)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	var top []CategorySuggestion
	for _, cs := range scores {
		if cs.score == 0 {
			continue
		}
		top = append(top, CategorySuggestion{Category: cs.category, Confidence: s.confidence(cs.score)})
		if len(top) == n {
			break
		}
	}
	return top
}

// Matches indica si la descripción tiene alguna evidencia de palabras clave
// para la categoría dada (comparación insensible a mayúsculas y tildes).
func (s *Suggester) Matches(description, category string) bool {
	want := normalize.Normalize(category)
	for _, cs := range s.scores(description) {
		if normalize.Normalize(cs.category) == want {
			return cs.score > 0
		}
	}
	return false
}

type categoryScore struct {
	category string
	score    int
}

// scores puntúa cada categoría de la tabla contra la descripción normalizada,
// en el orden de la tabla.
func (s *Suggester) scores(description string) []categoryScore {
	scores := make([]categoryScore, len(s.table))
	for i, entry := range s.table {
		scores[i] = categoryScore{category: entry.Category}
	}

	if len([]rune(strings.TrimSpace(description))) < minDescriptionLen {
		return scores
	}
	text := normalize.Normalize(description)
	if text == "" {
		return scores
	}

	for i, entry := range s.table {
		total := 0
		for _, kw := range entry.Keywords {
			k := normalize.Normalize(kw)
			switch {
			case k == "":
			case strings.Contains(text, k):
				total += keywordFullScore
			case len(k) >= keywordPrefixLen && strings.Contains(text, k[:keywordPrefixLen]):
				total += keywordPrefixScore
			}
		}
		scores[i].score = total
	}
	return scores
}

func (s *Suggester) confidence(score int) float64 {
	return math.Min(s.maxConfidence, suggestConfidenceFloor+float64(score)*suggestConfidencePerHit)
}
