// Package insights compone el motor analítico con los snapshots cargados por
// los repositorios. Cada caso de uso es el servicio batch descrito por el
// motor: fan-out de una unidad de trabajo por producto, fan-in a una colección
// ordenada. La cancelación vive aquí (context por tarea); el motor en sí nunca
// bloquea.
package insights

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventory-intel/internal/application/dto"
	"github.com/jhoicas/inventory-intel/internal/domain"
	"github.com/jhoicas/inventory-intel/internal/domain/entity"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
	"github.com/jhoicas/inventory-intel/internal/domain/repository"
)

// Límite de goroutines por defecto para el fan-out batch.
const defaultWorkerLimit = 8

// ForecastUseCase calcula pronósticos de agotamiento sobre el snapshot completo.
type ForecastUseCase struct {
	products    repository.ProductRepository
	movements   repository.MovementRepository
	forecaster  *intelligence.Forecaster
	workerLimit int
}

// NewForecastUseCase construye el caso de uso.
func NewForecastUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	forecaster *intelligence.Forecaster,
	workerLimit int,
) *ForecastUseCase {
	if workerLimit <= 0 {
		workerLimit = defaultWorkerLimit
	}
	return &ForecastUseCase{
		products:    products,
		movements:   movements,
		forecaster:  forecaster,
		workerLimit: workerLimit,
	}
}

// ForecastAll pronostica todos los productos del snapshot en paralelo y
// devuelve la lista ordenada: runway finito más corto primero, luego
// ilimitados, y los sin datos al final.
func (uc *ForecastUseCase) ForecastAll(ctx context.Context) ([]dto.ForecastDTO, error) {
	products, movements, err := uc.snapshots(ctx)
	if err != nil {
		return nil, err
	}

	// Cada pronóstico es independiente: una tarea por producto, resultados
	// por índice para no necesitar lock.
	results := make([]dto.ForecastDTO, len(products))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workerLimit)
	for i, p := range products {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = toForecastDTO(p, uc.forecaster.Forecast(p, movements))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return runwayRank(results[i]) < runwayRank(results[j])
	})
	return results, nil
}

// ForecastProduct pronostica un solo producto por código.
func (uc *ForecastUseCase) ForecastProduct(ctx context.Context, code string) (*dto.ForecastDTO, error) {
	products, movements, err := uc.snapshots(ctx)
	if err != nil {
		return nil, err
	}
	normalized := entity.NormalizeCode(code)
	for _, p := range products {
		if p.Code == normalized {
			out := toForecastDTO(p, uc.forecaster.Forecast(p, movements))
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Predictions calcula el mapa código → predicción que consume el agregador de
// alertas, con el mismo fan-out que ForecastAll.
func (uc *ForecastUseCase) Predictions(
	ctx context.Context,
	products []entity.Product,
	movements []entity.Movement,
) (map[string]intelligence.StockPrediction, error) {
	predictions := make([]intelligence.StockPrediction, len(products))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workerLimit)
	for i, p := range products {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			predictions[i] = uc.forecaster.Forecast(p, movements)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCode := make(map[string]intelligence.StockPrediction, len(products))
	for i, p := range products {
		byCode[p.Code] = predictions[i]
	}
	return byCode, nil
}

func (uc *ForecastUseCase) snapshots(ctx context.Context) ([]entity.Product, []entity.Movement, error) {
	products, err := uc.products.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	movements, err := uc.movements.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return products, movements, nil
}

// runwayRank ordena: finitos por días ascendente, luego ilimitados, luego
// desconocidos.
func runwayRank(f dto.ForecastDTO) int {
	switch f.Runway {
	case dto.RunwayFinite:
		return *f.DaysRemaining
	case dto.RunwayUnbounded:
		return 1 << 30
	default:
		return 1<<30 + 1
	}
}

// toForecastDTO traduce la predicción del motor al contrato JSON de la API.
func toForecastDTO(p entity.Product, pred intelligence.StockPrediction) dto.ForecastDTO {
	out := dto.ForecastDTO{
		ProductCode: p.Code,
		Description: p.Description,
		Stock:       p.Stock,
		Confidence:  pred.Confidence,
		Trend:       string(pred.Trend),
		DailyRate:   pred.DailyRate,
	}
	switch {
	case pred.Runway.IsUnbounded():
		out.Runway = dto.RunwayUnbounded
	case pred.Runway.IsUnknown():
		out.Runway = dto.RunwayUnknown
	default:
		days, _ := pred.Runway.Days()
		out.Runway = dto.RunwayFinite
		out.DaysRemaining = &days
	}
	return out
}
