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

// AnomalyUseCase corre el detector de anomalías sobre el snapshot completo y
// atiende los chequeos previos de movimientos aún no registrados.
type AnomalyUseCase struct {
	products    repository.ProductRepository
	movements   repository.MovementRepository
	detector    *intelligence.Detector
	workerLimit int
}

// NewAnomalyUseCase construye el caso de uso.
func NewAnomalyUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	detector *intelligence.Detector,
	workerLimit int,
) *AnomalyUseCase {
	if workerLimit <= 0 {
		workerLimit = defaultWorkerLimit
	}
	return &AnomalyUseCase{
		products:    products,
		movements:   movements,
		detector:    detector,
		workerLimit: workerLimit,
	}
}

// ScanAll evalúa todos los movimientos contra su población y devuelve el feed
// de anomalías ordenado por severidad descendente. El fan-out es por producto:
// la población de comparación de un movimiento nunca cruza productos, así que
// cada tarea trabaja solo con el subconjunto de su producto.
func (uc *AnomalyUseCase) ScanAll(ctx context.Context) ([]dto.AnomalyDTO, error) {
	products, err := uc.products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string][]entity.Movement, len(products))
	for _, m := range movements {
		byProduct[m.ProductCode] = append(byProduct[m.ProductCode], m)
	}

	perProduct := make([][]intelligence.MovementAnomaly, len(products))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workerLimit)
	for i, p := range products {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			subset := byProduct[p.Code]
			if len(subset) == 0 {
				return nil
			}
			perProduct[i] = uc.detector.FindAll([]entity.Product{p}, subset)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []intelligence.MovementAnomaly
	for _, anomalies := range perProduct {
		merged = append(merged, anomalies...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Result.Severity > merged[j].Result.Severity
	})

	feed := make([]dto.AnomalyDTO, len(merged))
	for i, a := range merged {
		feed[i] = dto.AnomalyDTO{
			MovementID:  a.Movement.ID,
			ProductCode: a.Movement.ProductCode,
			Type:        a.Movement.Type,
			Quantity:    a.Movement.Quantity,
			Date:        a.Movement.Date,
			Reason:      a.Result.Reason,
			Severity:    a.Result.Severity,
			ZScore:      a.Result.ZScore,
		}
	}
	return feed, nil
}

// CheckProspective valida un movimiento antes de registrarlo. Nunca bloquea la
// escritura: el veredicto es informativo y un producto desconocido responde
// "no anómalo".
func (uc *AnomalyUseCase) CheckProspective(ctx context.Context, req dto.CheckAnomalyRequest) (*dto.AnomalyCheckDTO, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if req.Type != entity.MovementTypeIN && req.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}

	products, err := uc.products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	res := uc.detector.CheckProspective(req.ProductCode, req.Type, req.Quantity, products, movements)
	return &dto.AnomalyCheckDTO{
		IsAnomaly: res.IsAnomaly,
		Reason:    res.Reason,
		Severity:  res.Severity,
		ZScore:    res.ZScore,
	}, nil
}
