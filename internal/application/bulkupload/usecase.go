package bulkupload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/bulk"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
	"github.com/Dill1027/DT-Price-List/pkg/logger"
)

// UseCase orquesta la carga masiva: decodificar, validar encabezados, resolver
// referencias y reconciliar fila por fila, en orden y de forma secuencial.
type UseCase struct {
	products repository.ProductRepository
	resolver *Resolver
	decoder  Decoder
	archiver Archiver
	schema   bulk.Schema
	log      *logger.Logger
	now      func() time.Time
}

// Option configura el caso de uso.
type Option func(*UseCase)

// WithArchiver guarda cada archivo subido antes de procesarlo.
func WithArchiver(a Archiver) Option { return func(uc *UseCase) { uc.archiver = a } }

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option { return func(uc *UseCase) { uc.log = l.Named("bulkupload") } }

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option { return func(uc *UseCase) { uc.now = now } }

// NewUseCase construye el caso de uso de carga masiva.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	decoder Decoder,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		products: products,
		resolver: NewResolver(categories, brands),
		decoder:  decoder,
		schema:   bulk.DefaultSchema,
		log:      logger.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// batch es el estado preparado de un lote antes de procesar filas.
type batch struct {
	sheet      *bulk.Sheet
	normalizer *bulk.Normalizer
	lookups    *bulk.Lookups
}

// prepare ejecuta las etapas fatales: cualquier error aquí rechaza el lote sin tocar el catálogo.
func (uc *UseCase) prepare(ctx context.Context, actor entity.Actor, filename string, data []byte) (*batch, error) {
	if !actor.CanEditProducts() {
		return nil, domain.ErrForbidden
	}
	sheet, err := uc.decoder.Decode(filename, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, domain.ErrEmptyFile
	}
	columns, err := bulk.ValidateHeaders(uc.schema, sheet.Headers)
	if err != nil {
		return nil, err
	}
	lookups, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return &batch{sheet: sheet, normalizer: bulk.NewNormalizer(uc.schema, columns), lookups: lookups}, nil
}

// Upload procesa el archivo y aplica los cambios. Los errores de fila se
// devuelven en el resultado; el error de retorno indica un lote rechazado.
func (uc *UseCase) Upload(ctx context.Context, actor entity.Actor, filename string, data []byte) (*bulk.Result, error) {
	b, err := uc.prepare(ctx, actor, filename, data)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", filename).Str("user", actor.Username).Msg("bulk upload rejected")
		return nil, err
	}
	uc.archive(ctx, filename, data)

	uc.log.Info().
		Str("file", filename).
		Str("user", actor.Username).
		Str("role", actor.Role).
		Int("rows", len(b.sheet.Rows)).
		Msg("bulk upload started")

	acc := bulk.NewBatch(len(b.sheet.Rows))
	for _, row := range b.sheet.Rows {
		c, rowErr := b.normalizer.Normalize(row, b.lookups)
		if rowErr != nil {
			uc.logRowError(rowErr)
			acc.Add(bulk.Failure(rowErr))
			continue
		}
		out := uc.reconcile(ctx, actor, c)
		if out.Failed() {
			uc.logRowError(out.Err)
		}
		acc.Add(out)
	}

	res := acc.Result()
	uc.log.Info().
		Str("file", filename).
		Int("rows", res.Total).
		Int("created", res.Summary.Created).
		Int("price_updated", res.Summary.PriceUpdated).
		Int("details_updated", res.Summary.DetailsUpdated).
		Int("no_change", res.Summary.NoChangeNeeded).
		Int("errors", res.Summary.Errors).
		Msg("bulk upload completed")
	return &res, nil
}

// reconcile decide y ejecuta exactamente una acción para el candidato.
func (uc *UseCase) reconcile(ctx context.Context, actor entity.Actor, c *bulk.Candidate) bulk.Outcome {
	existing, err := uc.products.FindActiveByModel(ctx, c.ModelNumber)
	if err != nil {
		return bulk.Failure(bulk.PersistenceError(c.Row, err))
	}
	action := bulk.Decide(actor.IsAdmin(), c, existing)
	out := bulk.Succeeded(c.Row, c.ModelNumber, action)
	now := uc.now()

	switch action {
	case bulk.ActionCreated:
		p := newProduct(actor, c, now)
		if err := p.Validate(); err != nil {
			return bulk.Failure(bulk.PersistenceError(c.Row, err))
		}
		if err := uc.products.Create(ctx, p); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return bulk.Failure(bulk.DuplicateModelError(c.Row, c.ModelNumber))
			}
			return bulk.Failure(bulk.PersistenceError(c.Row, err))
		}

	case bulk.ActionPriceUpdated:
		oldPrice, newPrice := existing.Price, *c.Price
		if err := uc.products.UpdatePrice(ctx, existing.ID, newPrice, actor.UserID, now); err != nil {
			return bulk.Failure(bulk.PersistenceError(c.Row, err))
		}
		out.OldPrice, out.NewPrice = &oldPrice, &newPrice

	case bulk.ActionDetailsUpdated:
		if err := c.ProductDetails.Validate(); err != nil {
			return bulk.Failure(bulk.PersistenceError(c.Row, err))
		}
		if err := uc.products.UpdateDetails(ctx, existing.ID, c.ProductDetails, actor.UserID, now); err != nil {
			return bulk.Failure(bulk.PersistenceError(c.Row, err))
		}
	}
	return out
}

// Validate es un dry-run: mismas etapas y decisiones que Upload, sin escribir.
// Las filas posteriores ven el efecto simulado de las anteriores del mismo lote.
func (uc *UseCase) Validate(ctx context.Context, actor entity.Actor, filename string, data []byte) (*bulk.Result, error) {
	b, err := uc.prepare(ctx, actor, filename, data)
	if err != nil {
		return nil, err
	}
	planned := make(map[string]*entity.Product)
	acc := bulk.NewBatch(len(b.sheet.Rows))
	for _, row := range b.sheet.Rows {
		c, rowErr := b.normalizer.Normalize(row, b.lookups)
		if rowErr != nil {
			acc.Add(bulk.Failure(rowErr))
			continue
		}
		existing, ok := planned[c.Key()]
		if !ok {
			if existing, err = uc.products.FindActiveByModel(ctx, c.ModelNumber); err != nil {
				acc.Add(bulk.Failure(bulk.PersistenceError(c.Row, err)))
				continue
			}
		}
		action := bulk.Decide(actor.IsAdmin(), c, existing)
		out := bulk.Succeeded(c.Row, c.ModelNumber, action)
		switch action {
		case bulk.ActionCreated:
			p := newProduct(actor, c, uc.now())
			if err := p.Validate(); err != nil {
				acc.Add(bulk.Failure(bulk.PersistenceError(c.Row, err)))
				continue
			}
			planned[c.Key()] = p
		case bulk.ActionPriceUpdated:
			oldPrice, newPrice := existing.Price, *c.Price
			out.OldPrice, out.NewPrice = &oldPrice, &newPrice
			next := *existing
			next.Price = newPrice
			planned[c.Key()] = &next
		case bulk.ActionDetailsUpdated:
			if err := c.ProductDetails.Validate(); err != nil {
				acc.Add(bulk.Failure(bulk.PersistenceError(c.Row, err)))
				continue
			}
			next := *existing
			next.ProductDetails = c.ProductDetails
			planned[c.Key()] = &next
		}
		acc.Add(out)
	}
	res := acc.Result()
	return &res, nil
}

// newProduct arma el producto nuevo; solo el administrador fija precio.
func newProduct(actor entity.Actor, c *bulk.Candidate, now time.Time) *entity.Product {
	price := decimal.Zero
	if actor.IsAdmin() && c.Price != nil {
		price = *c.Price
	}
	return &entity.Product{
		ID:             uuid.New().String(),
		CategoryID:     c.CategoryID,
		BrandID:        c.BrandID,
		ModelNumber:    c.ModelNumber,
		ProductDetails: c.ProductDetails,
		Price:          price,
		IsActive:       true,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (uc *UseCase) logRowError(e *bulk.RowError) {
	uc.log.Debug().Int("row", e.Row).Str("kind", string(e.Kind)).Msg(e.Message)
}

// archive es best-effort: un fallo se registra y el lote continúa.
func (uc *UseCase) archive(ctx context.Context, filename string, data []byte) {
	if uc.archiver == nil {
		return
	}
	now := uc.now().UTC()
	key := fmt.Sprintf("%s/%s-%s", now.Format("2006/01/02"), uuid.New().String(), path.Base(filename))
	if err := uc.archiver.Archive(ctx, key, contentType(filename), data); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("archive upload")
	}
}

func contentType(filename string) string {
	if strings.EqualFold(path.Ext(filename), ".csv") {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
