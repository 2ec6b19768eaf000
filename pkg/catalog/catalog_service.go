package catalog

import (
	"context"

	"golang.org/x/sync/singleflight"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/pkg/trace"
)

type (
	CatalogService interface {
		ListCatalog(ctx context.Context) ([]domain.ProductResponse, error)
		GetProduct(ctx context.Context, id int) (*domain.ProductResponse, error)
		ListRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		LookupByTraceNumber(ctx context.Context, input string) (*domain.TraceLookupResponse, error)
		ListAllRemote(ctx context.Context) ([]domain.ProductResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		traceClient       trace.Client
		lookups           singleflight.Group
	}
)

func NewCatalogService(catalogRepository CatalogRepository, traceClient trace.Client) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		traceClient:       traceClient,
	}
}

func (s *catalogService) ListCatalog(ctx context.Context) ([]domain.ProductResponse, error) {
	products, err := s.catalogRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ToProductResponse(p))
	}
	return result, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*domain.ProductResponse, error) {
	product, err := s.catalogRepository.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

func (s *catalogService) ListRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.catalogRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, domain.RecipeResponse{
			ID:     r.ID,
			Title:  r.Title,
			Author: r.Author,
			Likes:  r.Likes,
			Image:  r.Image,
			Points: r.Points,
		})
	}
	return result, nil
}

// LookupByTraceNumber answers a point lookup. The registry is tried first;
// any failure there degrades to a whitespace-insensitive match against the
// static catalog before the lookup is reported as not found.
func (s *catalogService) LookupByTraceNumber(ctx context.Context, input string) (*domain.TraceLookupResponse, error) {
	normalized := trace.NormalizeTraceNumber(input)
	if normalized == "" {
		return nil, domain.ErrEmptyTraceNumber
	}

	// Concurrent lookups for the same number share one registry round-trip.
	record, err, _ := s.lookups.Do(normalized, func() (any, error) {
		return s.traceClient.FetchByTraceNumber(ctx, normalized)
	})
	if err == nil {
		product := productFromTrace(record.(*entities.Trace), 0)
		return &domain.TraceLookupResponse{
			Source:  domain.LookupSourceRegistry,
			Product: ToProductResponse(product),
		}, nil
	}

	products, repoErr := s.catalogRepository.GetProducts(ctx)
	if repoErr != nil {
		return nil, repoErr
	}
	for _, p := range products {
		if p.Trace != nil && trace.NormalizeTraceNumber(p.Trace.TraceNumber) == normalized {
			return &domain.TraceLookupResponse{
				Source:  domain.LookupSourceCatalog,
				Product: ToProductResponse(p),
			}, nil
		}
	}

	return nil, &domain.TraceNotFoundError{Input: input}
}

// ListAllRemote fetches the unpaginated registry listing. Entries without a
// trace number are dropped and the rest get positional identifiers.
func (s *catalogService) ListAllRemote(ctx context.Context) ([]domain.ProductResponse, error) {
	records, err := s.traceClient.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ProductResponse, 0, len(records))
	for i, record := range records {
		if record.TraceNumber == "" {
			continue
		}
		result = append(result, ToProductResponse(productFromTrace(record, i+1)))
	}
	return result, nil
}

func ToProductResponse(p *entities.Product) domain.ProductResponse {
	resp := domain.ProductResponse{
		ID:      p.ID,
		Name:    p.Name,
		Origin:  p.Origin,
		Rating:  p.Rating,
		Reviews: p.Reviews,
		Image:   p.Image,
		Tags:    p.Tags,
		Farmer:  p.Farmer,
		Taste:   p.Taste,
		Color:   p.Color,
		Aroma:   p.Aroma,
		Fat:     p.Fat,
		Price:   p.Price,
	}
	if p.Trace != nil {
		resp.Trace = &domain.TraceInfo{
			TraceNumber:      p.Trace.TraceNumber,
			BirthDate:        p.Trace.BirthDate,
			MonthAge:         p.Trace.MonthAge,
			Breed:            p.Trace.Breed,
			Sex:              p.Trace.Sex,
			FarmOwner:        p.Trace.FarmOwner,
			FarmID:           p.Trace.FarmID,
			FarmLocation:     p.Trace.FarmLocation,
			ButcherDate:      p.Trace.ButcherDate,
			ButcherPlace:     p.Trace.ButcherPlace,
			ButcherLocation:  p.Trace.ButcherLocation,
			InspectionResult: p.Trace.InspectionResult,
			CarcassWeight:    p.Trace.CarcassWeight,
			MeatGrade:        p.Trace.MeatGrade,
			PackingPlace:     p.Trace.PackingPlace,
			PackingLocation:  p.Trace.PackingLocation,
		}
	}
	return resp
}

// productFromTrace synthesizes an ephemeral product around a registry
// record. It lives only as the current selection, never in the catalog.
func productFromTrace(record *entities.Trace, id int) *entities.Product {
	name := record.Breed
	if name == "" {
		name = "축산물"
	}
	return &entities.Product{
		ID:     id,
		Name:   name + " 이력 조회",
		Origin: record.FarmLocation,
		Image:  "🥩",
		Farmer: record.FarmOwner,
		Trace:  record,
	}
}
