package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogiieum/domain"
	"gogiieum/entities"
)

type stubTraceClient struct {
	record  *entities.Trace
	records []*entities.Trace
	err     error
}

func (s *stubTraceClient) FetchByTraceNumber(ctx context.Context, traceNo string) (*entities.Trace, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func (s *stubTraceClient) FetchAll(ctx context.Context) ([]*entities.Trace, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func TestCatalogService_ListCatalog(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository(), &stubTraceClient{})

	products, err := service.ListCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "한우 1++ 등심", products[0].Name)
	assert.Equal(t, "돼지 삼겹살", products[1].Name)
	require.NotNil(t, products[0].Trace)
	assert.Equal(t, "002 1786 2623 0", products[0].Trace.TraceNumber)

	// Repeated listing serves the same data in the same order.
	again, err := service.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, products, again)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository(), &stubTraceClient{})

	_, err := service.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogService_LookupByTraceNumber_RegistryHit(t *testing.T) {
	stub := &stubTraceClient{record: &entities.Trace{
		TraceNumber:  "002178626230",
		Breed:        "한우",
		FarmOwner:    "최준수",
		FarmLocation: "전북특별자치도 고창군",
	}}
	service := NewCatalogService(NewCatalogRepository(), stub)

	result, err := service.LookupByTraceNumber(context.Background(), "002-1786-2623-0")
	require.NoError(t, err)

	assert.Equal(t, domain.LookupSourceRegistry, result.Source)
	assert.Equal(t, "한우 이력 조회", result.Product.Name)
	assert.Equal(t, "최준수", result.Product.Farmer)
	require.NotNil(t, result.Product.Trace)
	assert.Equal(t, "002178626230", result.Product.Trace.TraceNumber)
}

func TestCatalogService_LookupByTraceNumber_FallsBackToCatalog(t *testing.T) {
	stub := &stubTraceClient{err: errors.New("registry unreachable")}
	service := NewCatalogService(NewCatalogRepository(), stub)

	// Seeded product 1 carries trace number "002 1786 2623 0"; the lookup
	// input differs only in formatting.
	result, err := service.LookupByTraceNumber(context.Background(), "002178626230")
	require.NoError(t, err)

	assert.Equal(t, domain.LookupSourceCatalog, result.Source)
	assert.Equal(t, 1, result.Product.ID)
	assert.Equal(t, "한우 1++ 등심", result.Product.Name)
}

func TestCatalogService_LookupByTraceNumber_NotFoundEchoesInput(t *testing.T) {
	stub := &stubTraceClient{err: errors.New("registry unreachable")}
	service := NewCatalogService(NewCatalogRepository(), stub)

	_, err := service.LookupByTraceNumber(context.Background(), "999 9999 9999 9")
	require.Error(t, err)

	var notFound *domain.TraceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "999 9999 9999 9", notFound.Input)
}

func TestCatalogService_LookupByTraceNumber_EmptyInput(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository(), &stubTraceClient{})

	_, err := service.LookupByTraceNumber(context.Background(), "no digits here")
	assert.ErrorIs(t, err, domain.ErrEmptyTraceNumber)
}

func TestCatalogService_ListAllRemote(t *testing.T) {
	stub := &stubTraceClient{records: []*entities.Trace{
		{TraceNumber: "111111111111", Breed: "한우"},
		{TraceNumber: ""},
		{TraceNumber: "222222222222", Breed: "돼지"},
	}}
	service := NewCatalogService(NewCatalogRepository(), stub)

	products, err := service.ListAllRemote(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "한우 이력 조회", products[0].Name)
	assert.Equal(t, 3, products[1].ID)
	assert.Equal(t, "돼지 이력 조회", products[1].Name)
}
