package domain

import (
	"errors"
	"fmt"
)

var (
	MessageSuccessGetProducts    = "products retrieved successfully"
	MessageSuccessGetProduct     = "product retrieved successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessTraceLookup    = "trace lookup completed successfully"
	MessageSuccessTraceListAll   = "trace records retrieved successfully"
	MessageFailedGetProducts     = "failed to retrieve products"
	MessageFailedGetProduct      = "failed to retrieve product"
	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedTraceLookup     = "failed to look up trace number"
	MessageFailedTraceListAll    = "failed to retrieve trace records"
	MessageFailedEmptyTraceInput = "trace number input is empty"

	ErrEmptyTraceNumber = errors.New("trace number is empty")
)

// TraceNotFoundError reports a lookup that matched neither the registry nor
// the static catalog. The caller's original input is kept for diagnostics.
type TraceNotFoundError struct {
	Input string
}

func (e *TraceNotFoundError) Error() string {
	return fmt.Sprintf("no product found for trace number %q", e.Input)
}

const (
	LookupSourceRegistry = "registry"
	LookupSourceCatalog  = "catalog"
)

type (
	// TraceInfo is the provenance block of a product. Either every field is
	// populated (registry record or catalog sample) or the whole block is
	// absent from the product.
	TraceInfo struct {
		TraceNumber      string `json:"trace_number"`
		BirthDate        string `json:"birth_date"`
		MonthAge         int    `json:"month_age"`
		Breed            string `json:"breed"`
		Sex              string `json:"sex"`
		FarmOwner        string `json:"farm_owner"`
		FarmID           string `json:"farm_id"`
		FarmLocation     string `json:"farm_location"`
		ButcherDate      string `json:"butcher_date"`
		ButcherPlace     string `json:"butcher_place"`
		ButcherLocation  string `json:"butcher_location"`
		InspectionResult string `json:"inspection_result"`
		CarcassWeight    string `json:"carcass_weight"`
		MeatGrade        string `json:"meat_grade"`
		PackingPlace     string `json:"packing_place"`
		PackingLocation  string `json:"packing_location"`
	}

	ProductResponse struct {
		ID      int        `json:"id"`
		Name    string     `json:"name"`
		Origin  string     `json:"origin"`
		Rating  float64    `json:"rating"`
		Reviews int        `json:"reviews"`
		Image   string     `json:"image"`
		Tags    []string   `json:"tags"`
		Farmer  string     `json:"farmer"`
		Taste   float64    `json:"taste"`
		Color   float64    `json:"color"`
		Aroma   float64    `json:"aroma"`
		Fat     float64    `json:"fat"`
		Price   int        `json:"price"`
		Trace   *TraceInfo `json:"trace,omitempty"`
	}

	RecipeResponse struct {
		ID     int    `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		Likes  int    `json:"likes"`
		Image  string `json:"image"`
		Points string `json:"points"`
	}

	TraceLookupResponse struct {
		Source  string          `json:"source"`
		Product ProductResponse `json:"product"`
	}
)
