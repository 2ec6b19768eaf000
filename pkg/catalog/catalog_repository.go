package catalog

import (
	"context"

	"gogiieum/entities"
)

type (
	CatalogRepository interface {
		GetProducts(ctx context.Context) ([]*entities.Product, error)
		GetProductByID(ctx context.Context, id int) (*entities.Product, error)
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
	}

	catalogRepository struct {
		products []*entities.Product
		recipes  []*entities.Recipe
	}
)

// NewCatalogRepository seeds the demo catalog. The data is fixed for the
// process lifetime; both lists are served in seed order.
func NewCatalogRepository() CatalogRepository {
	return &catalogRepository{
		products: seedProducts(),
		recipes:  seedRecipes(),
	}
}

func (r *catalogRepository) GetProducts(ctx context.Context) ([]*entities.Product, error) {
	result := make([]*entities.Product, len(r.products))
	copy(result, r.products)
	return result, nil
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id int) (*entities.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *catalogRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	result := make([]*entities.Recipe, len(r.recipes))
	copy(result, r.recipes)
	return result, nil
}

func seedProducts() []*entities.Product {
	return []*entities.Product{
		{
			ID:      1,
			Name:    "한우 1++ 등심",
			Origin:  "충남 홍성",
			Rating:  4.8,
			Reviews: 127,
			Image:   "🥩",
			Tags:    []string{"저탄소", "1++등급"},
			Farmer:  "김한우 농가",
			Taste:   4.9,
			Color:   4.7,
			Aroma:   4.8,
			Fat:     4.6,
			Price:   15000,
			Trace: &entities.Trace{
				TraceNumber:      "002 1786 2623 0",
				BirthDate:        "2022-05-26",
				MonthAge:         25,
				Breed:            "한우",
				Sex:              "거세",
				FarmOwner:        "최준수",
				FarmID:           "521080",
				FarmLocation:     "전북특별자치도 고창군 공음면 청보리로",
				ButcherDate:      "2024-06-24",
				ButcherPlace:     "(주)박달제엘피씨(LPC)",
				ButcherLocation:  "충청북도 제천시 봉양읍 의암로",
				InspectionResult: "합격",
				CarcassWeight:    "485kg",
				MeatGrade:        "1+등급",
				PackingPlace:     "동양플러스(주)제천지점",
				PackingLocation:  "충청북도 제천시 봉양읍 의암로",
			},
		},
		{
			ID:      2,
			Name:    "돼지 삼겹살",
			Origin:  "전북 익산",
			Rating:  4.6,
			Reviews: 89,
			Image:   "🥓",
			Tags:    []string{"저탄소", "동물복지"},
			Farmer:  "박돈육 농가",
			Taste:   4.5,
			Color:   4.7,
			Aroma:   4.4,
			Fat:     4.8,
			Price:   12000,
			Trace: &entities.Trace{
				TraceNumber:      "003 2891 4523 5",
				BirthDate:        "2024-03-15",
				MonthAge:         7,
				Breed:            "돼지",
				Sex:              "암",
				FarmOwner:        "박돈육",
				FarmID:           "621090",
				FarmLocation:     "전라북도 익산시 왕궁면",
				ButcherDate:      "2024-10-10",
				ButcherPlace:     "익산축산물공판장",
				ButcherLocation:  "전라북도 익산시",
				InspectionResult: "합격",
				CarcassWeight:    "95kg",
				MeatGrade:        "1등급",
				PackingPlace:     "익산육가공센터",
				PackingLocation:  "전라북도 익산시",
			},
		},
	}
}

func seedRecipes() []*entities.Recipe {
	return []*entities.Recipe{
		{ID: 1, Title: "한우 등심 스테이크", Author: "맛집러버", Likes: 234, Image: "🍖", Points: "+50pt"},
		{ID: 2, Title: "돼지고기 김치찌개", Author: "요리왕", Likes: 189, Image: "🍲", Points: "+50pt"},
	}
}
