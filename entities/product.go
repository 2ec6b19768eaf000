package entities

type Trace struct {
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

// Product is a traceable meat item. Products are never mutated in place;
// a registry lookup produces a fresh record that supersedes the selection.
type Product struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Origin  string   `json:"origin"`
	Rating  float64  `json:"rating"`
	Reviews int      `json:"reviews"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
	Farmer  string   `json:"farmer"`
	Taste   float64  `json:"taste"`
	Color   float64  `json:"color"`
	Aroma   float64  `json:"aroma"`
	Fat     float64  `json:"fat"`
	Price   int      `json:"price"`
	Trace   *Trace   `json:"trace,omitempty"`
}

type Recipe struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
	Image  string `json:"image"`
	Points string `json:"points"`
}
