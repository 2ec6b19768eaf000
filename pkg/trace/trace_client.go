package trace

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gogiieum/entities"
)

// fieldAliases maps each logical trace field to the tag names it has been
// observed under across registry deployments, in priority order. Schema
// drift is handled by editing this table, not the parser.
var fieldAliases = map[string][]string{
	"traceNo":          {"traceNo", "traceNoSearch", "animalNo"},
	"birthDate":        {"birthYmd", "birthDate"},
	"monthAge":         {"monthDiff", "monthAge"},
	"breed":            {"lsTypeNm", "cattleNm", "breed"},
	"sex":              {"sexNm", "gender"},
	"farmOwner":        {"farmerNm", "farmOwner"},
	"farmID":           {"farmNo", "farmId"},
	"farmLocation":     {"farmAddr", "farmLocation"},
	"butcherDate":      {"butcheryYmd", "abattYmd"},
	"butcherPlace":     {"butcheryPlaceNm", "abattNm"},
	"butcherLocation":  {"butcheryPlaceAddr", "abattAddr"},
	"inspectionResult": {"inspectPassYn", "inspectDesc"},
	"carcassWeight":    {"weight", "carcassWeight"},
	"meatGrade":        {"gradeNm", "meatGrade"},
	"packingPlace":     {"processPlaceNm", "packNm"},
	"packingLocation":  {"processPlaceAddr", "packAddr"},
}

const (
	defaultTimeout  = 10 * time.Second
	listAllPageSize = 100
)

// RegistryError is a domain-level failure the registry itself reported via a
// non-success result code.
type RegistryError struct {
	Code    string
	Message string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry returned result code %s: %s", e.Code, e.Message)
}

type (
	Client interface {
		FetchByTraceNumber(ctx context.Context, traceNo string) (*entities.Trace, error)
		FetchAll(ctx context.Context) ([]*entities.Trace, error)
	}

	client struct {
		baseURL    string
		serviceKey string
		httpClient *http.Client
	}
)

func NewClient(baseURL, serviceKey string) Client {
	return &client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NormalizeTraceNumber strips every non-digit character. Applying it twice
// yields the same result as applying it once.
func NormalizeTraceNumber(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type (
	registryResponse struct {
		XMLName xml.Name       `xml:"response"`
		Header  registryHeader `xml:"header"`
		Body    registryBody   `xml:"body"`
	}

	registryHeader struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	}

	registryBody struct {
		Items []registryItem `xml:"items>item"`
	}

	// registryItem keeps every child element as a raw name/value pair so the
	// alias table can resolve logical fields after the fact.
	registryItem struct {
		Fields []registryField `xml:",any"`
	}

	registryField struct {
		XMLName xml.Name
		Value   string `xml:",chardata"`
	}
)

// field resolves a logical field by trying each alias in priority order. The
// second return reports whether any alias carried a non-empty value.
func (it registryItem) field(logical string) (string, bool) {
	for _, alias := range fieldAliases[logical] {
		for _, f := range it.Fields {
			if f.XMLName.Local == alias && strings.TrimSpace(f.Value) != "" {
				return strings.TrimSpace(f.Value), true
			}
		}
	}
	return "", false
}

func (c *client) FetchByTraceNumber(ctx context.Context, traceNo string) (*entities.Trace, error) {
	params := url.Values{}
	params.Set("traceNo", traceNo)
	params.Set("pageSize", "10")
	params.Set("pageNo", "1")

	items, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("registry returned no record for trace number %s", traceNo)
	}

	record, ok := buildTrace(items[0])
	if !ok {
		return nil, fmt.Errorf("registry record for %s carries no trace number", traceNo)
	}
	return record, nil
}

func (c *client) FetchAll(ctx context.Context) ([]*entities.Trace, error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(listAllPageSize))
	params.Set("pageNo", "1")

	items, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	records := make([]*entities.Trace, 0, len(items))
	for _, item := range items {
		if record, ok := buildTrace(item); ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func (c *client) fetch(ctx context.Context, params url.Values) ([]registryItem, error) {
	params.Set("serviceKey", c.serviceKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("registry responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed registryResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse registry response: %w", err)
	}

	code := strings.TrimSpace(parsed.Header.ResultCode)
	if code != "00" && code != "0" {
		return nil, &RegistryError{Code: code, Message: parsed.Header.ResultMsg}
	}

	return parsed.Body.Items, nil
}

// buildTrace assembles a trace record from one registry item. A record
// without a trace number is unusable and reported as such; every other field
// stays empty when no alias matched.
func buildTrace(item registryItem) (*entities.Trace, bool) {
	traceNo, ok := item.field("traceNo")
	if !ok {
		return nil, false
	}

	record := &entities.Trace{TraceNumber: traceNo}
	record.BirthDate, _ = item.field("birthDate")
	record.Breed, _ = item.field("breed")
	record.Sex, _ = item.field("sex")
	record.FarmOwner, _ = item.field("farmOwner")
	record.FarmID, _ = item.field("farmID")
	record.FarmLocation, _ = item.field("farmLocation")
	record.ButcherDate, _ = item.field("butcherDate")
	record.ButcherPlace, _ = item.field("butcherPlace")
	record.ButcherLocation, _ = item.field("butcherLocation")
	record.InspectionResult, _ = item.field("inspectionResult")
	record.CarcassWeight, _ = item.field("carcassWeight")
	record.MeatGrade, _ = item.field("meatGrade")
	record.PackingPlace, _ = item.field("packingPlace")
	record.PackingLocation, _ = item.field("packingLocation")

	if raw, ok := item.field("monthAge"); ok {
		if age, err := strconv.Atoi(raw); err == nil {
			record.MonthAge = age
		}
	}
	return record, true
}
