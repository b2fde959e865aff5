package alphavantage

import (
	"context"
	"strings"
	"time"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

// MatchType classifies a symbol search result. MatchTypeAny is a filter value
// only and never appears on a parsed match.
type MatchType int

const (
	MatchTypeAny     MatchType = -1
	MatchTypeUnknown MatchType = iota - 1
	MatchTypeEquity
	MatchTypeETF
	MatchTypeMutualFund
	MatchTypeIndex
	MatchTypeCommodity
	MatchTypeCurrency
	MatchTypeCryptocurrency
	MatchTypeBond
)

var matchTypeNames = map[MatchType]string{
	MatchTypeAny:            "Any",
	MatchTypeUnknown:        "Unknown",
	MatchTypeEquity:         "Equity",
	MatchTypeETF:            "ETF",
	MatchTypeMutualFund:     "MutualFund",
	MatchTypeIndex:          "Index",
	MatchTypeCommodity:      "Commodity",
	MatchTypeCurrency:       "Currency",
	MatchTypeCryptocurrency: "Cryptocurrency",
	MatchTypeBond:           "Bond",
}

func (m MatchType) String() string {
	if name, ok := matchTypeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ParseMatchType matches a type name case-insensitively, falling back to def
// on an empty or unrecognized value.
func ParseMatchType(s string, def MatchType) MatchType {
	for value, name := range matchTypeNames {
		if strings.EqualFold(name, s) {
			return value
		}
	}
	return def
}

// Region classifies the market a search result trades in. RegionAny is a
// filter value only.
type Region int

const (
	RegionAny     Region = -1
	RegionUnknown Region = iota - 1
	RegionUS
	RegionUK
	RegionFFM
)

var regionNames = map[Region]string{
	RegionAny:     "Any",
	RegionUnknown: "Unknown",
	RegionUS:      "US",
	RegionUK:      "UK",
	RegionFFM:     "FFM",
}

func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return "Unknown"
}

// ParseRegion maps the API's long-form region names to their short values,
// then falls back to case-insensitive short-name matching, then to Unknown.
func ParseRegion(s string) Region {
	switch s {
	case "United States":
		return RegionUS
	case "United Kingdom":
		return RegionUK
	case "Frankfurt":
		return RegionFFM
	}
	for value, name := range regionNames {
		if strings.EqualFold(name, s) {
			return value
		}
	}
	return RegionUnknown
}

// SymbolMatch is one symbol search result.
type SymbolMatch struct {
	Symbol      string
	Name        string
	MatchType   MatchType
	Region      Region
	RegionName  string
	MarketOpen  time.Time
	MarketClose time.Time
	Currency    string
	MatchScore  float64
}

// SymbolMatches groups the filtered results of one search.
type SymbolMatches struct {
	Keywords string
	Matches  []SymbolMatch
}

const (
	matchesRootKey   = "bestMatches"
	matchSymbolKey   = "1. symbol"
	matchNameKey     = "2. name"
	matchTypeKey     = "3. type"
	matchRegionKey   = "4. region"
	matchOpenKey     = "5. marketOpen"
	matchCloseKey    = "6. marketClose"
	matchCurrencyKey = "8. currency"
	matchScoreKey    = "9. matchScore"
)

// parseSymbolMatches extracts search results from a SYMBOL_SEARCH document.
// A search always succeeds structurally: a missing or non-array bestMatches
// key simply yields zero matches. Each element is fully parsed before the
// matchType/region filters are applied; Any disables an axis.
func parseSymbolMatches(doc jsonval.Object, keywords string, matchType MatchType, region Region) *SymbolMatches {
	matches := make([]SymbolMatch, 0)
	if arr, ok := doc.Array(matchesRootKey); ok {
		for _, raw := range arr {
			obj, ok := jsonval.AsObject(raw)
			if !ok {
				continue
			}
			symbolType := ParseMatchType(obj.String(matchTypeKey, ""), MatchTypeUnknown)
			regionName := obj.String(matchRegionKey, "Unknown")
			symbolRegion := ParseRegion(regionName)

			if (matchType != MatchTypeAny && symbolType != matchType) ||
				(region != RegionAny && symbolRegion != region) {
				continue
			}
			matches = append(matches, SymbolMatch{
				Symbol:      obj.String(matchSymbolKey, ""),
				Name:        obj.String(matchNameKey, ""),
				MatchType:   symbolType,
				Region:      symbolRegion,
				RegionName:  regionName,
				MarketOpen:  obj.Clock(matchOpenKey, time.Time{}),
				MarketClose: obj.Clock(matchCloseKey, time.Time{}),
				Currency:    obj.String(matchCurrencyKey, ""),
				MatchScore:  obj.Float(matchScoreKey, 0),
			})
		}
	}
	return &SymbolMatches{Keywords: keywords, Matches: matches}
}

// SymbolSearch looks up symbols matching the given keywords, filtered by match
// type and region. Pass MatchTypeAny / RegionAny to disable a filter axis.
func (c *Client) SymbolSearch(ctx context.Context, keywords string, matchType MatchType, region Region) (*Response[SymbolMatches], error) {
	doc, err := c.symbolDocument(ctx, FuncSymbolSearch, keywords)
	if err != nil {
		return nil, err
	}
	return newResponse(parseSymbolMatches(doc, keywords, matchType, region), doc, "Symbol search data not available."), nil
}
