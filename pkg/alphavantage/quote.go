package alphavantage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

// GlobalQuote is the latest traded state of a single symbol.
type GlobalQuote struct {
	Symbol           string
	Open             decimal.Decimal
	High             decimal.Decimal
	Low              decimal.Decimal
	Price            decimal.Decimal
	Volume           int64
	LatestTradingDay time.Time
	PreviousClose    decimal.Decimal
	Change           decimal.Decimal
}

// ChangePercent derives the day's percent change from Change and PreviousClose,
// formatted to three decimal places with a trailing percent sign. A zero
// previous close yields "0.000%" rather than dividing by zero.
func (q *GlobalQuote) ChangePercent() string {
	pct := decimal.Zero
	if !q.PreviousClose.IsZero() {
		pct = q.Change.Div(q.PreviousClose).Mul(decimal.NewFromInt(100))
	}
	return fmt.Sprintf("%s%%", pct.StringFixed(3))
}

const (
	quoteRootKey      = "Global Quote"
	quoteSymbolKey    = "01. symbol"
	quoteOpenKey      = "02. open"
	quoteHighKey      = "03. high"
	quoteLowKey       = "04. low"
	quotePriceKey     = "05. price"
	quoteVolumeKey    = "06. volume"
	quoteLastTradeKey = "07. latest trading day"
	quotePrevCloseKey = "08. previous close"
	quoteChangeKey    = "09. change"
)

// parseGlobalQuote extracts a quote from a GLOBAL_QUOTE document. A missing
// "Global Quote" object means not found and yields nil. Fields are extracted
// independently; one malformed field never blocks the others.
func parseGlobalQuote(doc jsonval.Object) *GlobalQuote {
	obj, ok := doc.Object(quoteRootKey)
	if !ok {
		return nil
	}
	return &GlobalQuote{
		Symbol:           obj.String(quoteSymbolKey, ""),
		Open:             obj.Decimal(quoteOpenKey, decimal.Zero),
		High:             obj.Decimal(quoteHighKey, decimal.Zero),
		Low:              obj.Decimal(quoteLowKey, decimal.Zero),
		Price:            obj.Decimal(quotePriceKey, decimal.Zero),
		Volume:           obj.Long(quoteVolumeKey, 0),
		LatestTradingDay: obj.Date(quoteLastTradeKey, time.Time{}),
		PreviousClose:    obj.Decimal(quotePrevCloseKey, decimal.Zero),
		Change:           obj.Decimal(quoteChangeKey, decimal.Zero),
	}
}

// GlobalQuote fetches the latest quote for symbol.
func (c *Client) GlobalQuote(ctx context.Context, symbol string) (*Response[GlobalQuote], error) {
	doc, err := c.symbolDocument(ctx, FuncGlobalQuote, symbol)
	if err != nil {
		return nil, err
	}
	return newResponse(parseGlobalQuote(doc), doc, "Global quote data not found."), nil
}

// GlobalQuotes fetches quotes for several symbols concurrently, one request per
// symbol, and keys each result by its symbol. There is no rate limiting here:
// under a rate-limited API key, individual calls may fail with ErrRateLimited
// and the first such hard failure aborts the batch. Throttle externally if the
// key requires it.
func (c *Client) GlobalQuotes(ctx context.Context, symbols []string) (map[string]*Response[GlobalQuote], error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]*Response[GlobalQuote], len(symbols))
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			resp, err := c.GlobalQuote(ctx, symbol)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	quotes := make(map[string]*Response[GlobalQuote], len(symbols))
	for i, symbol := range symbols {
		quotes[symbol] = results[i]
	}
	return quotes, nil
}
