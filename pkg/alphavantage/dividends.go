package alphavantage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

// Dividend is one dividend event in a symbol's payout history.
type Dividend struct {
	DeclarationDate time.Time
	ExDividendDate  time.Time
	RecordDate      time.Time
	PaymentDate     time.Time
	Amount          decimal.Decimal
}

// Dividends is the ordered payout history for one symbol.
type Dividends struct {
	Symbol string
	Data   []Dividend
}

const (
	dividendsDataKey       = "data"
	dividendDeclarationKey = "declaration_date"
	dividendExDateKey      = "ex_dividend_date"
	dividendRecordKey      = "record_date"
	dividendPaymentKey     = "payment_date"
	dividendAmountKey      = "amount"
)

// parseDividends extracts the payout history from a DIVIDENDS document. A
// missing or non-array data key yields nil (not found); an empty array yields
// an entity with an empty list.
func parseDividends(doc jsonval.Object, symbol string) *Dividends {
	arr, ok := doc.Array(dividendsDataKey)
	if !ok {
		return nil
	}
	data := make([]Dividend, 0, len(arr))
	for _, raw := range arr {
		item, ok := jsonval.AsObject(raw)
		if !ok {
			continue
		}
		data = append(data, Dividend{
			DeclarationDate: item.Date(dividendDeclarationKey, time.Time{}),
			ExDividendDate:  item.Date(dividendExDateKey, time.Time{}),
			RecordDate:      item.Date(dividendRecordKey, time.Time{}),
			PaymentDate:     item.Date(dividendPaymentKey, time.Time{}),
			Amount:          item.Decimal(dividendAmountKey, decimal.Zero),
		})
	}
	return &Dividends{Symbol: symbol, Data: data}
}

// Dividends fetches the dividend history for symbol.
func (c *Client) Dividends(ctx context.Context, symbol string) (*Response[Dividends], error) {
	doc, err := c.symbolDocument(ctx, FuncDividends, symbol)
	if err != nil {
		return nil, err
	}
	return newResponse(parseDividends(doc, symbol), doc, "Dividend data not available."), nil
}
