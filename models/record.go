package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NumFields is the column count of a CoinTracking trade list export.
const NumFields = 12

// exchangeExceptions marks venues whose records must never be merged,
// e.g. autoimported blockchain transactions that happen to share a date.
var exchangeExceptions = []string{"Wallet", "Transaction"}

// TradeRecord is one row of trade history, fields in export column order.
// Amount fields are absent (Valid=false) when the source column was blank;
// absent is not the same as zero.
type TradeRecord struct {
	RecordType   string
	BuyAmount    decimal.NullDecimal
	BuyCurrency  string
	SellAmount   decimal.NullDecimal
	SellCurrency string
	Fee          decimal.NullDecimal
	FeeCurrency  string
	Exchange     string
	Group        string
	Comment      string
	Date         string
	TxID         string
}

// ParseRecord builds a TradeRecord from one CSV row. rowNum is the 1-based
// data row number, used in parse error messages. String fields are kept
// verbatim (the export pads fields after commas and padding must round-trip);
// only the date is trimmed and amounts are trimmed before decimal parsing.
func ParseRecord(fields []string, rowNum int) (TradeRecord, error) {
	if len(fields) != NumFields {
		return TradeRecord{}, fmt.Errorf("row %d: expected %d fields, got %d", rowNum, NumFields, len(fields))
	}

	buyAmount, err := parseAmount(fields[1], "buy amount", rowNum)
	if err != nil {
		return TradeRecord{}, err
	}
	sellAmount, err := parseAmount(fields[3], "sell amount", rowNum)
	if err != nil {
		return TradeRecord{}, err
	}
	fee, err := parseAmount(fields[5], "fee", rowNum)
	if err != nil {
		return TradeRecord{}, err
	}

	return TradeRecord{
		RecordType:   fields[0],
		BuyAmount:    buyAmount,
		BuyCurrency:  fields[2],
		SellAmount:   sellAmount,
		SellCurrency: fields[4],
		Fee:          fee,
		FeeCurrency:  fields[6],
		Exchange:     fields[7],
		Group:        fields[8],
		Comment:      fields[9],
		Date:         strings.TrimSpace(fields[10]),
		TxID:         fields[11],
	}, nil
}

func parseAmount(raw, field string, rowNum int) (decimal.NullDecimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("row %d: invalid %s %q: %w", rowNum, field, raw, err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// DatePart returns the text before the first space of the date field, i.e.
// the calendar day without the time of day.
func (r TradeRecord) DatePart() string {
	if i := strings.IndexByte(r.Date, ' '); i >= 0 {
		return r.Date[:i]
	}
	return r.Date
}

// Fields renders the record back into export column order. Absent amounts
// render as empty strings, present amounts as their exact decimal text.
func (r TradeRecord) Fields() []string {
	return []string{
		r.RecordType,
		formatAmount(r.BuyAmount),
		r.BuyCurrency,
		formatAmount(r.SellAmount),
		r.SellCurrency,
		formatAmount(r.Fee),
		r.FeeCurrency,
		r.Exchange,
		r.Group,
		r.Comment,
		r.Date,
		r.TxID,
	}
}

func formatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// SameGroup reports whether candidate b can be folded into accumulator a.
// The relation is intentionally asymmetric: only a's exchange is checked
// against the exception list, so callers must pass the group accumulator as
// the left operand.
func SameGroup(a, b TradeRecord) bool {
	exchange := strings.ToLower(a.Exchange)
	for _, exc := range exchangeExceptions {
		if strings.Contains(exchange, strings.ToLower(exc)) {
			return false
		}
	}

	return a.RecordType == b.RecordType &&
		a.BuyCurrency == b.BuyCurrency &&
		a.SellCurrency == b.SellCurrency &&
		a.Exchange == b.Exchange &&
		a.FeeCurrency == b.FeeCurrency &&
		a.DatePart() == b.DatePart()
}

// Merge combines two same-group records into a new record. Identity fields,
// date and tx id come from the accumulator a; group and comment fall back to
// b when a's are empty; amounts are summed, with absent on either side
// yielding absent. Neither operand is mutated.
func Merge(a, b TradeRecord) TradeRecord {
	group := a.Group
	if group == "" {
		group = b.Group
	}
	comment := a.Comment
	if comment == "" {
		comment = b.Comment
	}

	return TradeRecord{
		RecordType:   a.RecordType,
		BuyAmount:    sumAmount(a.BuyAmount, b.BuyAmount),
		BuyCurrency:  a.BuyCurrency,
		SellAmount:   sumAmount(a.SellAmount, b.SellAmount),
		SellCurrency: a.SellCurrency,
		Fee:          sumAmount(a.Fee, b.Fee),
		FeeCurrency:  a.FeeCurrency,
		Exchange:     a.Exchange,
		Group:        group,
		Comment:      comment,
		Date:         a.Date,
		TxID:         a.TxID,
	}
}

func sumAmount(a, b decimal.NullDecimal) decimal.NullDecimal {
	if !a.Valid || !b.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: a.Decimal.Add(b.Decimal), Valid: true}
}
