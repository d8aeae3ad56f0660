package models

import (
	"strings"
	"testing"
)

func row(fields ...string) []string {
	return fields
}

func mustParse(t *testing.T, fields []string) TradeRecord {
	t.Helper()
	rec, err := ParseRecord(fields, 1)
	if err != nil {
		t.Fatalf("Failed to parse record: %v", err)
	}
	return rec
}

func TestParseRecord(t *testing.T) {
	rec := mustParse(t, row(
		"Trade", "1.95852928", " BTC", "1312.95150627", " XMR", "0.1", " BTC",
		" Poloniex", "", "", " 30.08.2016 13:31", "tx1",
	))

	if !rec.BuyAmount.Valid || rec.BuyAmount.Decimal.String() != "1.95852928" {
		t.Errorf("Expected buy amount 1.95852928, got %v", rec.BuyAmount)
	}
	if rec.BuyCurrency != " BTC" {
		t.Errorf("Expected padded buy currency to round-trip, got %q", rec.BuyCurrency)
	}
	if rec.Date != "30.08.2016 13:31" {
		t.Errorf("Expected trimmed date, got %q", rec.Date)
	}
	if rec.DatePart() != "30.08.2016" {
		t.Errorf("Expected date part 30.08.2016, got %q", rec.DatePart())
	}
}

func TestParseRecordAbsentAmounts(t *testing.T) {
	rec := mustParse(t, row(
		"Deposit", "", "BTC", "", "", "", "", "Kraken", "", "", "01.01.2020 09:00", "tx9",
	))

	if rec.BuyAmount.Valid || rec.SellAmount.Valid || rec.Fee.Valid {
		t.Errorf("Expected blank amounts to be absent, got %v %v %v",
			rec.BuyAmount, rec.SellAmount, rec.Fee)
	}
	if got := rec.Fields()[1]; got != "" {
		t.Errorf("Expected absent amount to render empty, got %q", got)
	}
}

func TestParseRecordInvalidAmount(t *testing.T) {
	_, err := ParseRecord(row(
		"Trade", "1", "BTC", "not-a-number", "XMR", "0.1", "BTC",
		"Poloniex", "", "", "30.08.2016 13:31", "tx1",
	), 7)
	if err == nil {
		t.Fatal("Expected error for malformed sell amount, got nil")
	}
	if !strings.Contains(err.Error(), "sell amount") {
		t.Errorf("Expected error naming the field, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 7") {
		t.Errorf("Expected error naming the row, got %v", err)
	}
}

func TestParseRecordFieldCount(t *testing.T) {
	_, err := ParseRecord([]string{"Trade", "1", "BTC"}, 3)
	if err == nil {
		t.Fatal("Expected error for short row, got nil")
	}
}

func TestDatePartWithoutTime(t *testing.T) {
	rec := TradeRecord{Date: "30.08.2016"}
	if rec.DatePart() != "30.08.2016" {
		t.Errorf("Expected whole string when no space, got %q", rec.DatePart())
	}
}

func TestSameGroup(t *testing.T) {
	a := mustParse(t, row(
		"Trade", "1", "BTC", "2", "XMR", "0.1", "BTC",
		"Poloniex", "", "", "30.08.2016 13:31", "tx1",
	))
	b := mustParse(t, row(
		"Trade", "3", "BTC", "4", "XMR", "0.2", "BTC",
		"Poloniex", "", "", "30.08.2016 14:00", "tx2",
	))

	if !SameGroup(a, b) {
		t.Error("Expected same-day records on the same venue to group")
	}

	c := b
	c.Date = "31.08.2016 14:00"
	if SameGroup(a, c) {
		t.Error("Expected different date parts not to group")
	}

	d := b
	d.SellCurrency = "LTC"
	if SameGroup(a, d) {
		t.Error("Expected different sell currency not to group")
	}
}

func TestSameGroupExchangeException(t *testing.T) {
	a := mustParse(t, row(
		"Trade", "1", "BTC", "2", "XMR", "0.1", "BTC",
		"My Wallet", "", "", "30.08.2016 13:31", "tx1",
	))
	b := a

	if SameGroup(a, b) {
		t.Error("Expected wallet records never to group, even when identical")
	}

	// Substring and case-insensitive: "Transaction" anywhere in the venue
	// name excludes the record as well.
	c := a
	c.Exchange = "BTC transactions import"
	d := c
	if SameGroup(c, d) {
		t.Error("Expected transaction-import records never to group")
	}
}

func TestMerge(t *testing.T) {
	a := mustParse(t, row(
		"Trade", "1", "BTC", "2", "XMR", "0.1", "BTC",
		"Poloniex", "", "margin", "30.08.2016 13:31", "tx1",
	))
	b := mustParse(t, row(
		"Trade", "3", "BTC", "4", "XMR", "0.2", "BTC",
		"Poloniex", "batch-7", "", "30.08.2016 14:00", "tx2",
	))

	m := Merge(a, b)

	if got := m.BuyAmount.Decimal.String(); got != "4" {
		t.Errorf("Expected buy amount 4, got %s", got)
	}
	if got := m.SellAmount.Decimal.String(); got != "6" {
		t.Errorf("Expected sell amount 6, got %s", got)
	}
	if got := m.Fee.Decimal.String(); got != "0.3" {
		t.Errorf("Expected fee 0.3, got %s", got)
	}
	if m.Date != "30.08.2016 13:31" {
		t.Errorf("Expected accumulator date to be kept, got %q", m.Date)
	}
	if m.TxID != "tx1" {
		t.Errorf("Expected accumulator tx id to be kept, got %q", m.TxID)
	}
	if m.Group != "batch-7" {
		t.Errorf("Expected empty group to fall back to the other record, got %q", m.Group)
	}
	if m.Comment != "margin" {
		t.Errorf("Expected accumulator comment to win, got %q", m.Comment)
	}

	// Operands are values; the originals must be untouched.
	if a.BuyAmount.Decimal.String() != "1" || b.BuyAmount.Decimal.String() != "3" {
		t.Error("Merge mutated an operand")
	}
}

func TestMergeAbsentPropagation(t *testing.T) {
	a := mustParse(t, row(
		"Trade", "1", "BTC", "2", "XMR", "", "BTC",
		"Poloniex", "", "", "30.08.2016 13:31", "tx1",
	))
	b := mustParse(t, row(
		"Trade", "3", "BTC", "4", "XMR", "0.2", "BTC",
		"Poloniex", "", "", "30.08.2016 14:00", "tx2",
	))

	if m := Merge(a, b); m.Fee.Valid {
		t.Errorf("Expected absent fee to propagate, got %v", m.Fee)
	}
	if m := Merge(b, a); m.Fee.Valid {
		t.Errorf("Expected absent fee to propagate from either side, got %v", m.Fee)
	}
}
