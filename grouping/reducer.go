package grouping

import (
	"strings"

	"github.com/ctmerge/ctmerge/models"
)

// isRedundantBinanceFee matches the redundant "Lost" fee line Binance
// exports alongside the real fee entry. Such lines are discarded before they
// can touch grouping state.
func isRedundantBinanceFee(r models.TradeRecord) bool {
	return r.RecordType == "Lost" &&
		r.Exchange == "Binance" &&
		strings.Contains(r.TxID, "_fee")
}

// Reducer folds runs of consecutive same-group records into one aggregate
// each, in a single forward pass. Push records in input order, then Flush
// once; emitted aggregates follow the input order of each group's first
// member.
type Reducer struct {
	acc     *models.TradeRecord
	dropped int
}

func NewReducer() *Reducer {
	return &Reducer{}
}

// Push feeds the next record. When the incoming record closes the current
// group, the finished aggregate is returned with ok=true.
func (g *Reducer) Push(r models.TradeRecord) (models.TradeRecord, bool) {
	if isRedundantBinanceFee(r) {
		g.dropped++
		return models.TradeRecord{}, false
	}

	if g.acc == nil {
		g.acc = &r
		return models.TradeRecord{}, false
	}

	// The accumulator must stay on the left: SameGroup's exchange
	// exception list only inspects its left operand.
	if models.SameGroup(*g.acc, r) {
		merged := models.Merge(*g.acc, r)
		g.acc = &merged
		return models.TradeRecord{}, false
	}

	out := *g.acc
	g.acc = &r
	return out, true
}

// Flush emits the final aggregate. On a run with no surviving records there
// is nothing to flush and ok is false.
func (g *Reducer) Flush() (models.TradeRecord, bool) {
	if g.acc == nil {
		return models.TradeRecord{}, false
	}
	out := *g.acc
	g.acc = nil
	return out, true
}

// Dropped reports how many records the redundant-fee filter discarded.
func (g *Reducer) Dropped() int {
	return g.dropped
}

// Reduce folds an entire record sequence in one call.
func Reduce(records []models.TradeRecord) []models.TradeRecord {
	rd := NewReducer()
	out := make([]models.TradeRecord, 0, len(records))
	for _, r := range records {
		if merged, ok := rd.Push(r); ok {
			out = append(out, merged)
		}
	}
	if last, ok := rd.Flush(); ok {
		out = append(out, last)
	}
	return out
}
