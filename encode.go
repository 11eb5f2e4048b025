package lifecast

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The unified ledger is exposed to exporters as plain period-keyed records.
// The engine has no opinion on the final output format; JSON and JSONL here
// are the neutral carriers consumers re-serialize from.

// encodeRow builds one period-keyed record, components in ledger order.
func encodeRow(l *UnifiedLedger, row LedgerRow) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("period", int(row.Period))
	w.Append("range", row.Range.Identifier())
	for _, key := range l.order {
		w.Append(key, row.Components[key])
	}
	w.Append("net", row.Net)
	w.Append("cumulative", row.Cumulative)
	return &w
}

// EncodeLedger writes the ledger as JSONL, one period record per line, in
// period order.
func EncodeLedger(w io.Writer, l *UnifiedLedger) error {
	buffered := bufio.NewWriter(w)
	for _, row := range l.rows {
		line, err := encodeRow(l, row).MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding period %d: %w", row.Period, err)
		}
		buffered.Write(line)
		buffered.WriteByte('\n')
	}
	return buffered.Flush()
}

// MarshalJSON exposes the ledger as a single JSON document: the horizon
// metadata and the rows array.
func (l *UnifiedLedger) MarshalJSON() ([]byte, error) {
	rows := make([]*jsonObjectWriter, 0, len(l.rows))
	for _, row := range l.rows {
		rows = append(rows, encodeRow(l, row))
	}
	var w jsonObjectWriter
	w.Append("granularity", l.timeline.Granularity().String())
	w.Append("start", l.timeline.Start())
	w.Append("end", l.timeline.End())
	w.Append("rows", rows)
	return w.MarshalJSON()
}
