// Package lifecast projects a person's future finances month by month over a
// multi-year horizon. Independent cashflow models (housing, transport, debt,
// insurance, taxes, living expenses) each compute a per-period series over
// one shared timeline, and an aggregator merges them into a unified ledger
// with decision-relevant metrics on top: break-even between scenarios, total
// cost of ownership, burn rate.
//
// The core functionalities include:
//   - Timeline building: one canonical, immutable sequence of calendar
//     periods per simulation run, the join key for every series.
//   - Rate resolution: abstract growth specifications (fixed, stepped,
//     externally sourced) resolved into exactly one periodic rate per period.
//   - Domain modules: pluggable cashflow models behind a single capability
//     contract, with loan amortization shared across mortgage, car loan and
//     student loan rather than reimplemented.
//   - Aggregation and KPIs: alignment-checked merging by period key, net and
//     cumulative totals, break-even, cost of ownership and burn rate.
//   - Inflation deflation: a presentation-time view converting nominal
//     values into base-period dollars, never mutating the ledger.
//
// The engine is a deterministic, synchronous computation pipeline: given
// fixed assumptions it always produces bit-identical ledgers. It performs no
// I/O; external rate series are pre-fetched by provider packages and user
// profiles are persisted by the store package, strictly outside a run.
package lifecast
