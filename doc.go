// Package tracker provides the computation engine behind a personal finance
// tracker. It records income and expense transactions, category budgets,
// savings goals and investment holdings, and derives every figure the views
// display: monthly totals, budget survival, per-category spending, cash-flow
// series, goal progress and portfolio returns.
//
// The core functionalities include:
//   - Ledger Store: a single-writer container for transactions, goals,
//     category budgets, investments and settings, with validated mutations
//     and load/save against a pluggable key-value store.
//   - Query/Filter Engine: predicate-based filtering and stable sorting over
//     the transaction collection.
//   - Aggregation Engine: period-bucketed sums, month-over-month deltas,
//     category breakdowns and budget survival math.
//   - Goal & Budget Evaluator: status classification and time-to-goal
//     projection at the current savings rate.
//   - Investment Evaluator: per-holding and portfolio-level gain/loss and ROI.
//
// All engine functions are side-effect-free: they read the ledger and return
// plain data, leaving rendering to the `pg` command-line tool built on top.
package tracker
