// Package repokit is what repos are written against: the SQL seams, binders
// that attach a repo to a pool or a tx, and tx begin hooks.
package repokit

import "todotrack/internal/platform/store"

type (
	// Queryer is the read and write surface a bound repo runs on
	Queryer = store.RowQuerier

	// TxRunner is a Queryer that can also open transactions
	TxRunner = store.TxRunner
)
