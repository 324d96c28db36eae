package worker

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-arbiter/internal/errors"
	"github.com/lgbarn/chess-arbiter/internal/storage"
)

// ReplayRecord rebuilds the record's game and checks that the stored
// result agrees with the replayed one.
func ReplayRecord(item WorkItem) ProcessResult {
	res := ProcessResult{Record: item.Record, Index: item.Index}

	g, err := item.Record.Game()
	if err != nil {
		res.Error = err
		return res
	}

	var result, reason string
	if t := g.Terminal(); t != nil {
		result, reason = t.Result(), t.Reason.String()
	}
	if result != item.Record.Result || reason != item.Record.Reason {
		res.Error = &errors.StateError{
			Err: errors.ErrInconsistentState,
			Detail: fmt.Sprintf("game %s: stored result %q (%s), replay gives %q (%s)",
				item.Record.ID, item.Record.Result, item.Record.Reason, result, reason),
		}
		return res
	}

	res.Snapshot = g.Snapshot()
	return res
}

// Options controls VerifyAll.
type Options struct {
	Workers  int  // 0 means one per CPU
	FailFast bool // stop at the first failed record
}

// VerifyAll replays every record with ReplayRecord and returns the results
// in input order. With FailFast, records not yet started when the first
// failure is seen are skipped and absent from the result.
func VerifyAll(records []*storage.Record, opts Options) []ProcessResult {
	pool := NewPool(ReplayRecord, WithWorkers(opts.Workers), WithBufferSize(len(records)+1))
	pool.Start()

	go func() {
		for i, rec := range records {
			pool.Submit(WorkItem{Record: rec, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(records))
	for res := range pool.Results() {
		if res.Error != nil && opts.FailFast {
			pool.Stop()
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
