package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mailscribe/internal/model"
	"mailscribe/internal/repo"
	"mailscribe/internal/store"
)

// CommitMessage is used for automated commits of the data directory.
const CommitMessage = "Sync shared conversations"

// Watcher runs incremental sync cycles on a fixed interval.
type Watcher struct {
	Engine   *Engine
	Interval time.Duration

	// Notify enables best-effort desktop notifications when a cycle finds
	// new mail.
	Notify bool

	// Repo, when set, pushes the data directory after cycles that found
	// new mail.
	Repo repo.Syncer

	Log *slog.Logger
}

// Run polls until ctx is cancelled. A cycle that has started always runs
// to completion; cancellation takes effect between cycles.
func (w *Watcher) Run(ctx context.Context) error {
	w.Log.Info("watching for new mail", "interval", w.Interval)
	for ctx.Err() == nil {
		w.cycle(ctx)
		select {
		case <-ctx.Done():
		case <-time.After(w.Interval):
		}
	}
	w.Log.Info("watch stopped")
	return nil
}

// cycle runs one incremental sync and compares the cursor file before and
// after to count labels with new mail. Failures are logged; the watcher
// keeps polling.
func (w *Watcher) cycle(ctx context.Context) {
	states := &store.StateStore{Path: w.Engine.Paths.StateFile()}
	before, err := states.Load()
	if err != nil {
		w.Log.Warn("cannot read sync state", "error", err)
		before = &model.SyncState{}
	}
	snapshot := labelUIDs(before)

	if err := w.Engine.Run(context.WithoutCancel(ctx), Options{}); err != nil {
		w.Log.Error("sync cycle failed", "error", err)
		return
	}

	after, err := states.Load()
	if err != nil {
		w.Log.Warn("cannot read sync state", "error", err)
		return
	}
	fresh := countAdvanced(snapshot, labelUIDs(after))
	if fresh == 0 {
		return
	}
	w.Log.Info("new mail", "labels", fresh)

	if w.Repo != nil {
		if err := w.Repo.Pull(ctx, w.Engine.Paths.Data); err != nil {
			w.Log.Warn("repository pull failed, pushing anyway", "error", err)
		}
		if err := w.Repo.Push(ctx, w.Engine.Paths.Data, CommitMessage); err != nil {
			w.Log.Warn("repository push failed", "error", err)
		}
	}
	if w.Notify {
		notify("mailscribe", fmt.Sprintf("New mail in %d label(s)", fresh))
	}
}

// labelUIDs flattens a sync state into "account/label" to last seen UID.
func labelUIDs(state *model.SyncState) map[string]uint32 {
	out := make(map[string]uint32)
	for account, acct := range state.Accounts {
		for label, ls := range acct.Labels {
			out[account+"/"+label] = ls.LastUID
		}
	}
	return out
}

// countAdvanced counts labels whose cursor moved forward between two
// snapshots. Labels absent from the old snapshot count as new.
func countAdvanced(before, after map[string]uint32) int {
	count := 0
	for key, uid := range after {
		if uid > before[key] {
			count++
		}
	}
	return count
}
