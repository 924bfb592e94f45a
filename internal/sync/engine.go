// Package sync drives the IMAP-to-Markdown mirror: it walks the configured
// accounts and labels, folds fetched messages into conversation files, and
// maintains the per-label sync cursors.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"mailscribe/internal/markdown"
	"mailscribe/internal/model"
	"mailscribe/internal/source"
	"mailscribe/internal/source/email"
	"mailscribe/internal/store"
)

// DialFunc opens an authenticated IMAP session for an account.
type DialFunc func(ctx context.Context, name string, acct model.Account, password string) (source.Mailbox, error)

// PasswordFunc resolves the IMAP password for an account.
type PasswordFunc func(name string, acct model.Account) (string, error)

// Options selects what one sync run covers.
type Options struct {
	// Full refetches the whole sync window, rebuilds every cursor, and
	// removes orphaned conversation files afterwards.
	Full bool

	// Account restricts the run to one configured account.
	Account string

	// Label restricts the run to one label.
	Label string
}

// Engine runs sync passes over the configured accounts. Accounts are
// processed one at a time; a failing account or label is logged and
// skipped, while filesystem failures abort the run.
type Engine struct {
	Config   *model.Config
	Paths    model.Paths
	Dial     DialFunc
	Password PasswordFunc
	Log      *slog.Logger
}

// Run executes one sync pass. The cursor state is loaded once, updated in
// memory as labels finish, and persisted once at the end; a full run
// starts from an empty state so every cursor is rebuilt from what the
// server returns.
func (e *Engine) Run(ctx context.Context, opts Options) error {
	log := e.Log.With("run", uuid.NewString())

	states := &store.StateStore{Path: e.Paths.StateFile()}
	state := &model.SyncState{}
	if !opts.Full {
		var err error
		state, err = states.Load()
		if err != nil {
			return err
		}
	}

	// Orphan reconciliation only makes sense when every live thread was
	// refetched, so the touched set exists only on full runs.
	var touched map[string]bool
	if opts.Full {
		touched = make(map[string]bool)
	}

	names := make([]string, 0, len(e.Config.Accounts))
	for name := range e.Config.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	if opts.Account != "" {
		want := strings.ToLower(opts.Account)
		if _, ok := e.Config.Accounts[want]; !ok {
			return fmt.Errorf("unknown account %q (available: %s)", opts.Account, strings.Join(names, ", "))
		}
		names = []string{want}
	}

	threads := &store.ThreadStore{Log: log}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		acct := e.Config.Accounts[name]
		if err := e.syncAccount(ctx, log.With("account", name), threads, name, acct, state, touched, opts); err != nil {
			return err
		}
	}

	if opts.Full {
		if err := store.CleanOrphans(e.Paths.Conversations(), touched, log); err != nil {
			return err
		}
	}
	if err := store.WriteManifest(e.Paths.Conversations(), e.Paths.ManifestFile(), e.Config.Contacts, log); err != nil {
		return err
	}
	if err := states.Save(state); err != nil {
		return err
	}
	log.Info("sync complete")
	return nil
}

// syncAccount syncs every label of one account. Unreachable servers, bad
// credentials, and per-label failures are logged and skipped; only
// filesystem errors propagate.
func (e *Engine) syncAccount(ctx context.Context, log *slog.Logger, threads *store.ThreadStore, name string, acct model.Account, state *model.SyncState, touched map[string]bool, opts Options) error {
	password, err := e.Password(name, acct)
	if err != nil {
		log.Warn("cannot resolve password, skipping account", "error", err)
		return nil
	}

	routes := BuildRoutes(e.Config.Routing, e.Paths.Data, name)
	labels := combineLabels(acct.Labels, routes)
	if len(labels) == 0 {
		log.Warn("no labels configured, skipping account")
		return nil
	}

	log.Info("connecting", "host", acct.Host, "port", acct.Port, "user", acct.User)
	mbox, err := e.Dial(ctx, name, acct, password)
	if err != nil {
		if source.IsAuthError(err) {
			log.Warn("authentication failed, skipping account", "error", err)
		} else {
			log.Warn("connection failed, skipping account", "error", err)
		}
		return nil
	}
	// Logout failures are not worth failing the run over; everything is
	// already on disk. ProtonMail Bridge is known to garble the reply.
	defer func() {
		if cerr := mbox.Close(); cerr != nil {
			log.Debug("logout failed", "error", cerr)
		}
	}()

	base := e.Paths.Conversations()
	syncDays := e.Config.SyncDaysFor(acct)
	for _, label := range labels {
		if opts.Label != "" && !strings.EqualFold(label, opts.Label) {
			continue
		}
		dirs := append([]string{base}, routes[strings.ToLower(label)]...)
		if err := e.syncLabel(log.With("label", label), mbox, threads, name, label, syncDays, opts.Full, state, touched, dirs); err != nil {
			return err
		}
	}
	return nil
}

// syncLabel syncs one (account, label) pair into the given directories.
// The first directory is the primary conversations directory; the rest are
// routing fan-out targets.
func (e *Engine) syncLabel(log *slog.Logger, mbox source.Mailbox, threads *store.ThreadStore, account, label string, syncDays int, full bool, state *model.SyncState, touched map[string]bool, dirs []string) error {
	uidValidity, err := mbox.Select(label)
	if err != nil {
		log.Warn("folder not found, skipping label", "error", err)
		return nil
	}

	prior, hasPrior := state.Label(account, label)
	doFull := full || !hasPrior || prior.UIDValidity != uidValidity

	var uids []uint32
	if doFull {
		switch {
		case hasPrior && prior.UIDValidity != uidValidity:
			log.Info("uidvalidity changed, refetching the whole window")
		case !hasPrior && !full:
			log.Info("no cursor recorded, refetching the whole window")
		}
		uids, err = mbox.SearchSince(time.Now().AddDate(0, 0, -syncDays))
		if err != nil {
			log.Warn("search failed, skipping label", "error", err)
			return nil
		}
	} else {
		found, err := mbox.SearchAfterUID(prior.LastUID)
		if err != nil {
			log.Warn("search failed, skipping label", "error", err)
			return nil
		}
		// Servers echo the highest UID for an empty range; keep only
		// genuinely new messages.
		for _, uid := range found {
			if uid > prior.LastUID {
				uids = append(uids, uid)
			}
		}
	}

	lastUID := prior.LastUID
	if len(uids) == 0 {
		log.Info("no new messages")
		state.SetLabel(account, label, model.LabelState{UIDValidity: uidValidity, LastUID: lastUID})
		return nil
	}

	log.Info("fetching messages", "count", len(uids))
	for _, uid := range uids {
		raw, err := mbox.FetchRaw(uid)
		if err != nil {
			log.Warn("fetch failed, skipping message", "uid", uid, "error", err)
			continue
		}
		parsed, err := email.ParseMail(raw)
		if err != nil {
			log.Warn("unparseable message, skipping", "uid", uid, "error", err)
			continue
		}

		key := markdown.ThreadKey(parsed.Subject)
		msg := model.Message{
			ID:       strconv.FormatUint(uint64(uid), 10),
			ThreadID: key,
			From:     parsed.From,
			Date:     parsed.Date,
			Subject:  parsed.Subject,
			Body:     parsed.Body,
		}
		for _, dir := range dirs {
			path, err := threads.Merge(dir, label, account, msg, key)
			if err != nil {
				return err
			}
			if touched != nil && path != "" {
				touched[path] = true
			}
		}
		if uid > lastUID {
			lastUID = uid
		}
	}

	state.SetLabel(account, label, model.LabelState{UIDValidity: uidValidity, LastUID: lastUID})
	return nil
}
