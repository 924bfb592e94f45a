package model

// LabelState is the sync cursor for one (account, label) pair.
type LabelState struct {
	UIDValidity uint32 `json:"uidvalidity"`
	LastUID     uint32 `json:"last_uid"`
}

// AccountState holds the per-label cursors of one account.
type AccountState struct {
	Labels map[string]LabelState `json:"labels,omitempty"`
}

// SyncState is the persisted cursor file: account name to per-label
// cursors. The zero value means no prior sync.
type SyncState struct {
	Accounts map[string]AccountState `json:"accounts,omitempty"`
}

// Label returns the cursor for (account, label) and whether one is
// recorded.
func (s *SyncState) Label(account, label string) (LabelState, bool) {
	acct, ok := s.Accounts[account]
	if !ok {
		return LabelState{}, false
	}
	ls, ok := acct.Labels[label]
	return ls, ok
}

// SetLabel records the cursor for (account, label), allocating the nested
// maps as needed.
func (s *SyncState) SetLabel(account, label string, ls LabelState) {
	if s.Accounts == nil {
		s.Accounts = make(map[string]AccountState)
	}
	acct := s.Accounts[account]
	if acct.Labels == nil {
		acct.Labels = make(map[string]LabelState)
	}
	acct.Labels[label] = ls
	s.Accounts[account] = acct
}
