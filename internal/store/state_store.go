package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"mailscribe/internal/model"
)

// StateStore reads and writes the sync cursor file.
type StateStore struct {
	Path string
}

// Load reads the cursor file. A missing file is an empty state, not an
// error; a file that exists but does not parse is an error, since syncing
// against a half-read state would refetch or skip mail.
func (s *StateStore) Load() (*model.SyncState, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &model.SyncState{}, nil
		}
		return nil, fmt.Errorf("reading sync state %s: %w", s.Path, err)
	}
	var state model.SyncState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing sync state %s: %w", s.Path, err)
	}
	return &state, nil
}

// Save writes the cursor file atomically: the state is staged to a
// temporary sibling and renamed into place.
func (s *StateStore) Save(state *model.SyncState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sync state: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing sync state %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replacing sync state %s: %w", s.Path, err)
	}
	return nil
}
