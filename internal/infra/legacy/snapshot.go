// Package legacy reads the pre-indexed persistence format: one flat JSON
// document for the whole installation, keyed by account email, with every
// collection inlined as an array. The file is only ever read; the upgrade
// path keeps it around as a fallback.
package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// SnapshotFile is the well-known name of the legacy store in the data dir.
const SnapshotFile = "crescoflow_users_db.json"

// AccountSnapshot is one account's slice of the legacy document.
type AccountSnapshot struct {
	Leads           []entity.Lead         `json:"leads"`
	Campaigns       []entity.Campaign     `json:"campaigns"`
	FBConversations []entity.Conversation `json:"fbConversations"`
	Scripts         []entity.CallScript   `json:"scripts"`
	Sessions        []entity.MeetSession  `json:"sessions"`
	Config          *entity.UserConfig    `json:"config"`
}

type Store struct {
	path string
}

func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, SnapshotFile)}
}

// Account returns the snapshot for one account email. The second return is
// false when no legacy file exists or the file has no entry for the account;
// neither case is an error.
func (s *Store) Account(email string) (*AccountSnapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read legacy snapshot: %w", err)
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, false, fmt.Errorf("parse legacy snapshot: %w", err)
	}

	raw, ok := all[email]
	if !ok {
		return nil, false, nil
	}

	var snap AccountSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, fmt.Errorf("parse legacy snapshot for %s: %w", email, err)
	}

	return &snap, true, nil
}
