package legacy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Account(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"user@crescoflow.be": {
			"leads": [{"id": "l1", "companyName": "Bedrijf"}],
			"campaigns": [],
			"fbConversations": [],
			"scripts": [],
			"sessions": [],
			"config": {"username": "Jan", "email": "user@crescoflow.be"}
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte(content), 0o644))

	store := NewStore(dir)

	snap, ok, err := store.Account("user@crescoflow.be")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, snap.Leads, 1)
	assert.Equal(t, "l1", snap.Leads[0].ID)
	require.NotNil(t, snap.Config)
	assert.Equal(t, "Jan", snap.Config.Username)
}

func TestStore_UnknownAccount(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte(`{}`), 0o644))

	store := NewStore(dir)

	snap, ok, err := store.Account("niemand@crescoflow.be")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestStore_MissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	snap, ok, err := store.Account("user@crescoflow.be")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte(`niet json`), 0o644))

	store := NewStore(dir)

	_, _, err := store.Account("user@crescoflow.be")
	assert.Error(t, err)
}
