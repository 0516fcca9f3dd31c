package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/infra/database"
	"github.com/crescoflow/crescoflow-core/internal/usecase"
)

// MockBackupMailer
type MockBackupMailer struct {
	mock.Mock
}

func (m *MockBackupMailer) SendBackup(to string, doc []byte) error {
	args := m.Called(to, doc)
	return args.Error(0)
}

func newBackupHandler(t *testing.T, mailer usecase.BackupMailer) (*BackupHandler, *database.LeadRepository) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db, dsn))

	leads := database.NewLeadRepository(db)
	backup := &usecase.Backup{
		Leads:         leads,
		Campaigns:     database.NewCampaignRepository(db),
		Conversations: database.NewConversationRepository(db),
		Scripts:       database.NewScriptRepository(db),
		Sessions:      database.NewSessionRepository(db),
		Config:        database.NewConfigRepository(db),
		Activity:      database.NewActivityRepository(db),
	}
	return NewBackupHandler(backup, mailer), leads
}

func TestHandleDownload(t *testing.T) {
	handler, leads := newBackupHandler(t, nil)

	require.NoError(t, leads.Put(context.Background(), "user@crescoflow.be",
		&entity.Lead{ID: "l1", CompanyName: "Bedrijf"}))

	req := httptest.NewRequest(http.MethodGet, "/backup?account=user@crescoflow.be", nil)
	rec := httptest.NewRecorder()

	handler.HandleDownload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "CrescoFlow_Backup_")

	var doc usecase.BackupDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "1.0", doc.Version)
	assert.Len(t, doc.Leads, 1)
}

func TestHandleRestore(t *testing.T) {
	handler, leads := newBackupHandler(t, nil)

	body, _ := json.Marshal(RestoreRequest{
		Account: "user@crescoflow.be",
		Backup: usecase.BackupDocument{
			Leads:   []entity.Lead{{ID: "l1", CompanyName: "Hersteld"}},
			Version: "1.0",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/backup/restore", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleRestore(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	lead, err := leads.Get(context.Background(), "user@crescoflow.be", "l1")
	require.NoError(t, err)
	assert.Equal(t, "Hersteld", lead.CompanyName)
}

func TestHandleEmail(t *testing.T) {
	mailer := new(MockBackupMailer)
	mailer.On("SendBackup", "user@crescoflow.be", mock.Anything).Return(nil)
	handler, _ := newBackupHandler(t, mailer)

	req := httptest.NewRequest(http.MethodPost, "/backup/email?account=user@crescoflow.be", nil)
	rec := httptest.NewRecorder()

	handler.HandleEmail(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mailer.AssertExpectations(t)
}

func TestHandleEmail_NotConfigured(t *testing.T) {
	handler, _ := newBackupHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/backup/email?account=user@crescoflow.be", nil)
	rec := httptest.NewRecorder()

	handler.HandleEmail(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
