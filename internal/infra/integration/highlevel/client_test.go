package highlevel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

func TestUpsertContact_Creates(t *testing.T) {
	var received contactRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/contacts/", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"contact": map[string]string{"id": "crm-1"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")

	id, err := client.UpsertContact(context.Background(), ContactInput{
		CompanyName: "Bakkerij Janssens",
		ContactName: "Jan Janssens",
		Email:       "jan@janssens.be",
		Channel:     entity.ChannelColdSMS,
	})

	require.NoError(t, err)
	assert.Equal(t, "crm-1", id)
	assert.Equal(t, "Jan", received.FirstName)
	assert.Equal(t, "Janssens", received.LastName)
	assert.Contains(t, received.Tags, "Bron: Cold SMS")
}

func TestUpsertContact_FallsBackToSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "duplicated contact"})
			return
		}
		assert.Equal(t, "jan@janssens.be", r.URL.Query().Get("email"))
		json.NewEncoder(w).Encode(map[string]any{"contacts": []map[string]string{{"id": "crm-bestaand"}}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")

	id, err := client.UpsertContact(context.Background(), ContactInput{
		CompanyName: "Bakkerij Janssens",
		Email:       "jan@janssens.be",
	})

	require.NoError(t, err)
	assert.Equal(t, "crm-bestaand", id)
}

func TestUpsertContact_RejectedWithoutMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")

	_, err := client.UpsertContact(context.Background(), ContactInput{CompanyName: "Naamloos"})
	assert.Error(t, err)
}

func TestSplitContactName(t *testing.T) {
	first, last := splitContactName(ContactInput{ContactName: "Jan Van de Velde", CompanyName: "X"})
	assert.Equal(t, "Jan", first)
	assert.Equal(t, "Van de Velde", last)

	first, last = splitContactName(ContactInput{CompanyName: "Bakkerij"})
	assert.Equal(t, "Contact", first)
	assert.Equal(t, "Bakkerij", last)
}
