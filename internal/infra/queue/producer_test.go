package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadSyncPayloadMarshalling(t *testing.T) {
	payload := LeadSyncPayload{
		Account:     "user@crescoflow.be",
		LeadID:      "lead-123",
		CompanyName: "Bakkerij Janssens",
		ContactName: "Jan Janssens",
		Email:       "jan@janssens.be",
		Phone:       "0472 12 34 56",
		Website:     "https://janssens.be",
		Channel:     "coldsms",
		Tags:        []string{"Bron: Cold SMS"},
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.NotEmpty(t, body)

	var received LeadSyncPayload
	err = json.Unmarshal(body, &received)
	assert.NoError(t, err)

	assert.Equal(t, "user@crescoflow.be", received.Account)
	assert.Equal(t, "lead-123", received.LeadID)
	assert.Equal(t, "Bakkerij Janssens", received.CompanyName)
	assert.Equal(t, "coldsms", received.Channel)
	assert.Equal(t, []string{"Bron: Cold SMS"}, received.Tags)
}

func TestLeadSyncPayloadFieldNames(t *testing.T) {
	body, err := json.Marshal(LeadSyncPayload{LeadID: "x", CompanyName: "y"})
	assert.NoError(t, err)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "lead_id")
	assert.Contains(t, raw, "company_name")
	assert.NotContains(t, raw, "tags")
}
