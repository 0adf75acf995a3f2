package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
		wantErr  bool
	}{
		{name: "Number", input: `42`, expected: 42},
		{name: "Numeric string", input: `"42"`, expected: 42},
		{name: "Null", input: `null`, expected: 0},
		{name: "Empty string", input: `""`, expected: 0},
		{name: "Fraction", input: `4.2`, wantErr: true},
		{name: "Word", input: `"abc"`, wantErr: true},
		{name: "Object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestStartParam_UnmarshalJSON(t *testing.T) {
	var req LaunchRequestDTO
	require.NoError(t, json.Unmarshal([]byte(`{"user":{"id":"2"},"startParam":1}`), &req))
	assert.Equal(t, ID(2), req.User.ID)
	assert.Equal(t, StartParam("1"), req.StartParam)

	require.NoError(t, json.Unmarshal([]byte(`{"user":{"id":2},"startParam":"ref"}`), &req))
	assert.Equal(t, StartParam("ref"), req.StartParam)

	req = LaunchRequestDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{"user":{"id":2},"startParam":null}`), &req))
	assert.Equal(t, StartParam(""), req.StartParam)

	assert.Error(t, json.Unmarshal([]byte(`{"startParam":[1]}`), &req))
}

func TestNewProfileDTO(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	account := &domain.Account{
		ID:        2,
		Points:    50,
		CreatedAt: now,
		UpdatedAt: now,
		Profile:   domain.Profile{Username: "bob", AllowsWriteToPM: true},
	}

	data, err := json.Marshal(NewProfileDTO(account))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"telegramId": 2,
		"points": 50,
		"referrals": [],
		"referredBy": null,
		"username": "bob",
		"firstName": "",
		"lastName": "",
		"languageCode": "",
		"isPremium": false,
		"allowsWriteToPm": true,
		"createdAt": "2024-05-01T10:00:00Z",
		"updatedAt": "2024-05-01T10:00:00Z"
	}`, string(data))
}

func TestNewMarketItemsDTO(t *testing.T) {
	items := NewMarketItemsDTO([]domain.CatalogItem{{ID: "a", Name: "A", Points: 10, Description: "d"}})
	assert.Equal(t, []MarketItemDTO{{ID: "a", Name: "A", Points: 10, Description: "d"}}, items)
	assert.NotNil(t, NewMarketItemsDTO(nil))
}
