package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalBareID(t *testing.T) {
	var ref Ref[Client]
	err := json.Unmarshal([]byte(`"client-1"`), &ref)

	require.NoError(t, err)
	assert.Equal(t, "client-1", ref.RefID())
	assert.False(t, ref.IsExpanded())
	assert.Nil(t, ref.Expanded)
}

func TestRef_UnmarshalExpandedObject(t *testing.T) {
	payload := []byte(`{"id": "client-1", "name": "Maria Silva", "email": "maria@example.com"}`)

	var ref Ref[Client]
	err := json.Unmarshal(payload, &ref)

	require.NoError(t, err)
	assert.Equal(t, "client-1", ref.RefID())
	require.True(t, ref.IsExpanded())
	assert.Equal(t, "Maria Silva", ref.Expanded.Name)
	require.NotNil(t, ref.Expanded.Email)
	assert.Equal(t, "maria@example.com", *ref.Expanded.Email)
}

func TestRef_UnmarshalNull(t *testing.T) {
	ref := Ref[Professional]{ID: "stale"}
	err := json.Unmarshal([]byte(`null`), &ref)

	require.NoError(t, err)
	assert.True(t, ref.IsZero())
}

func TestRef_MarshalRoundTrip(t *testing.T) {
	t.Run("bare id marshals back to a string", func(t *testing.T) {
		ref := Ref[Service]{ID: "svc-9"}

		data, err := json.Marshal(ref)

		require.NoError(t, err)
		assert.JSONEq(t, `"svc-9"`, string(data))
	})

	t.Run("expanded marshals back to the object", func(t *testing.T) {
		ref := Ref[Service]{
			ID:       "svc-9",
			Expanded: &Service{ID: "svc-9", Name: "Haircut", CategoryID: "cat-1"},
		}

		data, err := json.Marshal(ref)

		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"svc-9","name":"Haircut","categoryId":"cat-1"}`, string(data))
	})

	t.Run("zero ref marshals to null", func(t *testing.T) {
		var ref Ref[Client]

		data, err := json.Marshal(ref)

		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})
}

func TestRef_InsideBooking(t *testing.T) {
	payload := []byte(`{
		"id": "bk-1",
		"entityId": "ent-1",
		"clientId": "client-1",
		"professionalId": {"id": "pro-1", "name": "Joao"},
		"serviceId": {"id": "svc-1", "name": "Massage", "categoryId": "cat-wellness"},
		"startTime": "2026-03-01T10:00:00Z",
		"endTime": "2026-03-01T11:00:00Z",
		"status": "confirmed",
		"pricing": {"basePrice": 50, "totalPrice": 50, "currency": "EUR"}
	}`)

	var b Booking
	require.NoError(t, json.Unmarshal(payload, &b))

	assert.Equal(t, "client-1", b.Client.RefID())
	assert.False(t, b.Client.IsExpanded())
	assert.Equal(t, "pro-1", b.ProfessionalID())
	assert.True(t, b.Professional.IsExpanded())
	assert.Equal(t, "svc-1", b.ServiceID())
	assert.Equal(t, "cat-wellness", b.ServiceCategoryID())
}
