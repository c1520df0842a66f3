package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	wc := NewWhatsAppClient(WhatsAppConfig{Region: "IN"})

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"bare national number", "9876543210", "919876543210", false},
		{"with country code", "+919876543210", "919876543210", false},
		{"with spaces", "98765 43210", "919876543210", false},
		{"too short", "12345", "", true},
		{"garbage", "not-a-phone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wc.NormalizePhone(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSendTemplate(t *testing.T) {
	var captured templateMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"id":"wamid.test123"}]}`))
	}))
	defer server.Close()

	wc := NewWhatsAppClient(WhatsAppConfig{
		BaseURL:     server.URL,
		PhoneID:     "12345",
		AccessToken: "test-token",
		Region:      "IN",
	})

	result := wc.SendTemplate(context.Background(), "9876543210",
		"booking_confirmation", "en", []string{"TB20260901-XYZ", "Green Arena"})

	assert.True(t, result.Success)
	assert.Equal(t, "wamid.test123", result.MessageID)

	assert.Equal(t, "whatsapp", captured.MessagingProduct)
	assert.Equal(t, "919876543210", captured.To)
	assert.Equal(t, "template", captured.Type)
	assert.Equal(t, "booking_confirmation", captured.Template.Name)
	assert.Equal(t, "en", captured.Template.Language.Code)
	require.Len(t, captured.Template.Components, 1)
	assert.Len(t, captured.Template.Components[0].Parameters, 2)
}

func TestSendTemplateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"template not found"}}`))
	}))
	defer server.Close()

	wc := NewWhatsAppClient(WhatsAppConfig{
		BaseURL:     server.URL,
		PhoneID:     "12345",
		AccessToken: "test-token",
	})

	result := wc.SendTemplate(context.Background(), "9876543210", "missing_template", "en", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "template not found", result.Error)
}

func TestSendTemplateInvalidPhone(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	wc := NewWhatsAppClient(WhatsAppConfig{BaseURL: server.URL, PhoneID: "12345"})

	result := wc.SendTemplate(context.Background(), "12345", "booking_confirmation", "en", nil)

	assert.False(t, result.Success)
	assert.False(t, called)
}
