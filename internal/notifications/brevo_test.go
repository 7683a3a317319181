package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"neuralink-backend/internal/consultations"
)

func sampleRequest() consultations.Request {
	return consultations.Request{
		ID:              7,
		Name:            "Jane <Smith>",
		Email:           "jane.smith@company.com",
		Company:         "Tech Corp",
		Message:         "We need help with ML.",
		ServiceInterest: "Machine Learning Development",
		Timestamp:       "2024-01-15T10:30:00.000Z",
		Status:          consultations.StatusPending,
	}
}

func TestNewBrevoClientDisabled(t *testing.T) {
	require.Nil(t, NewBrevoClient("", "from@x.com", "", "to@x.com", false))
	require.Nil(t, NewBrevoClient("key", "", "", "to@x.com", false))
	require.Nil(t, NewBrevoClient("key", "from@x.com", "", "", false))

	c := NewBrevoClient("key", "from@x.com", "", "to@x.com", false)
	require.NotNil(t, c)
	require.Equal(t, "from@x.com", c.senderName)
}

func TestSendConsultationNotification(t *testing.T) {
	var got brevoSendRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@brevo>"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("secret", "noreply@neuralink-ai.com", "NeuraLink AI", "sales@neuralink-ai.com", true)
	c.endpoint = srv.URL

	id, err := c.SendConsultationNotification(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Equal(t, "<abc@brevo>", id)
	require.Equal(t, "secret", apiKey)
	require.Equal(t, "sales@neuralink-ai.com", got.To[0].Email)
	require.Equal(t, "noreply@neuralink-ai.com", got.Sender.Email)
	require.Equal(t, "drop", got.Headers["X-Sib-Sandbox"])
	require.Contains(t, got.Subject, "#7")
	require.Contains(t, got.HtmlContent, "Machine Learning Development")
	require.Contains(t, got.HtmlContent, "Jane &lt;Smith&gt;")
}

func TestSendConsultationNotificationUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("bad", "noreply@neuralink-ai.com", "", "sales@neuralink-ai.com", false)
	c.endpoint = srv.URL

	_, err := c.SendConsultationNotification(context.Background(), sampleRequest())
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "status=401"))
}

func TestNilClient(t *testing.T) {
	var c *BrevoClient
	_, err := c.SendConsultationNotification(context.Background(), sampleRequest())
	require.Error(t, err)
}
