package mailer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailgunClient_Send(t *testing.T) {
	var gotForm map[string]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"from":    r.PostFormValue("from"),
			"to":      r.PostFormValue("to"),
			"subject": r.PostFormValue("subject"),
			"html":    r.PostFormValue("html"),
		}
		user, pass, _ := r.BasicAuth()
		gotAuth = user + ":" + pass
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewMailgunClient("mg.example.com", "key-123", "LegoExchanger <noreply@legox.local>")
	client.apiBase = srv.URL + "/v3/%s/messages"

	err := client.Send("alice@example.com", "Login to LegoExchanger", "<b>hi</b>")
	require.NoError(t, err)

	assert.Equal(t, "api:key-123", gotAuth)
	assert.Equal(t, "alice@example.com", gotForm["to"])
	assert.Equal(t, "Login to LegoExchanger", gotForm["subject"])
	assert.Equal(t, "LegoExchanger <noreply@legox.local>", gotForm["from"])
}

func TestMailgunClient_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewMailgunClient("mg.example.com", "bad-key", "noreply@legox.local")
	client.apiBase = srv.URL + "/v3/%s/messages"

	err := client.Send("alice@example.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
