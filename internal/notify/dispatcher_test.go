package notify_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscus-app/fiscus/internal/notify"
)

func countingServer(t *testing.T, hits *atomic.Int64, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDispatchAllChannelsSucceed(t *testing.T) {
	var emailHits, smsHits, waHits atomic.Int64
	dispatcher := notify.NewDispatcher(notify.Endpoints{
		Email:    countingServer(t, &emailHits, http.StatusOK).URL,
		SMS:      countingServer(t, &smsHits, http.StatusOK).URL,
		WhatsApp: countingServer(t, &waHits, http.StatusOK).URL,
	}, time.Second)

	results := dispatcher.Dispatch(context.Background(), "ana@example.com", "+40700000000", "salut")
	require.Len(t, results, 3)
	for _, result := range results {
		assert.NoError(t, result.Err, "channel %s", result.Channel)
	}
	assert.Equal(t, int64(1), emailHits.Load())
	assert.Equal(t, int64(1), smsHits.Load())
	assert.Equal(t, int64(1), waHits.Load())
}

func TestDispatchEmailFailureDoesNotAbortOthers(t *testing.T) {
	var emailHits, smsHits, waHits atomic.Int64
	dispatcher := notify.NewDispatcher(notify.Endpoints{
		Email:    countingServer(t, &emailHits, http.StatusInternalServerError).URL,
		SMS:      countingServer(t, &smsHits, http.StatusOK).URL,
		WhatsApp: countingServer(t, &waHits, http.StatusOK).URL,
	}, time.Second)

	results := dispatcher.Dispatch(context.Background(), "ana@example.com", "+40700000000", "salut")
	require.Len(t, results, 3)

	byChannel := map[string]error{}
	for _, result := range results {
		byChannel[result.Channel] = result.Err
	}
	assert.Error(t, byChannel[notify.ChannelEmail])
	assert.NoError(t, byChannel[notify.ChannelSMS])
	assert.NoError(t, byChannel[notify.ChannelWhatsApp])

	// Every channel was attempted despite the email failure.
	assert.Equal(t, int64(1), emailHits.Load())
	assert.Equal(t, int64(1), smsHits.Load())
	assert.Equal(t, int64(1), waHits.Load())
}

func TestDispatchUnreachableProvider(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	var smsHits, waHits atomic.Int64
	dispatcher := notify.NewDispatcher(notify.Endpoints{
		Email:    dead.URL,
		SMS:      countingServer(t, &smsHits, http.StatusOK).URL,
		WhatsApp: countingServer(t, &waHits, http.StatusOK).URL,
	}, time.Second)

	results := dispatcher.Dispatch(context.Background(), "ana@example.com", "+40700000000", "salut")
	byChannel := map[string]error{}
	for _, result := range results {
		byChannel[result.Channel] = result.Err
	}
	assert.Error(t, byChannel[notify.ChannelEmail])
	assert.NoError(t, byChannel[notify.ChannelSMS])
	assert.NoError(t, byChannel[notify.ChannelWhatsApp])
}

type stubSender struct {
	results []notify.ChannelResult
}

func (s *stubSender) Dispatch(ctx context.Context, email, phone, message string) []notify.ChannelResult {
	return s.results
}

func newNotifyRouter(sender notify.Sender) http.Handler {
	r := chi.NewRouter()
	notify.NewHandler(slog.New(slog.DiscardHandler), sender).MountRoutes(r)
	return r
}

func TestSendNotificationEndpoint(t *testing.T) {
	router := newNotifyRouter(&stubSender{results: []notify.ChannelResult{
		{Channel: notify.ChannelEmail},
		{Channel: notify.ChannelSMS},
		{Channel: notify.ChannelWhatsApp},
	}})

	req := httptest.NewRequest(http.MethodPost, "/send_notification",
		strings.NewReader(`{"email":"ana@example.com","phone":"+40700000000","message":"salut"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"msg":"notification sent successfully"}`, res.Body.String())
}

func TestSendNotificationEndpointPartialFailure(t *testing.T) {
	router := newNotifyRouter(&stubSender{results: []notify.ChannelResult{
		{Channel: notify.ChannelEmail, Err: errors.New("provider returned status 500")},
		{Channel: notify.ChannelSMS},
		{Channel: notify.ChannelWhatsApp},
	}})

	req := httptest.NewRequest(http.MethodPost, "/send_notification",
		strings.NewReader(`{"email":"ana@example.com","phone":"+40700000000","message":"salut"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadGateway, res.Code)
	assert.Contains(t, res.Body.String(), "email")
	assert.NotContains(t, res.Body.String(), "sms")
}

func TestSendNotificationEndpointValidation(t *testing.T) {
	router := newNotifyRouter(&stubSender{})

	req := httptest.NewRequest(http.MethodPost, "/send_notification",
		strings.NewReader(`{"email":"not-an-email","phone":"+40700000000","message":"salut"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}
