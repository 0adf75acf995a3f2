package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func do(h http.Handler, remoteAddr string) int {
	r := httptest.NewRequest(http.MethodGet, "/api/market-items", nil)
	r.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w.Code
}

func TestLimiter_Handler(t *testing.T) {
	// A tiny rate keeps the bucket from refilling during the test.
	h := New(0.001, 2).Handler(okHandler())

	assert.Equal(t, http.StatusOK, do(h, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, do(h, "10.0.0.1:1001"), "port does not split the client")
	assert.Equal(t, http.StatusTooManyRequests, do(h, "10.0.0.1:1002"))

	assert.Equal(t, http.StatusOK, do(h, "10.0.0.2:1000"), "clients are limited independently")
}

func TestMiddleware_Disabled(t *testing.T) {
	h := Middleware(0, 0)(okHandler())
	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, do(h, "10.0.0.1:1000"))
	}
}

func TestLimiter_EvictsIdleClients(t *testing.T) {
	l := New(1, 1)
	for i := 0; i < maxClients; i++ {
		l.get("client-" + strconv.Itoa(i))
	}
	assert.Len(t, l.clients, maxClients)

	l.get("one-more")
	assert.Len(t, l.clients, 1, "untouched buckets carry no state and are dropped")
}

func TestLimiter_CyclingAddressesKeepOtherBuckets(t *testing.T) {
	l := New(0.001, 1)
	h := l.Handler(okHandler())

	assert.True(t, l.get("cycler-0").Allow())
	time.Sleep(time.Millisecond)
	for i := 1; i < maxClients-1; i++ {
		assert.True(t, l.get("cycler-"+strconv.Itoa(i)).Allow())
	}
	assert.Equal(t, http.StatusOK, do(h, "10.0.0.9:1000"))
	assert.Len(t, l.clients, maxClients)

	assert.Equal(t, http.StatusOK, do(h, "10.0.0.10:1000"))
	assert.Len(t, l.clients, maxClients, "only one slot is reclaimed")
	assert.NotContains(t, l.clients, "cycler-0", "the least recently seen client goes")

	assert.Equal(t, http.StatusTooManyRequests, do(h, "10.0.0.9:1001"), "a drained bucket survives the churn")
}
