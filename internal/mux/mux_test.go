package mux

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_authRouter(t *testing.T) {
	m, token := newTestMux(t)

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	assertGet(t, ts, "/test", &errObj, 401, "not-a-token")

	// test using auth header
	var str string
	assertGet(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)

	// test using query parameter
	str = ""
	assertGet(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "OK", str)

	// test using the session cookie
	str = ""
	req := newRequest(t, http.MethodGet, ts.URL+"/test", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	assertDo(t, req, &str, 200)
	assert.Equal(t, "OK", str)
}
