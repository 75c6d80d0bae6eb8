package frogweb

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		fmt.Fprint(w, `{"status":"ok","nodeId":"abc123"}`)
	}))
	defer srv.Close()

	reg, err := Register(srv.URL, "machine-1", "frog@example.com", "pond.frognet.io", "0.1.0")
	require.NoError(t, err)
	require.Equal(t, "abc123", reg.NodeID)
	require.Equal(t, "machine-1", gotQuery["id"])
	require.Equal(t, "frog@example.com", gotQuery["email"])
	require.Equal(t, "pond.frognet.io", gotQuery["domain"])
}

func TestRegisterRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"denied"}`)
	}))
	defer srv.Close()

	_, err := Register(srv.URL, "machine-1", "frog@example.com", "pond", "0.1.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "denied")
}

func TestRegisterHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Register(srv.URL, "machine-1", "frog@example.com", "pond", "0.1.0")
	require.Error(t, err)
}

func TestLatestPayloadVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/releases", r.URL.Path)
		fmt.Fprint(w, `[
			{"version":"v0.9.0","url":"https://dl/frognet-0.9.0.tar.gz"},
			{"version":"v1.1.0","url":"https://dl/frognet-1.1.0.tar.gz"},
			{"version":"v1.2.0-rc.1","url":"https://dl/frognet-1.2.0-rc.1.tar.gz","prerelease":true},
			{"version":"v1.0.0","url":"https://dl/frognet-1.0.0.tar.gz"}
		]`)
	}))
	defer srv.Close()

	v, err := LatestPayloadVersion(srv.URL, false)
	require.NoError(t, err)
	require.Equal(t, "1.1.0", v)

	v, err = LatestPayloadVersion(srv.URL, true)
	require.NoError(t, err)
	require.Equal(t, "1.2.0-rc.1", v)
}

func TestPayloadURL(t *testing.T) {
	require.Equal(t, "https://x/payload/frognet-1.0.0.tar.gz", PayloadURL("https://x/", "v1.0.0"))
}
