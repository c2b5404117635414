package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/oneinch"
)

func TestSendJSONResponse_SetsHeaders(t *testing.T) {
	s := &Server{}
	recorder := httptest.NewRecorder()

	s.sendJSONResponse(recorder, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.NotEmpty(t, recorder.Header().Get("ETag"))
	assert.NotEmpty(t, recorder.Header().Get("Content-Length"))
	assert.JSONEq(t, `{"hello":"world"}`, recorder.Body.String())
}

func TestSendJSONResponse_ETagStableForSameBody(t *testing.T) {
	s := &Server{}

	first := httptest.NewRecorder()
	s.sendJSONResponse(first, map[string]int{"n": 1})
	second := httptest.NewRecorder()
	s.sendJSONResponse(second, map[string]int{"n": 1})

	assert.Equal(t, first.Header().Get("ETag"), second.Header().Get("ETag"))
}

func TestSetCacheStatusHeader(t *testing.T) {
	s := &Server{}
	recorder := httptest.NewRecorder()

	s.setCacheStatusHeader(recorder, interfaces.CacheStatusPartial)
	assert.Equal(t, "partial", recorder.Header().Get("Cache-Status"))
}

func TestSendUpstreamError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unauthorized", oneinch.ErrUnauthorized, http.StatusUnauthorized},
		{"rate limited", oneinch.ErrRateLimited, http.StatusTooManyRequests},
		{"generic upstream", &oneinch.UpstreamError{StatusCode: 502, Body: "bad gateway"}, http.StatusInternalServerError},
	}

	s := &Server{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			s.sendUpstreamError(recorder, tt.err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestParseChainIDList(t *testing.T) {
	chainIDs, err := parseChainIDList("")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, chainIDs)

	chainIDs, err = parseChainIDList("1, 137,8453")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 137, 8453}, chainIDs)

	_, err = parseChainIDList("1,999999")
	assert.ErrorContains(t, err, "unsupported")

	_, err = parseChainIDList("abc")
	assert.Error(t, err)
}

func TestParseBlockNumber(t *testing.T) {
	number, err := parseBlockNumber("19000000")
	require.NoError(t, err)
	assert.Equal(t, "19000000", number)

	_, err = parseBlockNumber("-5")
	assert.Error(t, err)
	_, err = parseBlockNumber("latest")
	assert.Error(t, err)
}

func TestSupportedChainList_SortedById(t *testing.T) {
	chains := supportedChainList()
	require.NotEmpty(t, chains)

	assert.Equal(t, 1, chains[0]["chainId"])
	assert.Equal(t, "ethereum", chains[0]["name"])
	for i := 1; i < len(chains); i++ {
		assert.Less(t, chains[i-1]["chainId"].(int), chains[i]["chainId"].(int))
	}
}
