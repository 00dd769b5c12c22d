package chain

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"solana-money-mover/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "4Nd1mYvDpLJ6GVcRzGDTDPsvSN3YtDr6fkz71PZFkGvQ"

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(httpClient HTTPClient) *SolanaClient {
	return NewSolanaClient(config.SolanaConfig{
		RPCURL:     "http://localhost:8899",
		Commitment: "confirmed",
		Timeout:    5 * time.Second,
	}, httpClient, newTestLogger())
}

func decodeRPCRequest(t *testing.T, req *http.Request) rpcRequest {
	t.Helper()
	var body rpcRequest
	require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
	return body
}

func TestGetNativeBalance(t *testing.T) {
	client := newTestClient(&mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			body := decodeRPCRequest(t, req)
			assert.Equal(t, "getBalance", body.Method)
			assert.Equal(t, testOwner, body.Params[0])
			return jsonResponse(200, `{"jsonrpc":"2.0","id":1,"result":{"context":{"slot":1},"value":1500000000}}`), nil
		},
	})

	balance, err := client.GetNativeBalance(context.Background(), testOwner)

	require.NoError(t, err)
	assert.Equal(t, 1.5, balance)
}

func TestGetNativeBalance_RPCError(t *testing.T) {
	client := newTestClient(&mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid param"}}`), nil
		},
	})

	_, err := client.GetNativeBalance(context.Background(), "bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid param")
}

func TestGetNativeBalance_HTTPStatus(t *testing.T) {
	client := newTestClient(&mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(503, `upstream unavailable`), nil
		},
	})

	_, err := client.GetNativeBalance(context.Background(), testOwner)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestListTokenAccounts(t *testing.T) {
	client := newTestClient(&mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			body := decodeRPCRequest(t, req)
			assert.Equal(t, "getTokenAccountsByOwner", body.Method)
			return jsonResponse(200, `{"jsonrpc":"2.0","id":1,"result":{"value":[
				{"pubkey":"acc-1","account":{"data":{"parsed":{"info":{"mint":"MintAAA"}}}}},
				{"pubkey":"acc-2","account":{"data":{"parsed":{"info":{"mint":"MintBBB"}}}}}
			]}}`), nil
		},
	})

	accounts, err := client.ListTokenAccounts(context.Background(), testOwner)

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "acc-1", accounts[0].Address)
	assert.Equal(t, "MintAAA", accounts[0].Mint)
	assert.Equal(t, "MintBBB", accounts[1].Mint)
}

func TestGetTokenAccountBalance(t *testing.T) {
	client := newTestClient(&mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			body := decodeRPCRequest(t, req)
			assert.Equal(t, "getTokenAccountBalance", body.Method)
			return jsonResponse(200, `{"jsonrpc":"2.0","id":1,"result":{"value":{"amount":"12345000","decimals":6,"uiAmount":12.345}}}`), nil
		},
	})

	bal, err := client.GetTokenAccountBalance(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, uint64(12_345_000), bal.RawAmount)
	assert.Equal(t, uint8(6), bal.Decimals)
}

func TestGetTokenAccountBalance_MalformedAmount(t *testing.T) {
	client := newTestClient(&mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"jsonrpc":"2.0","id":1,"result":{"value":{"amount":"not-a-number","decimals":6}}}`), nil
		},
	})

	_, err := client.GetTokenAccountBalance(context.Background(), "acc-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse token amount")
}
