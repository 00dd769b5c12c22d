package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"solana-money-mover/config"
	"solana-money-mover/internal/core/ports"

	"github.com/rs/zerolog"
)

// Lamports per SOL.
const lamportsPerSOL = 1_000_000_000

// tokenProgramID is the SPL token program owning all standard token accounts.
const tokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SolanaClient implements ports.ChainQuery against a Solana JSON-RPC node.
type SolanaClient struct {
	rpcURL     string
	commitment string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewSolanaClient creates a new SolanaClient.
func NewSolanaClient(cfg config.SolanaConfig, httpClient HTTPClient, log zerolog.Logger) *SolanaClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &SolanaClient{
		rpcURL:     cfg.RPCURL,
		commitment: cfg.Commitment,
		httpClient: httpClient,
		log:        log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC request and unmarshals result into out.
func (c *SolanaClient) call(ctx context.Context, method string, params []any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", method, resp.StatusCode, raw)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}

	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("unmarshal %s result: %w", method, err)
	}
	return nil
}

// GetNativeBalance returns the owner's SOL balance in whole SOL.
func (c *SolanaClient) GetNativeBalance(ctx context.Context, address string) (float64, error) {
	var result struct {
		Value uint64 `json:"value"`
	}
	params := []any{address, map[string]string{"commitment": c.commitment}}
	if err := c.call(ctx, "getBalance", params, &result); err != nil {
		return 0, err
	}
	return float64(result.Value) / lamportsPerSOL, nil
}

// GetTokenAccountsByOwner response shape (jsonParsed encoding), trimmed to
// the fields we read.
type tokenAccountsResult struct {
	Value []struct {
		Pubkey  string `json:"pubkey"`
		Account struct {
			Data struct {
				Parsed struct {
					Info struct {
						Mint string `json:"mint"`
					} `json:"info"`
				} `json:"parsed"`
			} `json:"data"`
		} `json:"account"`
	} `json:"value"`
}

// ListTokenAccounts enumerates the owner's SPL token accounts.
func (c *SolanaClient) ListTokenAccounts(ctx context.Context, owner string) ([]ports.TokenAccount, error) {
	var result tokenAccountsResult
	params := []any{
		owner,
		map[string]string{"programId": tokenProgramID},
		map[string]string{"encoding": "jsonParsed", "commitment": c.commitment},
	}
	if err := c.call(ctx, "getTokenAccountsByOwner", params, &result); err != nil {
		return nil, err
	}

	accounts := make([]ports.TokenAccount, 0, len(result.Value))
	for _, v := range result.Value {
		accounts = append(accounts, ports.TokenAccount{
			Address: v.Pubkey,
			Mint:    v.Account.Data.Parsed.Info.Mint,
		})
	}
	return accounts, nil
}

// GetTokenAccountBalance reads the balance of a single token account.
func (c *SolanaClient) GetTokenAccountBalance(ctx context.Context, account string) (*ports.TokenBalance, error) {
	var result struct {
		Value struct {
			Amount   string `json:"amount"`
			Decimals uint8  `json:"decimals"`
		} `json:"value"`
	}
	params := []any{account, map[string]string{"commitment": c.commitment}}
	if err := c.call(ctx, "getTokenAccountBalance", params, &result); err != nil {
		return nil, err
	}

	raw, err := strconv.ParseUint(result.Value.Amount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse token amount %q: %w", result.Value.Amount, err)
	}

	return &ports.TokenBalance{
		RawAmount: raw,
		Decimals:  result.Value.Decimals,
	}, nil
}
