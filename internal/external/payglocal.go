package external

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"
)

type PayGlocalConfig struct {
	BaseURL    string
	MerchantID string
	APISecret  string
	Timeout    time.Duration
}

// PayGlocalClient signs every request with a SHA-256 token over the
// alphabetically sorted request parameters plus the merchant secret.
type PayGlocalClient struct {
	baseURL    string
	merchantID string
	apiSecret  string
	httpClient *http.Client
}

type payGlocalInitRequest struct {
	MerchantID string `json:"merchantId"`
	Token      string `json:"token"`
	Amount     string `json:"amount"`
	OrderID    string `json:"orderId"`
	Currency   string `json:"currency"`
}

type payGlocalInitResponse struct {
	Success     bool   `json:"success"`
	GID         string `json:"gid"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	RedirectURL string `json:"redirectUrl"`
}

func NewPayGlocalClient(cfg PayGlocalConfig) *PayGlocalClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &PayGlocalClient{
		baseURL:    cfg.BaseURL,
		merchantID: cfg.MerchantID,
		apiSecret:  cfg.APISecret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (pc *PayGlocalClient) Name() string {
	return "payglocal"
}

func (pc *PayGlocalClient) generateToken(params map[string]string) string {
	params["MerchantId"] = pc.merchantID
	params["Secret"] = pc.apiSecret

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tokenString string
	for _, key := range keys {
		tokenString += params[key]
	}

	hash := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(hash[:])
}

func (pc *PayGlocalClient) CreateOrder(ctx context.Context, amount float64, receipt string) (*GatewayOrder, error) {
	amountStr := strconv.FormatFloat(amount, 'f', 2, 64)

	params := map[string]string{
		"Amount":   amountStr,
		"Currency": "INR",
		"OrderId":  receipt,
	}
	token := pc.generateToken(params)

	reqBody := payGlocalInitRequest{
		MerchantID: pc.merchantID,
		Token:      token,
		Amount:     amountStr,
		OrderID:    receipt,
		Currency:   "INR",
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		pc.baseURL+"/gl/v1/payments/initiate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to init payment: %w", err)
	}
	defer resp.Body.Close()

	var result payGlocalInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Success {
		return nil, fmt.Errorf("payment init failed")
	}

	return &GatewayOrder{
		OrderID:  result.OrderID,
		Amount:   amount,
		Currency: "INR",
		Status:   result.Status,
		ShortURL: result.RedirectURL,
	}, nil
}
