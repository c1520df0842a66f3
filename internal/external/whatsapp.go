package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nyaruka/phonenumbers"
)

type WhatsAppConfig struct {
	BaseURL     string
	PhoneID     string
	AccessToken string
	Region      string
	Timeout     time.Duration
}

// WhatsAppClient sends pre-approved template messages through the
// Cloud API. Phone numbers are normalized to E.164 before dispatch.
type WhatsAppClient struct {
	baseURL     string
	phoneID     string
	accessToken string
	region      string
	httpClient  *http.Client
}

type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

type templateMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Template         templateBody `json:"template"`
}

type templateBody struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []templateComponent `json:"components,omitempty"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

type templateComponent struct {
	Type       string              `json:"type"`
	Parameters []templateParameter `json:"parameters"`
}

type templateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewWhatsAppClient(cfg WhatsAppConfig) *WhatsAppClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://graph.facebook.com/v19.0"
	}
	if cfg.Region == "" {
		cfg.Region = "IN"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &WhatsAppClient{
		baseURL:     cfg.BaseURL,
		phoneID:     cfg.PhoneID,
		accessToken: cfg.AccessToken,
		region:      cfg.Region,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// NormalizePhone parses a raw phone string against the configured
// default region and returns it in E.164 without the leading plus.
func (wc *WhatsAppClient) NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, wc.region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164)[1:], nil
}

// SendTemplate delivers one template message. An unparseable phone
// number fails the send without calling the API.
func (wc *WhatsAppClient) SendTemplate(ctx context.Context, phone, template, language string, params []string) *SendResult {
	to, err := wc.NormalizePhone(phone)
	if err != nil {
		return &SendResult{Success: false, Error: err.Error()}
	}

	msg := templateMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: templateBody{
			Name:     template,
			Language: templateLanguage{Code: language},
		},
	}

	if len(params) > 0 {
		component := templateComponent{Type: "body"}
		for _, p := range params {
			component.Parameters = append(component.Parameters,
				templateParameter{Type: "text", Text: p})
		}
		msg.Template.Components = []templateComponent{component}
	}

	jsonBody, err := json.Marshal(msg)
	if err != nil {
		return &SendResult{Success: false, Error: err.Error()}
	}

	url := fmt.Sprintf("%s/%s/messages", wc.baseURL, wc.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return &SendResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+wc.accessToken)

	resp, err := wc.httpClient.Do(req)
	if err != nil {
		return &SendResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &SendResult{Success: false, Error: fmt.Sprintf("failed to decode response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK || len(result.Messages) == 0 {
		errMsg := result.Error.Message
		if errMsg == "" {
			errMsg = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		}
		return &SendResult{Success: false, Error: errMsg}
	}

	return &SendResult{Success: true, MessageID: result.Messages[0].ID}
}
