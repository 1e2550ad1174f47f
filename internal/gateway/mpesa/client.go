package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"tembea/internal/pkg/config"
	"tembea/internal/pkg/errs"
)

// Gateway initiates STK push checkout requests against the Daraja API.
type Gateway interface {
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResult, error)
}

type STKPushRequest struct {
	Phone            string
	AmountCents      int64
	AccountReference string
	Description      string
}

type STKPushResult struct {
	CheckoutRequestID string
	MerchantRequestID string
	ResponseCode      string
	CustomerMessage   string
}

var ErrGatewayRejected = errs.New("payment gateway rejected the request")

type Client struct {
	cfg        config.MpesaConfig
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg config.MpesaConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// token returns a cached OAuth token, refreshing it one minute before expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	url := c.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "failed to fetch oauth token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", errs.New(fmt.Sprintf("oauth token request returned %d: %s", resp.StatusCode, body))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", errs.Wrap(err, "failed to decode oauth token")
	}

	expiresIn, err := strconv.Atoi(tok.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		expiresIn = 3600
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)

	return c.accessToken, nil
}

type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

func (c *Client) InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp),
	)

	// Daraja expects whole shillings, no cents.
	amount := req.AmountCents / 100
	if req.AmountCents%100 != 0 {
		amount++
	}

	payload := stkPushPayload{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            strconv.FormatInt(amount, 10),
		PartyA:            req.Phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal stk push payload")
	}

	url := c.cfg.BaseURL + "/mpesa/stkpush/v1/processrequest"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build stk push request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "failed to call stk push endpoint")
	}
	defer resp.Body.Close()

	var out stkPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode stk push response")
	}

	if resp.StatusCode != http.StatusOK || out.ResponseCode != "0" {
		msg := out.ResponseDescription
		if out.ErrorMessage != "" {
			msg = out.ErrorMessage
		}
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("stk push rejected (status %d): %s", resp.StatusCode, msg)),
			ErrGatewayRejected,
		)
	}

	return &STKPushResult{
		CheckoutRequestID: out.CheckoutRequestID,
		MerchantRequestID: out.MerchantRequestID,
		ResponseCode:      out.ResponseCode,
		CustomerMessage:   out.CustomerMessage,
	}, nil
}

var _ Gateway = (*Client)(nil)
