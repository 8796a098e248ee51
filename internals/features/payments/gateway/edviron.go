package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"schoolpay_backend/internals/configs"
)

/* =======================================================================
   Edviron collect API client
   - create-collect-request and collect-request status, both carrying a
     short-lived HS256 token signed with the PG key.
======================================================================= */

type EdvironClient struct {
	BaseURL string
	PGKey   string
	APIKey  string
	HTTP    *http.Client
}

func NewEdvironClient(cfg *configs.Config) *EdvironClient {
	return &EdvironClient{
		BaseURL: cfg.PGBaseURL,
		PGKey:   cfg.PGKey,
		APIKey:  cfg.PGAPIKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (gc *EdvironClient) CreateCollectRequest(ctx context.Context, in CreateCollectInput) (*CreateCollectResult, error) {
	amount := strconv.FormatFloat(in.Amount, 'f', -1, 64)

	sign, err := gc.signToken(jwt.MapClaims{
		"school_id":    in.SchoolID,
		"amount":       amount,
		"callback_url": in.CallbackURL,
	})
	if err != nil {
		return nil, &GatewayError{Op: "create-collect-request", Err: err}
	}

	body, _ := json.Marshal(map[string]string{
		"school_id":    in.SchoolID,
		"amount":       amount,
		"callback_url": in.CallbackURL,
		"sign":         sign,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		gc.BaseURL+"/erp/create-collect-request", bytes.NewReader(body))
	if err != nil {
		return nil, &GatewayError{Op: "create-collect-request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+gc.APIKey)
	req.Header.Set("Content-Type", "application/json")

	var out CreateCollectResult
	if err := gc.do(req, "create-collect-request", &out); err != nil {
		return nil, err
	}
	if out.CollectRequestURL == "" {
		out.CollectRequestURL = fmt.Sprintf("%s/payment/%s", gc.BaseURL, out.CollectRequestID)
	}
	return &out, nil
}

func (gc *EdvironClient) PollStatus(ctx context.Context, collectRequestID, schoolID string) (*StatusResult, error) {
	sign, err := gc.signToken(jwt.MapClaims{
		"school_id":          schoolID,
		"collect_request_id": collectRequestID,
	})
	if err != nil {
		return nil, &GatewayError{Op: "collect-request-status", Err: err}
	}

	q := url.Values{}
	q.Set("school_id", schoolID)
	q.Set("sign", sign)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/erp/collect-request/%s?%s", gc.BaseURL, url.PathEscape(collectRequestID), q.Encode()), nil)
	if err != nil {
		return nil, &GatewayError{Op: "collect-request-status", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+gc.APIKey)
	req.Header.Set("Content-Type", "application/json")

	var out StatusResult
	if err := gc.do(req, "collect-request-status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

/* =======================================================================
   Internals
======================================================================= */

func (gc *EdvironClient) signToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(1 * time.Hour).Unix()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(gc.PGKey))
}

func (gc *EdvironClient) do(req *http.Request, op string, out interface{}) error {
	resp, err := gc.HTTP.Do(req)
	if err != nil {
		return &GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &GatewayError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(raw, resp.StatusCode),
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &GatewayError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// upstreamMessage digs the human-readable message out of an error body.
func upstreamMessage(raw []byte, code int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("unexpected status %d", code)
}
