// Package client calls the daily API and folds every outcome, transport
// failures included, into the same envelope the server answers with.
package client

import (
	"bytes"
	"context"
	"daily/config"
	"daily/shared/constant"
	"daily/shared/envelope"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const maxDrainBytes = 4 << 10

// Request describes one call. Route is relative to the base URL and may carry
// a query string. Parameters, when set, are sent as the JSON body.
type Request struct {
	Route       string
	Method      string
	Parameters  any
	ContentType string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client from the Client config section. A zero timeout leaves
// calls bounded only by the context.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Client.BaseURL, "/") + "/",
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Client.TimeoutSeconds) * time.Second,
		},
	}
}

// Execute never returns an error: a non-2xx answer becomes the server-busy
// envelope and any other failure the request-failed envelope.
func (c *Client) Execute(ctx context.Context, req Request) envelope.Envelope {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return envelope.RequestFailed(err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Str("route", req.Route).Msg("request failed")

		return envelope.RequestFailed(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

		log.Debug().Int("status", resp.StatusCode).Str("route", req.Route).Msg("unexpected status")

		return envelope.ServerBusy()
	}

	var env envelope.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope.RequestFailed(fmt.Errorf("decode response: %w", err))
	}

	return env
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == constant.Empty {
		method = http.MethodGet
	}

	var body io.Reader

	if req.Parameters != nil {
		payload, err := json.Marshal(req.Parameters)
		if err != nil {
			return nil, fmt.Errorf("marshal parameters: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+strings.TrimLeft(req.Route, "/"), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if body != nil {
		contentType := req.ContentType
		if contentType == constant.Empty {
			contentType = constant.ContentTypeJSON
		}

		httpReq.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	return httpReq, nil
}

// Decode converts an envelope's loosely typed ResultData into T.
func Decode[T any](env envelope.Envelope) (T, error) {
	var out T

	raw, err := json.Marshal(env.ResultData)
	if err != nil {
		return out, fmt.Errorf("marshal result data: %w", err)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("unmarshal result data: %w", err)
	}

	return out, nil
}
