// Package allanime implements the AllAnime provider client over its GraphQL API.
package allanime

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anisan-cli/aniserve/constant"
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/network"
	"github.com/spf13/viper"
)

const (
	apiURL  = "https://api.allanime.day/api"
	baseURL = "https://allanime.day"
	referer = "https://allmanga.to"
)

// Allanime is the GraphQL client for the AllAnime provider.
type Allanime struct {
	client *http.Client
	api    string
	base   string
}

// New constructs the provider client. TLS behavior follows the
// provider.tls_fingerprint and provider.insecure_tls configuration keys;
// certificate verification stays enabled unless explicitly opted out.
func New() *Allanime {
	insecure := viper.GetBool(key.ProviderInsecureTLS)

	var client *http.Client
	switch {
	case viper.GetBool(key.ProviderTLSFingerprint):
		client = network.FingerprintClient(network.FingerprintOptions{InsecureSkipVerify: insecure})
	case insecure:
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		client = &http.Client{Timeout: network.Client.Timeout, Transport: t}
	default:
		client = network.Client
	}

	return &Allanime{client: client, api: apiURL, base: baseURL}
}

// Name returns the display name of the provider.
func (a *Allanime) Name() string {
	return "AllAnime"
}

// ID returns the unique identifier of the source.
func (a *Allanime) ID() string {
	return "allanime"
}

// gql executes a GraphQL query against the provider API and decodes the JSON response into out.
func (a *Allanime) gql(ctx context.Context, query string, variables map[string]any, out any) error {
	body := map[string]any{
		"query":     query,
		"variables": variables,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.api, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create graphql request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Referer", referer)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("allanime request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("allanime returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode allanime response: %w", err)
	}

	return nil
}

// get fetches an absolute or provider-relative URL and decodes the JSON response into out.
func (a *Allanime) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Referer", referer)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("allanime request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("allanime returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode allanime response: %w", err)
	}

	return nil
}
