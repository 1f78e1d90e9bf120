package pve

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	authCookieName = "PVEAuthCookie"
	csrfHeaderName = "CSRFPreventionToken"
)

// Ticket holds the two credential artifacts issued by /access/ticket. The
// cookie authenticates every subsequent request; the CSRF token is
// additionally required on state-changing calls. Neither is persisted.
type Ticket struct {
	Cookie    string
	CSRFToken string
}

// Resource is one entry of the cluster resource inventory. The inventory
// mixes guests with nodes, storage and pools; Type tells them apart.
type Resource struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	Node string `json:"node"`
}

// SpiceConfig carries the connection parameters issued by the spiceproxy
// endpoint. The password is single-use and expires quickly.
type SpiceConfig struct {
	Title       string
	Host        string
	CA          string
	TLSPort     string
	Password    string
	Proxy       string
	HostSubject string
}

// Client handles Proxmox VE API interactions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	ticket *Ticket
}

// NewClient creates a new PVE API client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, insecure bool) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: NewHTTPClient(timeout, insecure),
	}
}

// NewHTTPClient returns an HTTP client for talking to a PVE cluster.
// Proxmox nodes frequently run self-signed certificates, so verification
// can be switched off explicitly.
func NewHTTPClient(timeout time.Duration, insecure bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // skipcq: GSC-G402
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// APIBaseURL builds the JSON API root for a cluster host and port.
func APIBaseURL(host, port string) string {
	return fmt.Sprintf("https://%s:%s/api2/json", host, port)
}

// Login exchanges the username and password for a session ticket. The
// ticket is retained on the client and attached to every later call.
func (c *Client) Login(ctx context.Context, username, password string) (*Ticket, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/access/ticket", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &AuthError{StatusCode: resp.StatusCode}
	}

	var result struct {
		Data struct {
			Ticket    string `json:"ticket"`
			CSRFToken string `json:"CSRFPreventionToken"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode ticket response: %w", err)
	}
	if result.Data.Ticket == "" {
		return nil, fmt.Errorf("malformed ticket response: missing data.ticket")
	}
	if result.Data.CSRFToken == "" {
		return nil, fmt.Errorf("malformed ticket response: missing data.CSRFPreventionToken")
	}

	c.ticket = &Ticket{Cookie: result.Data.Ticket, CSRFToken: result.Data.CSRFToken}
	return c.ticket, nil
}

// ClusterResources fetches the full cluster resource inventory.
func (c *Client) ClusterResources(ctx context.Context) ([]Resource, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/cluster/resources", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.authenticate(req, false)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to list cluster resources: PVE returned HTTP %d", resp.StatusCode)
	}

	var result struct {
		Data []Resource `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode resource inventory: %w", err)
	}

	return result.Data, nil
}

// SpiceProxy requests remote-display credentials for a located guest. All
// fields of the response are required; a missing one means the cluster
// sent a malformed payload and the run must not proceed with defaults.
func (c *Client) SpiceProxy(ctx context.Context, node, kind, id string) (*SpiceConfig, error) {
	url := fmt.Sprintf("%s/nodes/%s/%s/%s/spiceproxy", c.BaseURL, node, kind, id)

	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.authenticate(req, true)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProxyError{StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var result struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode spiceproxy response: %w", err)
	}
	if result.Data == nil {
		return nil, fmt.Errorf("malformed spiceproxy response: missing data")
	}

	cfg := &SpiceConfig{}
	for _, field := range []struct {
		key string
		dst *string
	}{
		{"title", &cfg.Title},
		{"host", &cfg.Host},
		{"ca", &cfg.CA},
		{"tls-port", &cfg.TLSPort},
		{"password", &cfg.Password},
		{"proxy", &cfg.Proxy},
		{"host-subject", &cfg.HostSubject},
	} {
		value, err := stringField(result.Data, field.key)
		if err != nil {
			return nil, err
		}
		*field.dst = value
	}

	return cfg, nil
}

// authenticate attaches the session cookie, and the CSRF prevention header
// for state-changing requests.
func (c *Client) authenticate(req *http.Request, csrf bool) {
	if c.ticket == nil {
		return
	}
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: c.ticket.Cookie})
	if csrf {
		req.Header.Set(csrfHeaderName, c.ticket.CSRFToken)
	}
}

// stringField extracts a required field from an API payload. The live API
// returns tls-port as a JSON number; everything else comes as a string.
func stringField(data map[string]interface{}, key string) (string, error) {
	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("malformed spiceproxy response: missing %q", key)
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("malformed spiceproxy response: unexpected type for %q", key)
	}
}
