package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	portsclients "github.com/prospectr-app/prospectr/internal/core/ports/clients"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

// enrichRequestsPerSecond throttles the metered person-lookup API.
const enrichRequestsPerSecond = 1

// LushaClient implements portsclients.EnrichClient against the Lusha person
// API.
type LushaClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ portsclients.EnrichClient = (*LushaClient)(nil)

// NewLushaClient creates the enrichment client.
func NewLushaClient(cfg *config.Config) *LushaClient {
	return &LushaClient{
		httpClient: newThrottledClient(enrichRequestsPerSecond, 1),
		baseURL:    strings.TrimRight(cfg.EnrichBaseURL, "/"),
		apiKey:     cfg.EnrichAPIKey,
	}
}

// Enrich looks up phone numbers and email for a person. Names that cannot be
// split into a first and last part are skipped with a nil result: the
// provider matches on exactly two name parts, so middle names are dropped
// and anything beyond that is cut to the first two.
func (c *LushaClient) Enrich(ctx context.Context, fullName, company string) (*portsclients.EnrichResult, error) {
	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return nil, nil
	}
	first := parts[0]
	last := parts[1]
	if len(parts) == 3 {
		last = parts[2]
	}

	params := url.Values{}
	params.Set("firstName", first)
	params.Set("lastName", last)
	params.Set("company", company)
	params.Set("property", "phoneNumbers")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/person?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lusha: person lookup: %w", err)
	}
	body := drainBody(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("lusha", resp, body)
	}

	var result struct {
		PhoneNumbers []struct {
			LocalizedNumber string `json:"localizedNumber"`
		} `json:"phoneNumbers"`
		EmailAddresses []struct {
			Email string `json:"email"`
		} `json:"emailAddresses"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("lusha: decode person result: %w", err)
	}

	out := &portsclients.EnrichResult{}
	if len(result.PhoneNumbers) > 0 {
		out.Direct = result.PhoneNumbers[0].LocalizedNumber
	}
	if len(result.PhoneNumbers) > 1 {
		out.Mobile = result.PhoneNumbers[1].LocalizedNumber
	}
	if len(result.EmailAddresses) > 0 {
		out.Email = result.EmailAddresses[0].Email
	}
	return out, nil
}
