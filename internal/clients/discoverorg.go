package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsclients "github.com/prospectr-app/prospectr/internal/core/ports/clients"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

// orgSearchRequestsPerSecond stays under the partner API's documented
// throughput cap.
const orgSearchRequestsPerSecond = 2

// DiscoverOrgClient implements portsclients.OrgSearchClient against the
// DiscoverOrg partner API. A session token is obtained at construction and
// sent on every call; expiry is not tracked, matching the short-lived job
// processes that use it.
type DiscoverOrgClient struct {
	httpClient *http.Client
	baseURL    string
	partnerKey string
	session    string
}

var _ portsclients.OrgSearchClient = (*DiscoverOrgClient)(nil)

// NewDiscoverOrgClient logs in and returns a client holding the session
// token.
func NewDiscoverOrgClient(ctx context.Context, cfg *config.Config) (*DiscoverOrgClient, error) {
	c := &DiscoverOrgClient{
		httpClient: newThrottledClient(orgSearchRequestsPerSecond, orgSearchRequestsPerSecond),
		baseURL:    strings.TrimRight(cfg.OrgSearchBaseURL, "/"),
		partnerKey: cfg.OrgSearchPartnerKey,
	}

	session, err := c.login(ctx, cfg.OrgSearchUsername, cfg.OrgSearchPassword)
	if err != nil {
		return nil, err
	}
	c.session = session
	return c, nil
}

// login exchanges credentials for a session token carried in the
// X-AUTH-TOKEN response header.
func (c *DiscoverOrgClient) login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username":   username,
		"password":   password,
		"partnerKey": c.partnerKey,
	})
	if err != nil {
		return "", fmt.Errorf("discoverorg: encode login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("discoverorg: login: %w", err)
	}
	body := drainBody(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", statusError("discoverorg", resp, body)
	}

	session := resp.Header.Get("X-AUTH-TOKEN")
	if session == "" {
		return "", fmt.Errorf("discoverorg: login response missing X-AUTH-TOKEN header")
	}
	return session, nil
}

type doPersonRecord struct {
	ID              json.Number `json:"id"`
	FullName        string      `json:"fullName"`
	Title           string      `json:"title"`
	OfficeTelNumber string      `json:"officeTelNumber"`
	MobileTelNumber string      `json:"mobileTelNumber"`
	Email           string      `json:"email"`
}

// SearchContacts finds people whose company website matches the account's
// domain.
func (c *DiscoverOrgClient) SearchContacts(ctx context.Context, account domain.Account) ([]domain.Contact, error) {
	payload, err := json.Marshal(map[string]any{
		"companyCriteria": map[string]any{
			"websiteUrls": []string{account.Domain},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("discoverorg: encode search: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/search/persons", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discoverorg: search persons: %w", err)
	}
	body := drainBody(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("discoverorg", resp, body)
	}

	var result struct {
		Content []doPersonRecord `json:"content"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("discoverorg: decode search result: %w", err)
	}

	contacts := make([]domain.Contact, 0, len(result.Content))
	for _, r := range result.Content {
		// The search matches on company website, which still surfaces
		// contractors and stale records. Only people whose email lives on
		// the account's own domain are kept.
		if !emailMatchesDomain(r.Email, account.Domain) {
			continue
		}
		// Provider discoveries start at the front of the review pipeline.
		contacts = append(contacts, domain.Contact{
			DOID:   r.ID.String(),
			CType:  domain.ContactTypeNew,
			Status: domain.ContactStatusEnrich,
			Name:   r.FullName,
			Title:  r.Title,
			Direct: r.OfficeTelNumber,
			Mobile: r.MobileTelNumber,
			Email:  r.Email,
		})
	}
	return contacts, nil
}

// OrgChart returns the serialized node list of a company's org chart.
func (c *DiscoverOrgClient) OrgChart(ctx context.Context, doid string, depth int) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/companies/%s/orgchart/%d", c.baseURL, doid, depth)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("discoverorg: org chart: %w", err)
	}
	body := drainBody(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", statusError("discoverorg", resp, body)
	}

	var result struct {
		Nodes json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("discoverorg: decode org chart: %w", err)
	}
	if len(result.Nodes) == 0 || string(result.Nodes) == "null" {
		return "", nil
	}
	return string(result.Nodes), nil
}

// emailMatchesDomain reports whether the address's domain equals the
// account's website host.
func emailMatchesDomain(email, website string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return strings.EqualFold(email[at+1:], hostFromWebsite(website))
}

// hostFromWebsite reduces a website value to its bare host: scheme, "www."
// prefix, path, query and port are stripped.
func hostFromWebsite(website string) string {
	host := website
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, "/?:"); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}

func (c *DiscoverOrgClient) setHeaders(req *http.Request) {
	req.Header.Set("X-PARTNER-KEY", c.partnerKey)
	req.Header.Set("X-AUTH-TOKEN", c.session)
	req.Header.Set("Accept", "application/json")
}
