// Package rightmove is the fetch collaborator: a thin client for the
// Rightmove search API that returns parsed candidates and nothing else.
package rightmove

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/thatguydan86/rentradar/pkg/areas"
	"github.com/thatguydan86/rentradar/pkg/engine"
)

const (
	baseURL    = "https://www.rightmove.co.uk"
	searchPath = "/api/_search"
	userAgent  = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
)

const defaultPageSize = 24

// Client fetches rental candidates for an area.
type Client struct {
	http *retryablehttp.Client
	base string

	// PageSize caps how many results one search returns. Zero means the
	// default.
	PageSize int
}

// NewClient builds a retrying HTTP client. proxy may be empty.
func NewClient(proxy string) (*Client, error) {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = log.New(io.Discard, "", 0)

	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", proxy, err)
		}
		rc.HTTPClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	return &Client{http: rc, base: baseURL}, nil
}

// Fetch runs one search for the area and returns its candidates in API
// order. A non-success status is an error; the caller treats a failed area
// as yielding zero candidates for the cycle.
func (c *Client) Fetch(ctx context.Context, cfg areas.Config) ([]engine.RawCandidate, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	q := url.Values{}
	q.Set("locationIdentifier", cfg.Location)
	q.Set("numberOfPropertiesPerPage", strconv.Itoa(pageSize))
	q.Set("radius", "0.0")
	q.Set("index", "0")
	q.Set("channel", "RENT")
	q.Set("currencyCode", "GBP")
	q.Set("includeSSTC", "false")
	q.Set("sortType", "6")
	q.Set("viewType", "LIST")
	q.Set("minBedrooms", strconv.Itoa(cfg.MinBedrooms))
	q.Set("maxBedrooms", strconv.Itoa(cfg.MaxBedrooms))
	q.Set("maxPrice", strconv.Itoa(cfg.MaxPrice))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.base+searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request for %s: %w", cfg.Location, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search for %s: unexpected status %d", cfg.Location, res.StatusCode)
	}

	return ParseSearchBody(string(body)), nil
}

// ParseSearchBody walks the search response and builds candidates. Records
// without an id cannot be tracked across cycles and are dropped here.
func ParseSearchBody(body string) []engine.RawCandidate {
	var out []engine.RawCandidate
	gjson.Get(body, "properties").ForEach(func(_, prop gjson.Result) bool {
		id := prop.Get("id").String()
		if id == "" {
			return true
		}
		c := engine.RawCandidate{
			ID:       id,
			Category: prop.Get("propertySubType").String(),
			Address:  prop.Get("displayAddress").String(),
			Summary:  prop.Get("summary").String(),
			Title:    prop.Get("propertyTitle").String(),
		}
		// null and absent both mean unknown upstream
		if v := prop.Get("bedrooms"); v.Exists() && v.Type != gjson.Null {
			n := int(v.Int())
			c.Bedrooms = &n
		}
		if v := prop.Get("bathrooms"); v.Exists() && v.Type != gjson.Null {
			n := int(v.Int())
			c.Bathrooms = &n
		}
		if v := prop.Get("price.amount"); v.Exists() && v.Type != gjson.Null {
			n := int(v.Int())
			c.RentPCM = &n
		}
		if path := prop.Get("propertyUrl").String(); path != "" {
			c.URL = baseURL + path
		}
		out = append(out, c)
		return true
	})
	return out
}
