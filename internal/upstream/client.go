package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/internal/repository"
)

// カタログAPIのHTTPクライアント。repository.CatalogRepositoryの実装。
type Client struct {
	baseURL string
	http    *http.Client
}

// DI
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type listResponse struct {
	Products []repository.CatalogProduct `json:"products"`
	Total    int64                       `json:"total"`
	Skip     int                         `json:"skip"`
	Limit    int                         `json:"limit"`
}

// カテゴリはslug文字列だけの配列と{slug,name,url}配列の両方が返りうる
type categoryJSON struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (c *categoryJSON) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var slug string
		if err := json.Unmarshal(data, &slug); err != nil {
			return err
		}
		*c = categoryJSON{Slug: slug, Name: slug}
		return nil
	}
	type plain categoryJSON
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = categoryJSON(p)
	return nil
}

func (c *Client) List(ctx context.Context, q repository.CatalogQuery) (repository.CatalogPage, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		params.Set("skip", strconv.Itoa(q.Skip))
	}

	path := "/products"
	switch {
	case q.Search != "":
		path = "/products/search"
		params.Set("q", q.Search)
	case q.CategorySlug != "":
		path = "/products/category/" + url.PathEscape(q.CategorySlug)
	}

	var res listResponse
	if err := c.getJSON(ctx, path, params, &res); err != nil {
		return repository.CatalogPage{}, err
	}
	return repository.CatalogPage{
		Products: res.Products,
		Total:    res.Total,
		Skip:     res.Skip,
		Limit:    res.Limit,
	}, nil
}

func (c *Client) FindByID(ctx context.Context, id int64) (repository.CatalogProduct, error) {
	var p repository.CatalogProduct
	err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), nil, &p)
	if err != nil {
		return repository.CatalogProduct{}, err
	}
	return p, nil
}

func (c *Client) Categories(ctx context.Context) ([]repository.CatalogCategory, error) {
	var raw []categoryJSON
	if err := c.getJSON(ctx, "/products/categories", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]repository.CatalogCategory, 0, len(raw))
	for _, r := range raw {
		name := r.Name
		if name == "" {
			name = r.Slug
		}
		out = append(out, repository.CatalogCategory{Slug: r.Slug, Name: name, URL: r.URL})
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dst any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return repository.ErrNotFound
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request %s: unexpected status %d", path, res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(dst)
}
