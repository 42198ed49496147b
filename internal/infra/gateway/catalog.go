package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/heroboard/heroboard/internal/domain"
)

const defaultTimeout = 3 * time.Second

// CatalogGateway resolves hero IDs to display names against the external
// hero catalog. Names change rarely, so responses are cached in-process.
type CatalogGateway struct {
	client   *http.Client
	cache    *cache.Cache
	endpoint string
}

func NewCatalogGateway(endpoint string) *CatalogGateway {
	return &CatalogGateway{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		cache:    cache.New(10*time.Minute, 15*time.Minute),
		endpoint: endpoint,
	}
}

type heroResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (g *CatalogGateway) ResolveName(ctx context.Context, heroID int64) (string, error) {

	key := strconv.FormatInt(heroID, 10)
	if cached, ok := g.cache.Get(key); ok {
		return cached.(string), nil
	}

	url := g.endpoint + "/heroes/" + key
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", domain.NotFoundError{Resource: "hero"}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var hero heroResponse
	if err := json.NewDecoder(resp.Body).Decode(&hero); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}
	if hero.Name == "" {
		return "", domain.NotFoundError{Resource: "hero"}
	}

	g.cache.Set(key, hero.Name, cache.DefaultExpiration)

	return hero.Name, nil
}
