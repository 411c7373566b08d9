package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/svillors/star-burger/geo"
)

// ErrNoResults is returned when the service finds no match for an
// address. Common for malformed or misspelled addresses.
var ErrNoResults = errors.New("geocoder: no results for address")

const defaultBaseURL = "https://geocode-maps.yandex.ru/1.x"

// YandexGeocoder resolves free-text addresses through the Yandex
// geocoding HTTP API.
type YandexGeocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewYandexGeocoder creates a geocoder with the credential fixed at
// construction time.
func NewYandexGeocoder(apiKey string) *YandexGeocoder {
	return &YandexGeocoder{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode resolves the address to a coordinate pair, taking the most
// relevant (first) feature of the response.
func (g *YandexGeocoder) Geocode(ctx context.Context, address string) (geo.Point, error) {
	params := url.Values{}
	params.Set("geocode", address)
	params.Set("apikey", g.apiKey)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("building geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocoding request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Point{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var decoded yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return geo.Point{}, fmt.Errorf("decoding response: %w", err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return geo.Point{}, ErrNoResults
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos parses the space-separated "longitude latitude" pair Yandex
// returns.
func parsePos(pos string) (geo.Point, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return geo.Point{}, fmt.Errorf("malformed point %q", pos)
	}

	lng, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("malformed longitude in %q: %w", pos, err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("malformed latitude in %q: %w", pos, err)
	}

	return geo.Point{Lat: lat, Lng: lng}, nil
}
