package kric

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/moduro/moduro/pkg/redis_client"
	"github.com/moduro/moduro/pkg/stations"
	"github.com/moduro/moduro/pkg/transit"
	"github.com/moduro/moduro/pkg/util"
	"github.com/rs/zerolog/log"
)

const defaultEndpoint = "https://openapi.kric.go.kr/openapi/handicapped"

// Station movement data is effectively static, keep provider responses for a day
const responseCacheExpiry = 24 * time.Hour

var ErrUpstream = errors.New("accessibility data provider failure")

// Gateway fetches accessibility movement records from the rail accessibility
// data provider. Failures are non-fatal to callers: the annotation pipeline
// treats them as an empty result.
type Gateway struct {
	Endpoint   string
	ServiceKey string

	Stations   *stations.Registry
	HTTPClient *http.Client

	responseCache *cache.Cache[string]
}

func NewGateway(stationRegistry *stations.Registry) *Gateway {
	env := util.GetEnvironmentVariables()

	gateway := &Gateway{
		Endpoint:   defaultEndpoint,
		ServiceKey: env["MODURO_KRIC_API_KEY"],
		Stations:   stationRegistry,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	if redis_client.Client != nil {
		redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(responseCacheExpiry))
		gateway.responseCache = cache.New[string](redisStore)
	}

	return gateway
}

// FetchInStationMovement returns the in-station movement records for a single
// station. An empty list means the provider has no data for the station.
func (g *Gateway) FetchInStationMovement(ctx context.Context, stationName string, lineCode string) ([]transit.MovementRecord, error) {
	station, err := g.Stations.Resolve(stationName, lineCode)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lnCd", station.LineCode)
	params.Set("railOprIsttCd", station.RailOperatorCode)
	params.Set("stinCd", station.StationCode)

	return g.fetchMovements(ctx, "stationMovement", params)
}

// FetchTransferMovement returns the transfer movement records between two
// lines at a transfer station. Both stations are resolved so that an unknown
// boundary surfaces before the provider is called.
func (g *Gateway) FetchTransferMovement(ctx context.Context, fromStationName string, fromLineCode string, toStationName string, toLineCode string) ([]transit.MovementRecord, error) {
	fromStation, err := g.Stations.Resolve(fromStationName, fromLineCode)
	if err != nil {
		return nil, err
	}

	toStation, err := g.Stations.Resolve(toStationName, toLineCode)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("railOprIsttCd", fromStation.RailOperatorCode)
	params.Set("lnCd", fromStation.LineCode)
	params.Set("stinCd", fromStation.StationCode)
	params.Set("chthTgtLn", toStation.LineCode)

	return g.fetchMovements(ctx, "transferMovement", params)
}

type movementResponse struct {
	Body []transit.MovementRecord `json:"body"`
}

func (g *Gateway) fetchMovements(ctx context.Context, operation string, params url.Values) ([]transit.MovementRecord, error) {
	cacheKey := fmt.Sprintf("kric/%s?%s", operation, params.Encode())

	jsonBody, err := g.cachedResponse(ctx, cacheKey)
	if err != nil {
		params.Set("serviceKey", g.ServiceKey)
		requestURL := fmt.Sprintf("%s/%s?%s", g.Endpoint, operation, params.Encode())

		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := g.HTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: provider returned status %d", ErrUpstream, resp.StatusCode)
		}

		jsonBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
		}

		jsonBody = string(jsonBytes)

		g.storeResponse(ctx, cacheKey, jsonBody)
	}

	var response movementResponse
	if err := json.Unmarshal([]byte(jsonBody), &response); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	return response.Body, nil
}

func (g *Gateway) cachedResponse(ctx context.Context, cacheKey string) (string, error) {
	if g.responseCache == nil {
		return "", errors.New("no cache configured")
	}

	return g.responseCache.Get(ctx, cacheKey)
}

func (g *Gateway) storeResponse(ctx context.Context, cacheKey string, jsonBody string) {
	if g.responseCache == nil {
		return
	}

	if err := g.responseCache.Set(ctx, cacheKey, jsonBody); err != nil {
		log.Debug().Err(err).Str("key", cacheKey).Msg("Failed to cache accessibility response")
	}
}
