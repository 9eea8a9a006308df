package tmap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/moduro/moduro/pkg/transit"
	"github.com/moduro/moduro/pkg/util"
	"github.com/rs/zerolog/log"
)

const defaultEndpoint = "https://apis.openapi.sk.com/transit/routes"
const defaultCandidateCount = 3
const maxFetchRetries = 3

var ErrUpstream = errors.New("transit route provider failure")

type Client struct {
	Endpoint string
	AppKey   string

	HTTPClient *http.Client
}

func NewClient() *Client {
	env := util.GetEnvironmentVariables()

	return &Client{
		Endpoint: defaultEndpoint,
		AppKey:   env["MODURO_TMAP_APP_KEY"],
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type routeRequest struct {
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`
	Count  int     `json:"count"`
}

type routeResponse struct {
	MetaData *struct {
		Plan *struct {
			Itineraries []RawItinerary `json:"itineraries"`
		} `json:"plan"`
	} `json:"metaData"`
}

// FetchTransitRoutes asks the routing provider for up to defaultCandidateCount
// itineraries between the two points. Transient failures are retried with
// exponential backoff; a malformed payload (missing itinerary list) is treated
// the same as an unreachable provider.
func (c *Client) FetchTransitRoutes(ctx context.Context, origin *transit.Location, destination *transit.Location) ([]RawItinerary, error) {
	requestBody, err := json.Marshal(routeRequest{
		StartX: origin.Coordinates[0],
		StartY: origin.Coordinates[1],
		EndX:   destination.Coordinates[0],
		EndY:   destination.Coordinates[1],
		Count:  defaultCandidateCount,
	})
	if err != nil {
		return nil, err
	}

	var itineraries []RawItinerary

	retryPolicy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries-1)

	err = backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, bytes.NewReader(requestBody))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("appKey", c.AppKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			log.Warn().Err(err).Msg("Transit route request failed")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("provider returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("provider returned status %d", resp.StatusCode))
		}

		jsonBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var response routeResponse
		if err := json.Unmarshal(jsonBytes, &response); err != nil {
			return backoff.Permanent(err)
		}

		if response.MetaData == nil || response.MetaData.Plan == nil {
			return backoff.Permanent(errors.New("response is missing itinerary plan"))
		}

		itineraries = response.MetaData.Plan.Itineraries

		return nil
	}, backoff.WithContext(retryPolicy, ctx))

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	return itineraries, nil
}
