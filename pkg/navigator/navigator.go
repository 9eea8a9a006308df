package navigator

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/moduro/moduro/pkg/transit"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const maxEnrichmentFetchers = 8

// AccessibilityGateway is the slice of the accessibility data provider the
// pipeline needs. Both calls return raw, unfiltered movement records.
type AccessibilityGateway interface {
	FetchInStationMovement(ctx context.Context, stationName string, lineCode string) ([]transit.MovementRecord, error)
	FetchTransferMovement(ctx context.Context, fromStationName string, fromLineCode string, toStationName string, toLineCode string) ([]transit.MovementRecord, error)
}

type Navigator struct {
	Accessibility AccessibilityGateway
}

func NewNavigator(accessibility AccessibilityGateway) *Navigator {
	return &Navigator{
		Accessibility: accessibility,
	}
}

// Per-leg enrichment results, written by one fetcher goroutine each and read
// back in leg order once the pool has drained.
type legEnrichment struct {
	Transfer []transit.MovementRecord
	Entering []transit.MovementRecord
	Exiting  []transit.MovementRecord
}

// Annotate walks the legs of a stored itinerary and produces the ordered
// description sequence plus an enriched copy of the itinerary. The persisted
// record is never touched. Accessibility data being unavailable for a leg only
// drops that leg's enrichment entries, never the whole sequence.
func (n *Navigator) Annotate(ctx context.Context, itinerary *transit.Itinerary) (*transit.Itinerary, []transit.DescriptionEntry, error) {
	var enriched transit.Itinerary
	if err := copier.CopyWithOption(&enriched, itinerary, copier.Option{DeepCopy: true}); err != nil {
		return nil, nil, err
	}

	legs := enriched.Legs
	enrichments := make([]legEnrichment, len(legs))

	p := pool.New().WithMaxGoroutines(maxEnrichmentFetchers)
	for index := range legs {
		index := index // per-iteration copy: go directive < 1.22 shares the loop variable
		p.Go(func() {
			enrichments[index] = n.enrichLeg(ctx, legs, index)
		})
	}
	p.Wait()

	var entries []transit.DescriptionEntry

	for index, leg := range legs {
		entries = append(entries, transit.DescriptionEntry{
			Kind: transit.DescriptionKindGeneral,
			Text: leg.GeneralDescription(),
		})

		enrichment := enrichments[index]

		if len(enrichment.Transfer) > 0 {
			leg.TransferInfo = enrichment.Transfer

			for _, record := range enrichment.Transfer {
				entries = append(entries, transit.DescriptionEntry{
					Kind: transit.DescriptionKindTransfer,
					Text: record.Detail,
				})
			}

			continue
		}

		internal := append(enrichment.Entering, enrichment.Exiting...)
		if len(internal) > 0 {
			leg.InternalInfo = internal

			for _, record := range internal {
				entries = append(entries, transit.DescriptionEntry{
					Kind: transit.DescriptionKindInternal,
					Text: record.Detail,
				})
			}
		}
	}

	return &enriched, entries, nil
}

func (n *Navigator) enrichLeg(ctx context.Context, legs []*transit.Leg, index int) legEnrichment {
	leg := legs[index]

	if leg.Mode != transit.TransportModeSubway {
		return legEnrichment{}
	}

	// subway → walk → subway means the walk is an in-station transfer
	// passage; transfer directions take precedence over in-station detail
	if index+2 < len(legs) &&
		legs[index+1].Mode == transit.TransportModeWalk &&
		legs[index+2].Mode == transit.TransportModeSubway {
		transferTarget := legs[index+2]

		records, err := n.Accessibility.FetchTransferMovement(ctx,
			leg.End.Name, leg.LineType,
			transferTarget.End.Name, transferTarget.LineType)
		if err != nil {
			log.Warn().Err(err).
				Int("leg", index).
				Str("station", leg.End.Name).
				Msg("Failed to fetch transfer movement data")
		}

		if canonical := transit.FilterCanonicalMovements(records); len(canonical) > 0 {
			return legEnrichment{Transfer: canonical}
		}
	}

	enrichment := legEnrichment{}

	// Entering the station from a walk
	if index > 0 && legs[index-1].Mode == transit.TransportModeWalk {
		enrichment.Entering = n.fetchInternal(ctx, index, leg.Start.Name, leg.LineType)
	}

	// Leaving the station onto a walk
	if index+1 < len(legs) && legs[index+1].Mode == transit.TransportModeWalk {
		enrichment.Exiting = n.fetchInternal(ctx, index, leg.End.Name, leg.LineType)
	}

	return enrichment
}

func (n *Navigator) fetchInternal(ctx context.Context, index int, stationName string, lineCode string) []transit.MovementRecord {
	records, err := n.Accessibility.FetchInStationMovement(ctx, stationName, lineCode)
	if err != nil {
		log.Warn().Err(err).
			Int("leg", index).
			Str("station", stationName).
			Msg("Failed to fetch in-station movement data")
		return nil
	}

	return transit.FilterCanonicalMovements(records)
}
