package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/moduro/moduro/pkg/narration"
	"github.com/moduro/moduro/pkg/navigator"
	"github.com/moduro/moduro/pkg/routestore"
	"github.com/moduro/moduro/pkg/tmap"
	"github.com/moduro/moduro/pkg/transit"
	"github.com/rs/zerolog/log"
)

type TransitRoutes struct {
	RoutePlanner *tmap.Client
	Store        *routestore.Store
	Navigator    *navigator.Navigator
	Assembler    *narration.Assembler
}

func (t *TransitRoutes) Router(router fiber.Router) {
	router.Post("/transit", t.searchTransitRoutes)
	router.Get("/:routeid/navigation", t.getRouteNavigation)
	router.Get("/:routeid/narration", t.getRouteNarration)
}

// Pointer fields so that absent coordinates are distinguishable from a
// legitimate 0 degrees
type transitSearchRequest struct {
	StartX *float64 `json:"startX"`
	StartY *float64 `json:"startY"`
	EndX   *float64 `json:"endX"`
	EndY   *float64 `json:"endY"`
}

func (t *TransitRoutes) searchTransitRoutes(c *fiber.Ctx) error {
	userID := c.Locals("account_userid").(string)

	var request transitSearchRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Body must contain startX, startY, endX, endY",
		})
	}

	if request.StartX == nil || request.StartY == nil || request.EndX == nil || request.EndY == nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Body must contain startX, startY, endX, endY",
		})
	}

	origin, err := transit.NewPointLocation(*request.StartX, *request.StartY)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Origin coordinate is invalid",
		})
	}

	destination, err := transit.NewPointLocation(*request.EndX, *request.EndY)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Destination coordinate is invalid",
		})
	}

	rawItineraries, err := t.RoutePlanner.FetchTransitRoutes(c.Context(), origin, destination)
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("Transit route search failed")
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Route provider is unavailable",
		})
	}

	var itineraries []*transit.Itinerary
	for _, rawItinerary := range rawItineraries {
		itinerary, err := tmap.NormaliseItinerary(rawItinerary)
		if err != nil {
			log.Error().Err(err).Str("user", userID).Msg("Failed to normalise itinerary")
			c.SendStatus(fiber.StatusBadGateway)
			return c.JSON(fiber.Map{
				"error": "Route provider returned an unusable itinerary",
			})
		}

		itineraries = append(itineraries, itinerary)
	}

	if err := t.Store.Save(c.Context(), userID, itineraries); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("Failed to save itineraries")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not save searched routes",
		})
	}

	itinerariesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, itineraries)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Itineraries",
		})
	}

	return c.JSON(fiber.Map{
		"routes": itinerariesReduced,
	})
}

func (t *TransitRoutes) getRouteNavigation(c *fiber.Ctx) error {
	userID := c.Locals("account_userid").(string)
	routeID := c.Params("routeid")

	enriched, entries, err := t.annotatedRoute(c, userID, routeID)
	if err != nil {
		return t.annotationError(c, err)
	}

	routeReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, enriched)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Itinerary",
		})
	}

	return c.JSON(fiber.Map{
		"route":        routeReduced,
		"descriptions": entries,
	})
}

func (t *TransitRoutes) getRouteNarration(c *fiber.Ctx) error {
	userID := c.Locals("account_userid").(string)
	routeID := c.Params("routeid")

	_, entries, err := t.annotatedRoute(c, userID, routeID)
	if err != nil {
		return t.annotationError(c, err)
	}

	entries = t.Assembler.SynthesizeAll(c.Context(), entries)

	return c.JSON(fiber.Map{
		"descriptions": entries,
	})
}

func (t *TransitRoutes) annotatedRoute(c *fiber.Ctx, userID string, routeID string) (*transit.Itinerary, []transit.DescriptionEntry, error) {
	itinerary, err := t.Store.GetByID(c.Context(), userID, routeID)
	if err != nil {
		return nil, nil, err
	}

	return t.Navigator.Annotate(c.Context(), itinerary)
}

func (t *TransitRoutes) annotationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, routestore.ErrRouteNotFound) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.SendStatus(fiber.StatusInternalServerError)
	return c.JSON(fiber.Map{
		"error": "Could not prepare route navigation",
	})
}
