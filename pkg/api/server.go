package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moduro/moduro/pkg/api/routes"
	"github.com/moduro/moduro/pkg/kric"
	"github.com/moduro/moduro/pkg/narration"
	"github.com/moduro/moduro/pkg/navigator"
	"github.com/moduro/moduro/pkg/routestore"
	"github.com/moduro/moduro/pkg/stations"
	"github.com/moduro/moduro/pkg/tmap"
)

func SetupServer(listen string) error {
	stationRegistry, err := stations.NewRegistry()
	if err != nil {
		return err
	}

	synthesizer, err := narration.NewGoogleSynthesizer()
	if err != nil {
		return err
	}

	accessibility := kric.NewGateway(stationRegistry)

	transitRoutes := &routes.TransitRoutes{
		RoutePlanner: tmap.NewClient(),
		Store:        routestore.NewStore(),
		Navigator:    navigator.NewNavigator(accessibility),
		Assembler:    narration.NewAssembler(synthesizer),
	}

	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	transitRoutes.Router(group.Group("/routes", EnsureValidToken()))

	return webApp.Listen(listen)
}
