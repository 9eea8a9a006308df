package dataimporter

import (
	"github.com/moduro/moduro/pkg/database"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Import reference datasets",
		Subcommands: []*cli.Command{
			{
				Name:  "stations",
				Usage: "Import station reference data from a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path of the stations CSV file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return ImportStationsFile(c.String("file"))
				},
			},
			{
				Name:  "station-overrides",
				Usage: "Apply yaml station override records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "directory",
						Value: "data/station-overrides/",
						Usage: "directory containing override yaml files",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return ImportStationOverrides(c.String("directory"))
				},
			},
		},
	}
}
