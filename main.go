package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.com/mbarrenech/GoAuctionHouse/simulator"
)

func main() {
	sim := simulator.Simulator{}

	app := &cli.App{
		Name:  "GoAuctionHouse",
		Usage: "continuous double-auction market simulator",
		Commands: []*cli.Command{
			{
				Name:  "simulate",
				Usage: "run one auction session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "strategies",
						Usage: "comma separated trader strategies",
					},
					&cli.IntFlag{
						Name:  "rounds",
						Usage: "override the maxRounds setting",
					},
					&cli.BoolFlag{
						Name:  "ui",
						Usage: "render the terminal monitor",
					},
				},
				Action: sim.Run,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
