package simulator

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/mbarrenech/GoAuctionHouse/database"
	"gitlab.com/mbarrenech/GoAuctionHouse/helpers"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
	"gitlab.com/mbarrenech/GoAuctionHouse/services"
	"gitlab.com/mbarrenech/GoAuctionHouse/simulator/ui"
	"gitlab.com/mbarrenech/GoAuctionHouse/strategies"
)

type Simulator struct {
}

func init() {
	cwd, _ := os.Getwd()
	err := godotenv.Load(cwd + "/conf.env")
	if err != nil {
		log.Warnln("No conf.env file found, relying on exported variables")
	}
}

func (s *Simulator) Run(c *cli.Context) error {
	helpers.Logger.Infoln("🏛 Auction House started")

	maxRounds := envInt("maxRounds", 10)
	if c.Int("rounds") > 0 {
		maxRounds = c.Int("rounds")
	}
	numBuyers := envInt("numBuyers", 5)
	numSellers := envInt("numSellers", 5)
	goodName := os.Getenv("goodName")
	if goodName == "" {
		goodName = "apple"
	}

	strategiesString := c.String("strategies")
	if strategiesString == "" {
		strategiesString = os.Getenv("strategies")
	}
	strategiesList := strings.Split(strategiesString, ",")
	if strategiesList[0] == "" {
		strategiesList = []string{"zeroIntelligenceStrategy"}
	}

	roundDelay := time.Duration(0)
	if delayString := os.Getenv("roundDelay"); delayString != "" {
		parsed, err := str2duration.ParseDuration(delayString)
		if err != nil {
			helpers.Logger.Errorln(fmt.Sprintf("invalid roundDelay %q: %v", delayString, err))
		} else {
			roundDelay = parsed
		}
	}

	var databaseService *database.DBService
	var err error
	databaseIsEnabled, _ := strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	if databaseIsEnabled {
		databaseService, err = database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"),
			os.Getenv("databaseName"), os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			return err
		}
	}

	traders, err := buildTraders(numBuyers, numSellers, strategiesList)
	if err != nil {
		helpers.Logger.Errorln(err)
		return err
	}

	auctionService := services.NewAuctionService(maxRounds, goodName)
	recordService := services.NewMarketRecordService()

	var sessionID uint
	if databaseService != nil {
		sessionID = databaseService.AddSession(goodName, maxRounds)
	}

	helpers.Logger.Infoln(fmt.Sprintf("Session opened: good %s, %d buyers, %d sellers, %d rounds",
		goodName, numBuyers, numSellers, maxRounds))

	var logLines []string
	if c.Bool("ui") {
		monitor := &ui.UserInterface{}
		monitor.SetServices(auctionService, recordService)
		monitor.SetLogList(&logLines)
		go s.runSession(auctionService, recordService, databaseService, sessionID, traders, roundDelay, &logLines)
		monitor.Run()
		return nil
	}

	s.runSession(auctionService, recordService, databaseService, sessionID, traders, roundDelay, &logLines)
	return nil
}

func (s *Simulator) runSession(auctionService *services.AuctionService, recordService *services.MarketRecordService,
	databaseService *database.DBService, sessionID uint, traders []Trader, roundDelay time.Duration,
	logList *[]string) {

	var roundAveragePrices []float64

	for {
		batch := make(map[string]models.Order, len(traders))
		for i := range traders {
			order, ok := traders[i].DecideOrder(recordService.TimeSeries())
			if !ok {
				continue
			}
			batch[traders[i].Profile.AgentID] = order
		}

		result := auctionService.Step(batch)
		round := result.Info.CurrentRound
		newTrades := result.GlobalObservation.AllTrades
		marketSummary := result.GlobalObservation.MarketSummary
		recordService.RecordRound(round, newTrades)

		line := fmt.Sprintf("Round %d: %d orders in, %d trades, avg price %.2f",
			round, len(batch), marketSummary.TradesCount, marketSummary.AveragePrice)
		helpers.Logger.Infoln(line)
		*logList = append(*logList, line)

		if marketSummary.TradesCount > 0 {
			roundAveragePrices = append(roundAveragePrices, marketSummary.AveragePrice)
		}

		if databaseService != nil {
			orders := make([]models.Order, 0, len(batch))
			for _, order := range batch {
				orders = append(orders, order)
			}
			databaseService.AddOrders(sessionID, round, orders)
			for _, trade := range newTrades {
				databaseService.AddTrade(sessionID, round, trade)
			}
		}

		if result.Done {
			break
		}
		if roundDelay > 0 {
			time.Sleep(roundDelay)
		}
	}

	snapshot := auctionService.Snapshot()
	mean := helpers.Mean(roundAveragePrices)
	helpers.Logger.Infoln(fmt.Sprintf("Session finished after %d rounds: %d trades, mean round price %.2f (std dev %.2f), %d orders left waiting",
		snapshot.CurrentRound, len(snapshot.Trades), mean,
		helpers.StdDev(roundAveragePrices, mean),
		len(snapshot.WaitingBids)+len(snapshot.WaitingAsks)))
	*logList = append(*logList, "Session finished")

	if databaseService != nil {
		databaseService.FinishSession(sessionID, snapshot.CurrentRound, len(snapshot.Trades))
	}
}

// buildTraders deals profiles and strategies round-robin. Buyer valuations
// and seller costs are drawn so the two sides overlap and some surplus
// exists to trade away.
func buildTraders(numBuyers int, numSellers int, strategiesList []string) ([]Trader, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	traders := make([]Trader, 0, numBuyers+numSellers)

	for i := 0; i < numBuyers; i++ {
		strategy, err := strategies.StrategyFactory(strategiesList[i%len(strategiesList)])
		if err != nil {
			return nil, err
		}
		profile := models.TraderProfile{
			AgentID:    fmt.Sprintf("buyer-%d", i+1),
			Role:       models.RoleBuyer,
			LimitPrice: 50 + rng.Float64()*50,
		}
		traders = append(traders, NewTrader(profile, strategy))
	}

	for i := 0; i < numSellers; i++ {
		strategy, err := strategies.StrategyFactory(strategiesList[i%len(strategiesList)])
		if err != nil {
			return nil, err
		}
		profile := models.TraderProfile{
			AgentID:    fmt.Sprintf("seller-%d", i+1),
			Role:       models.RoleSeller,
			LimitPrice: 20 + rng.Float64()*50,
		}
		traders = append(traders, NewTrader(profile, strategy))
	}

	return traders, nil
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
