package ui

import (
	"fmt"
	"time"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/mbarrenech/GoAuctionHouse/helpers"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
	"gitlab.com/mbarrenech/GoAuctionHouse/services"
)

type UserInterface struct {
	AuctionService *services.AuctionService
	RecordService  *services.MarketRecordService
	logList        *[]string
}

func (ui *UserInterface) SetServices(auctionService *services.AuctionService,
	recordService *services.MarketRecordService) {
	ui.AuctionService = auctionService
	ui.RecordService = recordService
}

func (ui *UserInterface) SetLogList(logList *[]string) {
	ui.logList = logList
}

func (ui *UserInterface) Run() {
	if err := termui.Init(); err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("failed to initialize termui: %v", err))
		return
	}
	defer termui.Close()

	uiEvents := termui.PollEvents()
	ticker := time.NewTicker(500 * time.Millisecond).C
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				helpers.Logger.Infoln("Exited by keyboard interrupt")
				return
			}
		case <-ticker:
			ui.UpdateUI()
		}
	}
}

func (ui *UserInterface) UpdateUI() {
	snapshot := ui.AuctionService.Snapshot()

	bestBid, bestAsk := bestPrices(snapshot)

	marketParagraph := widgets.NewParagraph()
	marketParagraph.BorderStyle.Fg = termui.ColorYellow
	marketParagraph.TitleStyle.Fg = termui.ColorYellow
	marketParagraph.Block.Title = "Market Status " + ui.AuctionService.GoodName()
	marketParagraph.Text = fmt.Sprintf("Round: %d/%d\n", snapshot.CurrentRound, ui.AuctionService.MaxRounds())
	marketParagraph.Text += fmt.Sprintf("Trades: %d\n", len(snapshot.Trades))
	marketParagraph.Text += fmt.Sprintf("[Last Price: %.2f](fg:blue)\n", ui.RecordService.LastTradedPrice())
	marketParagraph.Text += fmt.Sprintf("Best Bid: %.2f\n", bestBid)
	marketParagraph.Text += fmt.Sprintf("Best Ask: %.2f\n", bestAsk)
	marketParagraph.SetRect(0, 0, 34, 8)

	bookParagraph := widgets.NewParagraph()
	bookParagraph.Block.Title = "Order Book"
	bookParagraph.Text = fmt.Sprintf("Waiting: %d\n", len(snapshot.WaitingBids)+len(snapshot.WaitingAsks))
	bookParagraph.Text += fmt.Sprintf("Bids: %d\n", len(snapshot.WaitingBids))
	bookParagraph.Text += fmt.Sprintf("Asks: %d", len(snapshot.WaitingAsks))
	bookParagraph.SetRect(34, 0, 60, 8)

	tradesList := widgets.NewList()
	tradesList.Block.Title = "Trades"
	tradesList.Rows = lastTradeLines(snapshot.Trades, 8)
	tradesList.SetRect(60, 0, 110, 8)

	operationsList := widgets.NewList()
	operationsList.Block.Title = "Rounds"
	if ui.logList != nil {
		operationsList.Rows = *ui.logList
	}
	operationsList.SetRect(0, 8, 110, 20)
	operationsList.ScrollBottom()

	termui.Render(marketParagraph, bookParagraph, tradesList, operationsList)
}

func bestPrices(snapshot models.SessionSnapshot) (float64, float64) {
	bestBid := 0.0
	for _, bid := range snapshot.WaitingBids {
		if bid.Price > bestBid {
			bestBid = bid.Price
		}
	}
	bestAsk := 0.0
	for _, ask := range snapshot.WaitingAsks {
		if bestAsk == 0 || ask.Price < bestAsk {
			bestAsk = ask.Price
		}
	}
	return bestBid, bestAsk
}

func lastTradeLines(trades []models.Trade, n int) []string {
	if len(trades) > n {
		trades = trades[len(trades)-n:]
	}
	lines := make([]string, 0, len(trades))
	for _, trade := range trades {
		lines = append(lines, fmt.Sprintf("#%d %s -> %s @ %.2f", trade.TradeID, trade.SellerID, trade.BuyerID, trade.Price))
	}
	return lines
}
