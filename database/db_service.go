package database

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	database "gitlab.com/mbarrenech/GoAuctionHouse/database/models"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.Session{}, &database.Trade{}, &database.Order{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

func init() {
	cwd, _ := os.Getwd()
	err := godotenv.Load(cwd + "/conf.env")
	if err != nil {
		log.Println("No conf.env file found, relying on exported variables")
	}
}

// AddSession opens a session record and returns its id for the trade and
// order rows that follow
func (dbs *DBService) AddSession(goodName string, maxRounds int) uint {
	dbSession := database.Session{
		GoodName:  goodName,
		MaxRounds: maxRounds,
	}
	dbs.DB.Create(&dbSession)
	return dbSession.ID
}

// FinishSession stamps the final round and trade counters on the session
func (dbs *DBService) FinishSession(sessionID uint, roundsRun int, tradeCount int) {
	dbs.DB.Model(&database.Session{}).Where("id = ?", sessionID).
		Updates(map[string]interface{}{"rounds_run": roundsRun, "trade_count": tradeCount})
}

// AddTrade records one executed trade of the given round
func (dbs *DBService) AddTrade(sessionID uint, round int, trade models.Trade) {
	dbTrade := database.Trade{
		SessionID: sessionID,
		TradeID:   trade.TradeID,
		Round:     round,
		BuyerID:   trade.BuyerID,
		SellerID:  trade.SellerID,
		Price:     trade.Price,
		Quantity:  trade.Quantity,
		GoodName:  trade.GoodName,
		BidPrice:  trade.BidPrice,
		AskPrice:  trade.AskPrice,
	}
	dbs.DB.Create(&dbTrade)
}

// AddOrders records the accepted orders of one round's batch
func (dbs *DBService) AddOrders(sessionID uint, round int, orders []models.Order) {
	for _, order := range orders {
		dbOrder := database.Order{
			SessionID: sessionID,
			Round:     round,
			AgentID:   order.AgentID,
			Side:      database.OrderSide(order.Side),
			Price:     order.Price,
			Quantity:  order.Quantity,
		}
		dbs.DB.Create(&dbOrder)
	}
}

// GetSessionTrades returns the recorded trades of a session in execution order
func (dbs *DBService) GetSessionTrades(sessionID uint) []database.Trade {
	rows, err := dbs.DB.Raw("SELECT * FROM trades WHERE session_id = ? ORDER BY trade_id", sessionID).Rows()
	if err != nil {
		return nil
	}
	defer rows.Close()

	var trades []database.Trade
	for rows.Next() {
		var trade database.Trade
		dbs.DB.ScanRows(rows, &trade)
		trades = append(trades, trade)
	}
	return trades
}
