package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ctmerge/ctmerge/database"
	"github.com/ctmerge/ctmerge/models"
)

type QueryParams struct {
	Exchange string `form:"exchange" binding:"required"`
	From     string `form:"from"`
}

func GetTradeStats(c *gin.Context) {
	var params QueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var startDate time.Time
	var err error

	if params.From != "" {
		startDate, err = time.Parse("2006-01-02", params.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
	} else {
		startDate = time.Now().AddDate(0, 0, -30)
	}

	stats, err := calculateStats(params.Exchange, startDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func calculateStats(exchange string, startDate time.Time) (*models.TradeStats, error) {
	db := database.DB

	type statsResult struct {
		TradeCount int64
		PairCount  int64
		FirstTrade *time.Time
		LastTrade  *time.Time
	}

	var result statsResult

	err := db.Raw(`
		SELECT
			COUNT(*) as trade_count,
			COUNT(DISTINCT buy_currency || '/' || sell_currency) as pair_count,
			MIN(trade_date) as first_trade,
			MAX(trade_date) as last_trade
		FROM merged_trades
		WHERE exchange = ? AND trade_date >= ?
	`, exchange, startDate).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &models.TradeStats{
		Exchange:   exchange,
		TradeCount: result.TradeCount,
		PairCount:  result.PairCount,
		FirstTrade: result.FirstTrade,
		LastTrade:  result.LastTrade,
	}, nil
}

func SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/trades/stats", GetTradeStats)

	return r
}
