package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/swaplens/goapi/base/amountfmt"
	bCtx "github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/log"
	"github.com/swaplens/goapi/base/sweeper"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
	mmiddleware "github.com/swaplens/goapi/middleware"
	"github.com/swaplens/goapi/service/zerox"
	quote_usecase "github.com/swaplens/goapi/stores/quote/usecase"
	token_repository "github.com/swaplens/goapi/stores/token/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/sweeper/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	viper.BindEnv("zerox.url", "ZEROX_URL")
	viper.BindEnv("zerox.apikey", "ZEROX_API_KEY")
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	interval := viper.GetDuration("sweeper.interval")
	workers := viper.GetInt("sweeper.workers")
	zeroxUrl := viper.GetString("zerox.url")
	zeroxApikey := viper.GetString("zerox.apikey")
	zeroxTimeout := viper.GetDuration("zerox.timeout")
	defaultTaker := viper.GetString("zerox.taker")

	if len(zeroxApikey) == 0 {
		ctx.Panic("zerox api key is empty")
	}

	ctx.WithFields(log.Fields{
		"interval": interval,
		"workers":  workers,
		"url":      zeroxUrl,
	}).Info("config")

	configs := chain.DefaultConfigs()
	tokenRepo := token_repository.NewTokenRepo(configs)
	formatter := amountfmt.NewAmountFormatter(&amountfmt.AmountFormatterCfg{
		Tokens: tokenRepo,
	})
	zeroxClient := zerox.NewClient(&zerox.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    zeroxTimeout,
		Url:        zeroxUrl,
		Apikey:     zeroxApikey,
	})
	quoteUC := quote_usecase.NewQuoteUseCase(&quote_usecase.QuoteUseCaseCfg{
		Zerox:        zeroxClient,
		Formatter:    formatter,
		DefaultTaker: domain.Address(defaultTaker),
	})

	errCh := make(chan error, 10)
	quoteSweeper := sweeper.NewQuoteSweeper(&sweeper.QuoteSweeperCfg{
		Chains:   configs,
		Quote:    quoteUC,
		Interval: interval,
		Workers:  workers,
		ErrorCh:  errCh,
	})

	ctx.Info("starting sweeper")
	quoteSweeper.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case err := <-errCh:
		ctx.WithField("err", err).Error("sweeper error")
	case sig := <-quit:
		ctx.WithField("signal", sig).Info("received signal")
	}

	go func() {
		for range errCh {
		}
	}()
	cancel()

	quoteSweeper.Wait()
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}
