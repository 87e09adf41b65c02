package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/swaplens/goapi/base/amountfmt"
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/base/log"
	bValidator "github.com/swaplens/goapi/base/validator"
	"github.com/swaplens/goapi/domain"
	"github.com/swaplens/goapi/domain/chain"
	mmiddleware "github.com/swaplens/goapi/middleware"
	"github.com/swaplens/goapi/service/cache/provider/primitive"
	"github.com/swaplens/goapi/service/zerox"
	chain_delivery "github.com/swaplens/goapi/stores/chain/delivery/http"
	chain_repository "github.com/swaplens/goapi/stores/chain/repository"
	chain_usecase "github.com/swaplens/goapi/stores/chain/usecase"
	hc_delivery "github.com/swaplens/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/swaplens/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/swaplens/goapi/stores/healthcheck/usecase"
	quote_delivery "github.com/swaplens/goapi/stores/quote/delivery/http"
	quote_usecase "github.com/swaplens/goapi/stores/quote/usecase"
	token_delivery "github.com/swaplens/goapi/stores/token/delivery/http"
	token_repository "github.com/swaplens/goapi/stores/token/repository"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/swaplens/goapi/app/api/docs"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
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

//	@title			SwapLens API
//	@version		1.0
//	@description	API Document for SwapLens.

// main
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	mmiddleware.SetupCache()

	zeroxUrl := viper.GetString("zerox.url")
	zeroxApikey := viper.GetString("zerox.apikey")
	zeroxTimeout := viper.GetDuration("zerox.timeout")
	defaultTaker := viper.GetString("zerox.taker")
	if len(zeroxApikey) == 0 {
		context.Warn("zerox api key is empty, quotes will fail")
	}
	zeroxClient := zerox.NewClient(&zerox.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    zeroxTimeout,
		Url:        zeroxUrl,
		Apikey:     zeroxApikey,
	})

	// construct repository, usecase and delivery
	configs := chain.DefaultConfigs()
	tokenRepo := token_repository.NewTokenRepo(configs)
	chainRepo := chain_repository.NewChainRepo(configs)
	hcRepo := hc_repo.New(primitive.NewPrimitive("healthcheck", 1))

	formatter := amountfmt.NewAmountFormatter(&amountfmt.AmountFormatterCfg{
		Tokens: tokenRepo,
	})
	hc := hc_usecase.New(hcRepo)
	chainUC := chain_usecase.NewChainUseCase(chainRepo)
	quoteUC := quote_usecase.NewQuoteUseCase(&quote_usecase.QuoteUseCaseCfg{
		Zerox:        zeroxClient,
		Formatter:    formatter,
		DefaultTaker: domain.Address(defaultTaker),
	})

	hc_delivery.New(e, hc)
	quote_delivery.New(e, quoteUC)
	chain_delivery.New(e, chainUC)
	token_delivery.New(e, tokenRepo)

	context.WithFields(log.Fields{
		"provider":        zeroxClient.Name(),
		"supportedChains": zeroxClient.SupportedChains(),
		"url":             zeroxUrl,
	}).Info("quote provider ready")

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
