package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/database/redisclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	bValidator "github.com/x-xyz/marketplace/base/validator"
	mmiddleware "github.com/x-xyz/marketplace/middleware"
	"github.com/x-xyz/marketplace/service/query"
	"github.com/x-xyz/marketplace/service/redis"
	account_delivery "github.com/x-xyz/marketplace/stores/account/delivery/http"
	account_repository "github.com/x-xyz/marketplace/stores/account/repository"
	account_usecase "github.com/x-xyz/marketplace/stores/account/usecase"
	auth_delivery "github.com/x-xyz/marketplace/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/marketplace/stores/auth/usecase"
	custody_repository "github.com/x-xyz/marketplace/stores/custody/repository"
	hc_delivery "github.com/x-xyz/marketplace/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/marketplace/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketplace/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/marketplace/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/marketplace/stores/listing/repository"
	listing_usecase "github.com/x-xyz/marketplace/stores/listing/usecase"
	settlement_delivery "github.com/x-xyz/marketplace/stores/settlement/delivery/http"
	settlement_usecase "github.com/x-xyz/marketplace/stores/settlement/usecase"
	wallet_delivery "github.com/x-xyz/marketplace/stores/wallet/delivery/http"
	wallet_repository "github.com/x-xyz/marketplace/stores/wallet/repository"
	wallet_usecase "github.com/x-xyz/marketplace/stores/wallet/usecase"
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
}

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

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	listingRepo := listing_repository.NewListingRepo(q)
	walletRepo := wallet_repository.NewWalletRepo(q)
	custodyRepo := custody_repository.NewCustodyRepo(q)

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		AccountRepo: accountRepo,
	})
	auth := auth_usecase.New(
		viper.GetString("auth.jwtSecret"),
		viper.GetString("auth.signatureMsg"),
		account,
	)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo: listingRepo,
		CustodyRepo: custodyRepo,
	})
	wallet := wallet_usecase.New(&wallet_usecase.WalletUseCaseCfg{
		WalletRepo: walletRepo,
	})
	settlement := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		Query:       q,
		ListingRepo: listingRepo,
		WalletRepo:  walletRepo,
		CustodyRepo: custodyRepo,
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account)
	listing_delivery.New(e, listing, authMiddleware)
	settlement_delivery.New(e, settlement, authMiddleware)
	wallet_delivery.New(e, wallet, authMiddleware)

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
