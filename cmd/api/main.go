package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "prestamos-backend/internal/adapter/http"
	"prestamos-backend/internal/adapter/middleware"
	"prestamos-backend/internal/adapter/repository/mysql"
	"prestamos-backend/internal/config"
	"prestamos-backend/internal/infrastructure/cache"
	"prestamos-backend/internal/infrastructure/db"
	usecaseCatalog "prestamos-backend/internal/usecase/catalog"
	usecaseLoan "prestamos-backend/internal/usecase/loan"
	usecasePayment "prestamos-backend/internal/usecase/payment"
	usecaseSweep "prestamos-backend/internal/usecase/sweep"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	uow := mysql.NewGormUoW(gdb)
	loanUC := usecaseLoan.NewUsecase(uow)
	paymentUC := usecasePayment.NewUsecase(uow)
	sweepUC := usecaseSweep.NewUsecase(uow)
	catalogUC := usecaseCatalog.NewUsecase(uow)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	sweepH := httpadp.NewSweepHandler(sweepUC)
	catalogH := httpadp.NewCatalogHandler(catalogUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/loans", loanH.CreateLoan, idemp)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.GET("/loans/:loan_id/detail", loanH.GetLoanDetail)
	e.POST("/loans/:loan_id/payments", paymentH.RegisterPayment, idemp)
	e.POST("/loans/:loan_id/payments/:payment_id/allocate", paymentH.AllocatePayment)
	e.GET("/loans/:loan_id/payments/:payment_id", paymentH.GetPayment)

	e.POST("/sweep/run", sweepH.RunSweep)

	e.POST("/rates", catalogH.CreateRate)
	e.GET("/rates", catalogH.ListRates)
	e.GET("/rates/:rate_id", catalogH.GetRate)
	e.DELETE("/rates/:rate_id", catalogH.DeleteRate)

	e.POST("/methods", catalogH.CreateMethod)
	e.GET("/methods", catalogH.ListMethods)
	e.PUT("/methods/:method_id", catalogH.UpdateMethod)
	e.DELETE("/methods/:method_id", catalogH.DeleteMethod)

	e.POST("/clients", catalogH.CreateClient)
	e.GET("/clients", catalogH.ListClients)
	e.GET("/clients/:client_id", catalogH.GetClient)
	e.DELETE("/clients/:client_id", catalogH.DeleteClient)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
