package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gasvision/internal/config"
	"gasvision/internal/handler"
	infraRepo "gasvision/internal/infra/repository"
	"gasvision/internal/logging"
	"gasvision/internal/server"
	"gasvision/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const cliTimeout = 2 * time.Minute

func main() {
	report := flag.Bool("report", false, "print orders, customers and analytics as tables and exit")
	importPath := flag.String("import", "", "load an exported orders .csv or .xlsx into the store and exit")
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New(true).Fatalw("invalid config", "error", err)
	}

	log := logging.New(cfg.IsDev())
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Infow(".env not loaded", "error", envErr)
	}

	stores, err := infraRepo.NewStores(cfg)
	if err != nil {
		log.Fatalw("store init failed", "error", err)
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			log.Warnw("store close failed", "error", err)
		}
	}()

	uc := usecase.NewAdminUsecase(stores.Orders, stores.Customers, cfg.ExportDir)

	switch {
	case *report:
		if err := runReport(uc); err != nil {
			log.Fatalw("report failed", "error", err)
		}
		return
	case *importPath != "":
		if err := runImport(uc, *importPath, log); err != nil {
			log.Fatalw("import failed", "file", *importPath, "error", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h := handler.NewAdminHandler(uc, log)
	e := server.New(log)
	server.RegisterAdminRoutes(e, h)

	if err := server.Start(ctx, e, server.Addr(cfg.AdminPort), log); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

func runReport(uc *usecase.AdminUsecase) error {
	ctx, cancel := context.WithTimeout(context.Background(), cliTimeout)
	defer cancel()
	return uc.Report(ctx, os.Stdout)
}

func runImport(uc *usecase.AdminUsecase, path string, log *zap.SugaredLogger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cliTimeout)
	defer cancel()

	n, err := uc.Import(ctx, f, usecase.ImportFormat(path), time.Local)
	if err != nil {
		if usecase.IsMalformedImport(err) {
			log.Errorw("nothing imported", "reason", "malformed row")
		} else if n > 0 {
			log.Errorw("import stopped partway", "imported", n)
		}
		return err
	}
	log.Infow("imported orders", "count", n)
	return nil
}
