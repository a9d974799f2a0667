package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	loginhandler "mill-backend/http-server/auth/login"
	signuphandler "mill-backend/http-server/auth/signup"
	getelectrical "mill-backend/http-server/electrical/get"
	saveelectrical "mill-backend/http-server/electrical/save"
	generate_excel "mill-backend/http-server/generate-report/generate-excel"
	getproduction "mill-backend/http-server/production/get"
	saveproduction "mill-backend/http-server/production/save"
	"mill-backend/internal/config"
	"mill-backend/internal/middleware/auth"
	"mill-backend/internal/service/electrical"
	"mill-backend/internal/service/production"
	"mill-backend/internal/service/report"
	"mill-backend/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	productionService *production.ProductionService,
	electricalService *electrical.ElectricalService,
	reportService *report.ReportService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.FrontendOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Post("/signup", signuphandler.Signup(log, storage))
	router.Post("/login", loginhandler.Login(log, storage))

	router.Post("/add", saveproduction.AddProduction(log, productionService))
	router.Get("/production/selected-date/{date}", getproduction.SelectedDateProduction(log, productionService))
	router.Get("/cumulative/production/{month}", getproduction.MonthCumulativeProduction(log, productionService))

	router.Post("/add-electrical", saveelectrical.AddElectrical(log, electricalService))
	router.Get("/electrical-all", getelectrical.AllElectrical(log, electricalService))
	router.Get("/cumulative/electrical/{date}", getelectrical.CumulativeElectrical(log, electricalService))
	router.Get("/cumulative/{date}", getelectrical.CumulativeAsOf(log, electricalService))

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).
		Get("/report/excel", generate_excel.GenerateReportExcel(log, reportService))

	return router
}
