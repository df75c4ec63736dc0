package app

import (
	"math/rand"
	convertAPI "oddslab_backend/internal/api/convert"
	quizAPI "oddslab_backend/internal/api/quiz"
	simulationAPI "oddslab_backend/internal/api/simulation"
	"oddslab_backend/internal/config"
	"oddslab_backend/internal/config/env"
	"oddslab_backend/internal/repository"
	"oddslab_backend/internal/repository/quiz_session_repo"
	"oddslab_backend/internal/repository/sim_stats_repo"
	"oddslab_backend/internal/service"
	"oddslab_backend/internal/service/convert"
	"oddslab_backend/internal/service/quiz"
	"oddslab_backend/internal/service/simulation"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const configYAMLPath = "config.yaml"

type ServiceProvider struct {
	// Convert bits
	curveCfg    config.CurveConfig
	convertServ service.ConvertService
	convertHand *convertAPI.Handler

	// Simulation bits
	simulationCfg  config.SimulationConfig
	simStatsRepo   repository.SimStatsRepository
	simulationServ service.SimulationService
	simulationHand *simulationAPI.Handler

	// Quiz bits
	quizCfg     config.QuizConfig
	sessionRepo repository.QuizSessionRepository
	quizServ    service.QuizService
	quizHand    *quizAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) CurveCfg() config.CurveConfig {
	if sp.curveCfg == nil {
		cfg, err := env.NewCurveConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get curve config: " + err.Error())
		}
		sp.curveCfg = cfg
	}
	return sp.curveCfg
}

func (sp *ServiceProvider) ConvertService() service.ConvertService {
	if sp.convertServ == nil {
		sp.convertServ = convert.NewConvertService(sp.CurveCfg())
	}
	return sp.convertServ
}

func (sp *ServiceProvider) ConvertHandler() *convertAPI.Handler {
	if sp.convertHand == nil {
		sp.convertHand = convertAPI.NewHandler(convertAPI.HandlerDeps{
			Serv: sp.ConvertService(),
		})
	}
	return sp.convertHand
}

func (sp *ServiceProvider) SimulationCfg() config.SimulationConfig {
	if sp.simulationCfg == nil {
		cfg, err := env.NewSimulationConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get simulation config: " + err.Error())
		}
		sp.simulationCfg = cfg
	}
	return sp.simulationCfg
}

func (sp *ServiceProvider) SimStatsRepository() repository.SimStatsRepository {
	if sp.simStatsRepo == nil {
		sp.simStatsRepo = sim_stats_repo.NewSimStatsRepository(sp.SimulationCfg().StatsWindowSize())
	}
	return sp.simStatsRepo
}

func (sp *ServiceProvider) SimulationService() service.SimulationService {
	if sp.simulationServ == nil {
		sp.simulationServ = simulation.NewSimulationService(
			sp.SimulationCfg(),
			sp.SimStatsRepository(),
			rand.New(rand.NewSource(time.Now().UnixNano())),
		)
	}
	return sp.simulationServ
}

func (sp *ServiceProvider) SimulationHandler() *simulationAPI.Handler {
	if sp.simulationHand == nil {
		sp.simulationHand = simulationAPI.NewHandler(simulationAPI.HandlerDeps{
			Serv: sp.SimulationService(),
		})
	}
	return sp.simulationHand
}

func (sp *ServiceProvider) QuizCfg() config.QuizConfig {
	if sp.quizCfg == nil {
		cfg, err := env.NewQuizConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get quiz config: " + err.Error())
		}
		sp.quizCfg = cfg
	}
	return sp.quizCfg
}

func (sp *ServiceProvider) QuizSessionRepository() repository.QuizSessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = quiz_session_repo.NewQuizSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) QuizService() service.QuizService {
	if sp.quizServ == nil {
		sp.quizServ = quiz.NewQuizService(
			sp.QuizCfg(),
			sp.QuizSessionRepository(),
			rand.New(rand.NewSource(time.Now().UnixNano())),
		)
	}
	return sp.quizServ
}

func (sp *ServiceProvider) QuizHandler() *quizAPI.Handler {
	if sp.quizHand == nil {
		sp.quizHand = quizAPI.NewHandler(quizAPI.HandlerDeps{
			Serv: sp.QuizService(),
		})
	}
	return sp.quizHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Convert endpoints
		convertHandler := sp.ConvertHandler()
		r.Route("/convert", func(rr chi.Router) {
			rr.Post("/metrics", convertHandler.Metrics)
			rr.Get("/curve", convertHandler.Curve)
		})

		// Simulation endpoints
		simulationHandler := sp.SimulationHandler()
		r.Route("/simulation", func(rr chi.Router) {
			rr.Post("/run", simulationHandler.Run)
			rr.Get("/stats", simulationHandler.Stats)
		})

		// Quiz endpoints
		quizHandler := sp.QuizHandler()
		r.Route("/quiz", func(rr chi.Router) {
			rr.Post("/generate", quizHandler.Generate)
			rr.Post("/grade", quizHandler.Grade)
			rr.Get("/check-data", quizHandler.CheckData)
		})

		sp.router = r
	}

	return sp.router
}
