package quiz

import (
	"math/rand"
	"oddslab_backend/internal/config"
	"oddslab_backend/internal/repository"
	"oddslab_backend/internal/service"
	"sync"
)

type serv struct {
	cfg         config.QuizConfig
	sessionRepo repository.QuizSessionRepository

	// rnd защищен мьютексом по той же причине, что и в симуляторе
	mtx sync.Mutex
	rnd *rand.Rand
}

// NewQuizService Создать сервис викторины
func NewQuizService(
	cfg config.QuizConfig,
	sessionRepo repository.QuizSessionRepository,
	rnd *rand.Rand,
) service.QuizService {
	return &serv{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		rnd:         rnd,
	}
}
