package quiz

import (
	"fmt"
	"math"
	"math/rand"
	"oddslab_backend/internal/model"
	"oddslab_backend/pkg/logit"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Диапазоны случайных значений по архетипам
const (
	logitConvMin, logitConvMax     = 0.1, 0.9
	logitInterpMin, logitInterpMax = -2.0, 2.0
	probConvMin, probConvMax       = 0.15, 0.85
)

// generator Чистая функция-генератор одного архетипа
type generator func(rnd *rand.Rand) model.Question

// generators Таблица генераторов в фиксированном порядке
// Архетип выбирается по индексу вопроса mod 5, порядок не меняется
var generators = []generator{
	genLogitConversion,
	genOddsGrowth,
	genLogitInterpretation,
	genProbabilityConversion,
	genCompareMetrics,
}

// Generate Создает новый набор вопросов и сохраняет его в сессию
// Если sessionID пустой — открывается новая сессия, иначе набор в существующей
// сессии заменяется целиком (вместе с результатом последней проверки)
func (s *serv) Generate(sessionID string, count int) (*model.QuizSession, error) {
	if count <= 0 {
		count = s.cfg.DefaultQuestionCount()
	}
	if count > s.cfg.MaxQuestionCount() {
		count = s.cfg.MaxQuestionCount()
	}

	questions := make([]model.Question, count)
	s.mtx.Lock()
	for i := range questions {
		questions[i] = generators[i%len(generators)](s.rnd)
	}
	s.mtx.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session := &model.QuizSession{
		ID:        sessionID,
		Set:       model.QuestionSet{Questions: questions},
		CreatedAt: time.Now(),
	}
	s.sessionRepo.Save(session)

	return session, nil
}

// genLogitConversion Вопрос "вероятность -> логит"
// Случайное p округляем до двух знаков сразу: именно это значение
// попадает и в текст вопроса, и в вычисление ответа, и в объяснение
func genLogitConversion(rnd *rand.Rand) model.Question {
	p := logit.Round(logitConvMin+rnd.Float64()*(logitConvMax-logitConvMin), 2)
	odds := logit.Round(p/(1-p), 3)
	answer := logit.Round(logit.LogitFromProb(p), 3)

	return model.Question{
		Kind:    model.KindLogitConversion,
		Numeric: true,
		Prompt: fmt.Sprintf(
			"Convert probability p = %v to log-odds. Round to 3 decimal places.",
			fmtNum(p)),
		Expected: fmtNum(answer),
		Explanation: fmt.Sprintf(
			"logit(%v) = ln(%v / (1 - %v)) = ln(%v) = %v",
			fmtNum(p), fmtNum(p), fmtNum(p), fmtNum(odds), fmtNum(answer)),
	}
}

// genOddsGrowth Вопрос про рост шансов, ответ фиксированный
func genOddsGrowth(_ *rand.Rand) model.Question {
	return model.Question{
		Kind:    model.KindOddsGrowth,
		Numeric: false,
		Prompt: "True or False: as probability climbs toward 1, " +
			"the odds grow without bound while the probability itself never exceeds 1.",
		Expected: "True",
		Explanation: "odds = p / (1 - p): as p approaches 1 the denominator approaches 0, " +
			"so the odds explode toward infinity while p stays capped at 1.",
	}
}

// genLogitInterpretation Вопрос "логит -> вероятность"
func genLogitInterpretation(rnd *rand.Rand) model.Question {
	l := logit.Round(logitInterpMin+rnd.Float64()*(logitInterpMax-logitInterpMin), 2)
	e := logit.Round(math.Exp(l), 3)
	answer := logit.Round(logit.ProbFromLogit(l), 3)

	return model.Question{
		Kind:    model.KindLogitInterpretation,
		Numeric: true,
		Prompt: fmt.Sprintf(
			"A model reports log-odds l = %v. Convert it back to a probability. Round to 3 decimal places.",
			fmtNum(l)),
		Expected: fmtNum(answer),
		Explanation: fmt.Sprintf(
			"sigmoid(%v) = e^%v / (1 + e^%v) = %v / %v = %v",
			fmtNum(l), fmtNum(l), fmtNum(l), fmtNum(e), fmtNum(logit.Round(1+e, 3)), fmtNum(answer)),
	}
}

// genProbabilityConversion Вопрос "вероятность -> шансы"
func genProbabilityConversion(rnd *rand.Rand) model.Question {
	p := logit.Round(probConvMin+rnd.Float64()*(probConvMax-probConvMin), 2)
	answer := logit.Round(logit.OddsFromProb(p), 3)

	return model.Question{
		Kind:    model.KindProbabilityConversion,
		Numeric: true,
		Prompt: fmt.Sprintf(
			"Convert probability p = %v to odds. Round to 3 decimal places.",
			fmtNum(p)),
		Expected: fmtNum(answer),
		Explanation: fmt.Sprintf(
			"odds(%v) = %v / (1 - %v) = %v / %v = %v",
			fmtNum(p), fmtNum(p), fmtNum(p), fmtNum(p), fmtNum(logit.Round(1-p, 2)), fmtNum(answer)),
	}
}

// genCompareMetrics Вопрос про нейтральную точку шкал, ответ фиксированный
func genCompareMetrics(_ *rand.Rand) model.Question {
	return model.Question{
		Kind:    model.KindCompareMetrics,
		Numeric: false,
		Prompt: "True or False: a probability of 0.5 corresponds to odds of 1 " +
			"and log-odds of 0.",
		Expected: "True",
		Explanation: "odds(0.5) = 0.5 / 0.5 = 1 and logit(0.5) = ln(1) = 0: " +
			"p = 0.5 is the neutral point of all three scales.",
	}
}

// fmtNum Число в строку без хвостовых нулей
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
