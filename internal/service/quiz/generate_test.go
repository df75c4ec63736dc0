package quiz

import (
	"fmt"
	"math/rand"
	"oddslab_backend/internal/model"
	"oddslab_backend/internal/repository/quiz_session_repo"
	"oddslab_backend/pkg/logit"
	"strconv"
	"strings"
	"testing"
)

type quizCfgStub struct {
	def int
	max int
}

func (c quizCfgStub) DefaultQuestionCount() int { return c.def }
func (c quizCfgStub) MaxQuestionCount() int     { return c.max }

func newTestService(seed int64) (*serv, *quiz_session_repo.SessionRepo) {
	repo := quiz_session_repo.NewQuizSessionRepository()
	s := &serv{
		cfg:         quizCfgStub{def: 5, max: 50},
		sessionRepo: repo,
		rnd:         rand.New(rand.NewSource(seed)),
	}
	return s, repo
}

var wantCycle = []model.QuestionKind{
	model.KindLogitConversion,
	model.KindOddsGrowth,
	model.KindLogitInterpretation,
	model.KindProbabilityConversion,
	model.KindCompareMetrics,
}

func TestGenerateCyclesArchetypes(t *testing.T) {
	s, _ := newTestService(1)

	session, err := s.Generate("", 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(session.Set.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(session.Set.Questions))
	}
	for i, q := range session.Set.Questions {
		if q.Kind != wantCycle[i] {
			t.Fatalf("question %d kind = %q, want %q", i, q.Kind, wantCycle[i])
		}
	}
}

func TestGenerateCycleWrapsAround(t *testing.T) {
	s, _ := newTestService(2)

	session, err := s.Generate("", 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i, q := range session.Set.Questions {
		if q.Kind != wantCycle[i%5] {
			t.Fatalf("question %d kind = %q, want %q", i, q.Kind, wantCycle[i%5])
		}
	}
}

func TestGenerateDefaultsAndCap(t *testing.T) {
	s, _ := newTestService(3)

	session, _ := s.Generate("", 0)
	if len(session.Set.Questions) != 5 {
		t.Fatalf("count=0: got %d questions, want default 5", len(session.Set.Questions))
	}

	session, _ = s.Generate("", 1000)
	if len(session.Set.Questions) != 50 {
		t.Fatalf("count=1000: got %d questions, want cap 50", len(session.Set.Questions))
	}
}

func TestGenerateInputModes(t *testing.T) {
	s, _ := newTestService(4)

	session, _ := s.Generate("", 5)
	wantNumeric := []bool{true, false, true, true, false}
	for i, q := range session.Set.Questions {
		if q.Numeric != wantNumeric[i] {
			t.Fatalf("question %d numeric = %v, want %v", i, q.Numeric, wantNumeric[i])
		}
		if !q.Numeric && q.Expected != "True" {
			t.Fatalf("question %d expected = %q, want %q", i, q.Expected, "True")
		}
		if q.Numeric {
			if _, err := strconv.ParseFloat(q.Expected, 64); err != nil {
				t.Fatalf("question %d expected %q is not numeric: %v", i, q.Expected, err)
			}
		}
	}
}

// Объяснение обязано считаться из того же случайного значения, что и ответ
func TestExplanationMatchesDraw(t *testing.T) {
	s, _ := newTestService(5)

	session, _ := s.Generate("", 20)
	for i, q := range session.Set.Questions {
		if q.Explanation == "" {
			t.Fatalf("question %d has empty explanation", i)
		}
		if !q.Numeric {
			continue
		}
		if !strings.HasSuffix(q.Explanation, "= "+q.Expected) {
			t.Fatalf("question %d explanation %q does not end with expected %q",
				i, q.Explanation, q.Expected)
		}
	}
}

func TestLogitConversionAnswerMatchesPrompt(t *testing.T) {
	s, _ := newTestService(6)

	session, _ := s.Generate("", 1)
	q := session.Set.Questions[0]

	var p float64
	_, err := fmt.Sscanf(q.Prompt, "Convert probability p = %f to log-odds.", &p)
	if err != nil {
		t.Fatalf("cannot parse prompt %q: %v", q.Prompt, err)
	}
	if p < 0.1 || p > 0.9 {
		t.Fatalf("drawn p = %v outside [0.1, 0.9]", p)
	}

	want := strconv.FormatFloat(logit.Round(logit.LogitFromProb(p), 3), 'f', -1, 64)
	if q.Expected != want {
		t.Fatalf("expected answer %q does not match prompt value %v (want %q)", q.Expected, p, want)
	}
}

func TestGenerateReplacesSessionWholesale(t *testing.T) {
	s, repo := newTestService(7)

	first, _ := s.Generate("", 10)
	if _, err := s.Grade(first.ID, nil); err != nil {
		t.Fatalf("grade: %v", err)
	}

	second, _ := s.Generate(first.ID, 3)
	if second.ID != first.ID {
		t.Fatalf("session id changed on regenerate: %q != %q", second.ID, first.ID)
	}

	stored, ok := repo.Get(first.ID)
	if !ok {
		t.Fatal("session missing after regenerate")
	}
	if len(stored.Set.Questions) != 3 {
		t.Fatalf("stored question count = %d, want 3", len(stored.Set.Questions))
	}
	if stored.LastResult != nil {
		t.Fatal("grading result survived regenerate")
	}
}

func TestGenerateNewSessionsGetDistinctIDs(t *testing.T) {
	s, _ := newTestService(8)

	first, _ := s.Generate("", 5)
	second, _ := s.Generate("", 5)
	if first.ID == second.ID {
		t.Fatalf("two fresh sessions share id %q", first.ID)
	}
}
