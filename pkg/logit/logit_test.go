package logit

import (
	"math"
	"testing"
)

func TestOddsFromProbBoundaries(t *testing.T) {
	if got := OddsFromProb(1); !math.IsInf(got, 1) {
		t.Fatalf("OddsFromProb(1) = %v, want +Inf", got)
	}
	if got := OddsFromProb(0); got != 0 {
		t.Fatalf("OddsFromProb(0) = %v, want 0", got)
	}
	if got := OddsFromProb(1.5); !math.IsInf(got, 1) {
		t.Fatalf("OddsFromProb(1.5) = %v, want +Inf", got)
	}
	if got := OddsFromProb(-0.5); got != 0 {
		t.Fatalf("OddsFromProb(-0.5) = %v, want 0", got)
	}
}

func TestOddsFromProbEven(t *testing.T) {
	if got := OddsFromProb(0.5); got != 1.0 {
		t.Fatalf("OddsFromProb(0.5) = %v, want 1.0", got)
	}
}

func TestLogitFromProbBoundaries(t *testing.T) {
	if got := LogitFromProb(1); !math.IsInf(got, 1) {
		t.Fatalf("LogitFromProb(1) = %v, want +Inf", got)
	}
	if got := LogitFromProb(0); !math.IsInf(got, -1) {
		t.Fatalf("LogitFromProb(0) = %v, want -Inf", got)
	}
	if got := LogitFromProb(0.5); got != 0.0 {
		t.Fatalf("LogitFromProb(0.5) = %v, want 0.0", got)
	}
}

func TestRoundtrip(t *testing.T) {
	// ProbFromLogit(LogitFromProb(p)) ≈ p для всех p внутри (0,1)
	for p := 0.001; p < 1; p += 0.001 {
		got := ProbFromLogit(LogitFromProb(p))
		if math.Abs(got-p) > 1e-9 {
			t.Fatalf("roundtrip for p=%v: got %v, diff %v", p, got, math.Abs(got-p))
		}
	}
}

func TestProbFromLogitTotal(t *testing.T) {
	if got := ProbFromLogit(0); got != 0.5 {
		t.Fatalf("ProbFromLogit(0) = %v, want 0.5", got)
	}
	if got := ProbFromLogit(1000); got != 1 {
		t.Fatalf("ProbFromLogit(1000) = %v, want 1", got)
	}
	if got := ProbFromLogit(-1000); got != 0 {
		t.Fatalf("ProbFromLogit(-1000) = %v, want 0", got)
	}
	if got := ProbFromLogit(math.Inf(1)); got != 1 {
		t.Fatalf("ProbFromLogit(+Inf) = %v, want 1", got)
	}
	if got := ProbFromLogit(math.Inf(-1)); got != 0 {
		t.Fatalf("ProbFromLogit(-Inf) = %v, want 0", got)
	}
}

func TestRound(t *testing.T) {
	if got := Round(0.4054999, 3); got != 0.405 {
		t.Fatalf("Round(0.4054999, 3) = %v, want 0.405", got)
	}
	if got := Round(0.0005, 3); got != 0.001 {
		t.Fatalf("Round(0.0005, 3) = %v, want 0.001", got)
	}
	// Половина округляется от нуля
	if got := Round(-0.0005, 3); got != -0.001 {
		t.Fatalf("Round(-0.0005, 3) = %v, want -0.001", got)
	}
	if got := Round(math.Inf(1), 3); !math.IsInf(got, 1) {
		t.Fatalf("Round(+Inf, 3) = %v, want +Inf", got)
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.2); got != 0 {
		t.Fatalf("Clamp01(-0.2) = %v, want 0", got)
	}
	if got := Clamp01(1.2); got != 1 {
		t.Fatalf("Clamp01(1.2) = %v, want 1", got)
	}
	if got := Clamp01(0.42); got != 0.42 {
		t.Fatalf("Clamp01(0.42) = %v, want 0.42", got)
	}
}
