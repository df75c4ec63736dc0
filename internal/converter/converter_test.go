package converter

import (
	"math"
	"oddslab_backend/internal/model"
	"testing"
)

func TestToMetricsResponseFinite(t *testing.T) {
	resp := ToMetricsResponse(model.Metrics{
		Probability: 0.5,
		Odds:        1,
		LogOdds:     0,
		Label:       "about even",
	})

	if resp.Odds == nil || *resp.Odds != 1 {
		t.Fatalf("odds = %v, want 1", resp.Odds)
	}
	if resp.OddsText != "1" {
		t.Fatalf("odds text = %q, want %q", resp.OddsText, "1")
	}
	if resp.LogOddsText != "0" {
		t.Fatalf("log-odds text = %q, want %q", resp.LogOddsText, "0")
	}
}

func TestToMetricsResponseInfinities(t *testing.T) {
	// p=1: шансы и логит бесконечны, сырые поля опускаем
	resp := ToMetricsResponse(model.Metrics{
		Probability: 1,
		Odds:        math.Inf(1),
		LogOdds:     math.Inf(1),
	})
	if resp.Odds != nil {
		t.Fatalf("odds = %v, want nil for +Inf", *resp.Odds)
	}
	if resp.OddsText != "∞" {
		t.Fatalf("odds text = %q, want ∞", resp.OddsText)
	}

	resp = ToMetricsResponse(model.Metrics{
		Probability: 0,
		Odds:        0,
		LogOdds:     math.Inf(-1),
	})
	if resp.LogOdds != nil {
		t.Fatalf("log-odds = %v, want nil for -Inf", *resp.LogOdds)
	}
	if resp.LogOddsText != "-∞" {
		t.Fatalf("log-odds text = %q, want -∞", resp.LogOddsText)
	}
}

func TestToMetricsResponseRoundsForDisplay(t *testing.T) {
	resp := ToMetricsResponse(model.Metrics{
		Probability: 0.43,
		Odds:        0.7543859649122807,
		LogOdds:     -0.28185115213120337,
	})

	if resp.OddsText != "0.754" {
		t.Fatalf("odds text = %q, want %q", resp.OddsText, "0.754")
	}
	if resp.LogOddsText != "-0.282" {
		t.Fatalf("log-odds text = %q, want %q", resp.LogOddsText, "-0.282")
	}
	// Сырое значение не округляется
	if resp.Odds == nil || *resp.Odds != 0.7543859649122807 {
		t.Fatalf("raw odds = %v, want unrounded", resp.Odds)
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(3, 5); got != "3/5 (60%)" {
		t.Fatalf("FormatScore(3, 5) = %q, want %q", got, "3/5 (60%)")
	}
	if got := FormatScore(0, 0); got != "0/0" {
		t.Fatalf("FormatScore(0, 0) = %q, want %q", got, "0/0")
	}
	if got := FormatScore(1, 3); got != "1/3 (33%)" {
		t.Fatalf("FormatScore(1, 3) = %q, want %q", got, "1/3 (33%)")
	}
}
