package converter

import (
	dto "oddslab_backend/internal/api/dto/simulation"
	"oddslab_backend/internal/model"
)

func ToSimulationRun(req dto.RunRequest) model.SimulationRun {
	return model.SimulationRun{
		Probability: req.Probability,
		Trials:      req.Trials,
	}
}

func ToRunResponse(result model.SimulationResult) dto.RunResponse {
	return dto.RunResponse{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		TrialCount:   result.TrialCount,
		ObservedRate: result.ObservedRate,
		Probability:  result.Probability,
	}
}

func ToStatsResponse(stats model.SimulationStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalRuns:       stats.TotalRuns,
		TotalTrials:     stats.TotalTrials,
		TotalSuccesses:  stats.TotalSuccesses,
		OverallRate:     stats.OverallRate,
		WindowRuns:      stats.WindowRuns,
		WindowSize:      stats.WindowSize,
		WindowDeviation: stats.WindowDeviation,
	}
}
