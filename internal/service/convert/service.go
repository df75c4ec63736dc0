package convert

import (
	"oddslab_backend/internal/config"
	"oddslab_backend/internal/service"
)

type serv struct {
	curveCfg config.CurveConfig
}

// NewConvertService Создать сервис преобразований вероятность/шансы/логит
func NewConvertService(curveCfg config.CurveConfig) service.ConvertService {
	return &serv{
		curveCfg: curveCfg,
	}
}
