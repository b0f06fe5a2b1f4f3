package routes

import (
	"sipensiun/internal/cache"
	"sipensiun/internal/handler"
	"sipensiun/internal/metrics"
	"sipensiun/internal/render"
	"sipensiun/internal/repository"
	"sipensiun/internal/token"
	"sipensiun/internal/usecase"

	"go.uber.org/zap"
)

// Deps dirakit sekali di cmd/api lalu dibagikan ke semua Setup*Routes.
type Deps struct {
	Tokens *token.Manager
	Logger *zap.Logger
	Cache  *cache.Service

	ASN       repository.ASNRepository
	Role      repository.RoleRepository
	UnitKerja repository.UnitKerjaRepository

	Auth      *usecase.AuthUsecase
	Pengajuan *usecase.PengajuanUsecase
	Surat     *usecase.SuratUsecase

	Renderer        *render.Renderer
	PrintStylesheet string
	KodeSurat       []string
	Metrics         *metrics.Metrics
	DB              handler.Pinger
}
