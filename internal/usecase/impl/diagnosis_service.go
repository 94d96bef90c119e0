package impl

import (
	"context"
	"log/slog"
	"time"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/domain/repository"
	"mazraa/internal/domain/service"
	"mazraa/internal/i18n"
	"mazraa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// diagnosisService implements the DiagnosisUsecase interface.
type diagnosisService struct {
	diagnosisRepo repository.DiagnosisRepository
	diagnoser     service.CropDiagnoser
	logger        *slog.Logger
}

// DiagnosisServiceParams holds dependencies for diagnosisService, injected
// by Fx.
type DiagnosisServiceParams struct {
	fx.In

	DiagnosisRepo repository.DiagnosisRepository
	Diagnoser     service.CropDiagnoser
	Logger        *slog.Logger
}

// NewDiagnosisService is the constructor for diagnosisService.
func NewDiagnosisService(params DiagnosisServiceParams) usecase.DiagnosisUsecase {
	return &diagnosisService{
		diagnosisRepo: params.DiagnosisRepo,
		diagnoser:     params.Diagnoser,
		logger:        params.Logger,
	}
}

// Analyze runs the external AI diagnosis on a crop image. Failures surface
// as one generic error; nothing is retried.
func (srv *diagnosisService) Analyze(ctx context.Context, actor usecase.Actor, input *usecase.AnalyzeInput) (*entity.DiagnosisResult, error) {
	if actor.Role != entity.RoleFarmer {
		return nil, domainerrors.ErrFarmerOnly
	}
	if input.ImageBase64 == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("empty image payload")
	}

	result, err := srv.diagnoser.Diagnose(ctx, input.ImageBase64)
	if err != nil {
		srv.logger.Error("diagnosis failed", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, domainerrors.ErrDiagnosisFailed
	}

	return result, nil
}

// Save appends a timestamped record to the farmer's history.
func (srv *diagnosisService) Save(ctx context.Context, actor usecase.Actor, input *usecase.SaveDiagnosisInput) (*entity.SavedDiagnosis, error) {
	if actor.Role != entity.RoleFarmer {
		return nil, domainerrors.ErrFarmerOnly
	}

	record := &entity.SavedDiagnosis{
		ID:      uuid.New(),
		UserID:  actor.ID,
		Image:   input.ImageBase64,
		Result:  input.Result,
		SavedAt: time.Now(),
	}
	if err := srv.diagnosisRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "save diagnosis")
	}

	return record, nil
}

// History returns the caller's saved diagnoses, newest first.
func (srv *diagnosisService) History(ctx context.Context, actor usecase.Actor) ([]*entity.SavedDiagnosis, error) {
	if actor.Role != entity.RoleFarmer {
		return nil, domainerrors.ErrFarmerOnly
	}

	records, err := srv.diagnosisRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list diagnosis history")
	}

	return records, nil
}

// advisorService implements the AdvisorUsecase interface.
type advisorService struct {
	advisor service.AgriAdvisor
	logger  *slog.Logger
}

// AdvisorServiceParams holds dependencies for advisorService, injected by Fx.
type AdvisorServiceParams struct {
	fx.In

	Advisor service.AgriAdvisor
	Logger  *slog.Logger
}

// NewAdvisorService is the constructor for advisorService.
func NewAdvisorService(params AdvisorServiceParams) usecase.AdvisorUsecase {
	return &advisorService{
		advisor: params.Advisor,
		logger:  params.Logger,
	}
}

// Chat returns the advisor's reply. Collaborator failures degrade to the
// localized fallback string instead of an error status.
func (srv *advisorService) Chat(ctx context.Context, input *usecase.ChatInput, loc i18n.Locale) (string, error) {
	reply, err := srv.advisor.Reply(ctx, input.History, input.Message)
	if err != nil {
		srv.logger.Error("advisor reply failed", slog.Any("error", err))

		return i18n.MsgChatFallback.In(loc), nil
	}

	return reply, nil
}
