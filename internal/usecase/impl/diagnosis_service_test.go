package impl

import (
	"context"
	"testing"
	"time"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/i18n"
	"mazraa/internal/infra/ai"
	"mazraa/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDiagnoser stands in for an unreachable AI collaborator.
type failingDiagnoser struct{}

func (failingDiagnoser) Diagnose(context.Context, string) (*entity.DiagnosisResult, error) {
	return nil, errors.New("upstream unavailable")
}

// failingAdvisor stands in for an unreachable chat collaborator.
type failingAdvisor struct{}

func (failingAdvisor) Reply(context.Context, []entity.ChatMessage, string) (string, error) {
	return "", errors.New("upstream unavailable")
}

func (env *testEnv) diagnosisService() usecase.DiagnosisUsecase {
	return NewDiagnosisService(DiagnosisServiceParams{
		DiagnosisRepo: env.diagnoses,
		Diagnoser:     ai.NewOffline(),
		Logger:        env.logger,
	})
}

func TestAnalyzeFarmerOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.diagnosisService()
	ctx := context.Background()

	input := &usecase.AnalyzeInput{ImageBase64: "aGVsbG8="}

	result, err := svc.Analyze(ctx, farmerActor(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, result.DiseaseName)
	assert.GreaterOrEqual(t, result.Confidence, 0)
	assert.LessOrEqual(t, result.Confidence, 100)

	_, err = svc.Analyze(ctx, merchantActor(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrFarmerOnly))

	_, err = svc.Analyze(ctx, guestActor(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrFarmerOnly))
}

func TestAnalyzeEmptyImage(t *testing.T) {
	env := newTestEnv(t)
	svc := env.diagnosisService()

	_, err := svc.Analyze(context.Background(), farmerActor(), &usecase.AnalyzeInput{})
	assert.Error(t, err)
}

func TestAnalyzeCollaboratorFailure(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDiagnosisService(DiagnosisServiceParams{
		DiagnosisRepo: env.diagnoses,
		Diagnoser:     failingDiagnoser{},
		Logger:        env.logger,
	})

	_, err := svc.Analyze(context.Background(), farmerActor(), &usecase.AnalyzeInput{ImageBase64: "aGVsbG8="})
	assert.True(t, errors.Is(err, domainerrors.ErrDiagnosisFailed))
}

func TestSaveAndHistoryNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := env.diagnosisService()
	ctx := context.Background()

	first, err := svc.Save(ctx, farmerActor(), &usecase.SaveDiagnosisInput{
		ImageBase64: "aW1hZ2Ux",
		Result:      entity.DiagnosisResult{DiseaseName: "البياض الدقيقي", Confidence: 88},
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second, err := svc.Save(ctx, farmerActor(), &usecase.SaveDiagnosisInput{
		ImageBase64: "aW1hZ2Uy",
		Result:      entity.DiagnosisResult{DiseaseName: "اللفحة المتأخرة", Confidence: 72},
	})
	require.NoError(t, err)

	history, err := svc.History(ctx, farmerActor())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
	assert.Equal(t, "اللفحة المتأخرة", history[0].Result.DiseaseName)

	// Another farmer sees nothing.
	other, err := env.accountService().Register(ctx, &usecase.RegisterInput{
		Name: "مزارع آخر", Username: "other", Password: "pass1234", Role: entity.RoleFarmer,
	})
	require.NoError(t, err)

	otherHistory, err := svc.History(ctx, usecase.Actor{ID: other.User.ID, Role: entity.RoleFarmer})
	require.NoError(t, err)
	assert.Empty(t, otherHistory)
}

func TestChatFallbackOnFailure(t *testing.T) {
	env := newTestEnv(t)

	working := NewAdvisorService(AdvisorServiceParams{Advisor: ai.NewOffline(), Logger: env.logger})
	reply, err := working.Chat(context.Background(), &usecase.ChatInput{Message: "كيف أحسن الري؟"}, i18n.LocaleArabic)
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.NotEqual(t, i18n.MsgChatFallback.In(i18n.LocaleArabic), reply)

	broken := NewAdvisorService(AdvisorServiceParams{Advisor: failingAdvisor{}, Logger: env.logger})
	reply, err = broken.Chat(context.Background(), &usecase.ChatInput{Message: "سؤال"}, i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, i18n.MsgChatFallback.In(i18n.LocaleArabic), reply)
}
