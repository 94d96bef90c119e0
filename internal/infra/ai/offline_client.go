package ai

import (
	"context"
	"strings"

	"mazraa/internal/domain/entity"
)

// offlineClient is a deterministic stand-in used when no API key is
// configured, so the full flow stays exercisable in development.
type offlineClient struct{}

// NewOffline builds the offline client.
func NewOffline() Client { return &offlineClient{} }

// Diagnose always reports a healthy plant with general care advice.
func (m *offlineClient) Diagnose(_ context.Context, _ string) (*entity.DiagnosisResult, error) {
	return &entity.DiagnosisResult{
		DiseaseName:          "نبتة سليمة",
		Confidence:           100,
		Symptoms:             []string{"لا توجد أعراض مرضية ظاهرة"},
		RecommendedTreatment: "لا حاجة لعلاج. واصل الري المنتظم والتسميد المتوازن.",
		PreventiveMeasures:   "افحص النباتات دوريًا وتجنب الإفراط في الري للحفاظ على صحة الجذور.",
	}, nil
}

// Reply answers with a canned advisory keyed on a few common topics.
func (m *offlineClient) Reply(_ context.Context, _ []entity.ChatMessage, message string) (string, error) {
	switch {
	case strings.Contains(message, "ري") || strings.Contains(message, "ماء"):
		return "يُفضل الري في الصباح الباكر أو عند الغروب، ويوفر الري بالتنقيط حتى 70% من المياه.", nil
	case strings.Contains(message, "سماد") || strings.Contains(message, "تسميد"):
		return "استخدم الكمبوست والمخلفات الحيوانية لتحسين خصوبة التربة، وتجنب الإفراط في الأسمدة النيتروجينية.", nil
	case strings.Contains(message, "مرض") || strings.Contains(message, "آفة") || strings.Contains(message, "حشرة"):
		return "افحص الأوراق من الجهتين بانتظام، وأزل الأجزاء المصابة فورًا. زيت النيم مكافح طبيعي فعال لمعظم الآفات.", nil
	default:
		return "أهلًا بك! اسألني عن الري أو التسميد أو أمراض النباتات وسأساعدك بإذن الله.", nil
	}
}
