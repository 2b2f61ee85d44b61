package workflow

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shouni/go-asset-kit/pkg/adapters"
	"github.com/shouni/go-asset-kit/pkg/config"
	"github.com/shouni/go-asset-kit/pkg/prompts"
)

// ManagerArgs は Manager の初期化に必要な依存関係です。
// TextModel と ImageModel が nil の場合は Config の API キーから genai クライアントを作ります。
// AnalyzerModel が nil の場合、TextModel が渡されていればそれを使い、
// なければ go-gemini-client のクライアントを作ります。
type ManagerArgs struct {
	Config        config.Config
	TextModel     adapters.TextModel
	AnalyzerModel adapters.TextModel
	ImageModel    adapters.ImageModel
	PromptBuilder prompts.Builder
	Registerer    prometheus.Registerer
}
