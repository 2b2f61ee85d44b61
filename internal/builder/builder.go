package builder

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shouni/go-asset-kit/internal/config"
	"github.com/shouni/go-asset-kit/pkg/workflow"
)

// BuildManager は環境設定から Manager を構築するのだ。
// reg が nil の場合はメトリクスを記録しないのだ。
func BuildManager(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*workflow.Manager, error) {
	if err := cfg.Kit.Validate(); err != nil {
		return nil, fmt.Errorf("設定が不正なのだ: %w", err)
	}

	m, err := workflow.New(ctx, workflow.ManagerArgs{
		Config:     cfg.Kit,
		Registerer: reg,
	})
	if err != nil {
		return nil, fmt.Errorf("ワークフローの初期化に失敗しました: %w", err)
	}
	return m, nil
}
