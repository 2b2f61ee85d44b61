package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-asset-kit/internal/builder"
	"github.com/shouni/go-asset-kit/internal/pipeline"
)

// generateCmd は、アセット一覧のうち pending のものを順番に生成するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "アセット一覧の画像を順番に生成するのだ。",
	Long: `--records の JSON を読み込み、選択された pending のアセットを1件ずつ生成するのだ。
外部サービスの流量制限を守るため、並列には生成しないのだよ。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.Limit > 0 {
			cfg.Kit.MaxBatchSize = opts.Limit
		}
		m, err := builder.BuildManager(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}

		slog.Info("アセット生成を開始するのだ！",
			"text_model", cfg.Kit.GeminiModel,
			"image_model", cfg.Kit.ImageModel,
			"records", opts.RecordsFile)

		_, err = pipeline.ExecuteGenerate(cmd.Context(), m, opts)
		return err
	},
}

// retryCmd は、failed のアセットだけを再生成するのだ。
var retryCmd = &cobra.Command{
	Use:   "retry",
	Short: "失敗したアセットだけを再生成するのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := builder.BuildManager(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		_, err = pipeline.ExecuteRetry(cmd.Context(), m, opts)
		return err
	},
}

func init() {
	generateCmd.Flags().StringSliceVarP(&opts.Select, "select", "s", nil, "生成するアセット ID（省略時は全件）なのだ。")
	generateCmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "1回で生成する最大件数なのだ。0 なら選択された pending を全部生成するのだ。")
}
