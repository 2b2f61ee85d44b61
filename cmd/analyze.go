package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shouni/go-asset-kit/internal/builder"
	"github.com/shouni/go-asset-kit/internal/pipeline"
)

// analyzeCmd は、ゲームコンセプトから必要なアセット一覧を作るのだ。
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "ゲームコンセプトを分析してアセット一覧を作るのだ。",
	Long: `コンセプト文を AI に渡して、キャラクター・アイテム・UI などのアセット一覧を作るのだ。
結果は --records で指定した JSON に保存されるのだよ。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := builder.BuildManager(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		_, err = pipeline.ExecuteAnalyze(cmd.Context(), m, opts)
		return err
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&opts.Concept, "concept", "", "ゲームコンセプトの文章なのだ。")
	analyzeCmd.Flags().StringVarP(&opts.ConceptFile, "concept-file", "f", "", "ゲームコンセプトを書いたファイルなのだ。")
}
