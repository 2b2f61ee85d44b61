package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/prompts"
	"github.com/shouni/go-asset-kit/pkg/style"
)

func newTestEnhancer(t *testing.T, model *fakeTextModel, c *cache.Cache) *Enhancer {
	t.Helper()
	pb, err := prompts.NewTextPromptBuilder()
	require.NoError(t, err)
	return NewEnhancer(model, pb, time.Second, c)
}

func TestEnhancer_Enhance(t *testing.T) {
	desc := style.NewResolver().Resolve(domain.StyleWeapon)

	t.Run("モデル出力のコードフェンスと空白が除去されること", func(t *testing.T) {
		model := &fakeTextModel{text: "  ```text\nA glowing frost sword, rim light\n```  "}
		e := newTestEnhancer(t, model, nil)

		got := e.Enhance(context.Background(), "ice sword", desc)

		assert.Equal(t, "A glowing frost sword, rim light", got)
		require.Len(t, model.calls, 1)
		assert.Contains(t, model.calls[0].SystemInstruction, desc.PromptPrefix)
		assert.Contains(t, model.calls[0].UserText, "ice sword")
		assert.Equal(t, float32(0.7), model.calls[0].Temperature)
		assert.Equal(t, int32(200), model.calls[0].MaxOutputTokens)
	})

	t.Run("モデルがエラーを返してもフォールバックが返ること", func(t *testing.T) {
		model := &fakeTextModel{err: errors.New("unavailable")}
		e := newTestEnhancer(t, model, nil)

		got := e.Enhance(context.Background(), "ice sword", desc)

		assert.NotEmpty(t, got)
		assert.Contains(t, got, desc.PromptPrefix)
		assert.Contains(t, got, "ice sword")
		assert.Contains(t, got, prompts.QualityBooster)
	})

	t.Run("空の出力もフォールバック扱いになること", func(t *testing.T) {
		e := newTestEnhancer(t, &fakeTextModel{text: "   "}, nil)
		got := e.Enhance(context.Background(), "ice sword", desc)
		assert.Equal(t, prompts.FallbackPrompt(desc.PromptPrefix, "ice sword"), got)
	})

	t.Run("モデル未設定でもフォールバックが返ること", func(t *testing.T) {
		pb, err := prompts.NewTextPromptBuilder()
		require.NoError(t, err)
		e := NewEnhancer(nil, pb, 0, nil)
		assert.Contains(t, e.Enhance(context.Background(), "ice sword", desc), "ice sword")
	})

	t.Run("成功結果はキャッシュされること", func(t *testing.T) {
		model := &fakeTextModel{text: "cached prompt"}
		e := newTestEnhancer(t, model, cache.New(time.Minute, time.Minute))

		first := e.Enhance(context.Background(), "ice sword", desc)
		second := e.Enhance(context.Background(), "ice sword", desc)

		assert.Equal(t, first, second)
		assert.Len(t, model.calls, 1)
	})

	t.Run("フォールバック結果はキャッシュされないこと", func(t *testing.T) {
		model := &fakeTextModel{err: errors.New("down")}
		e := newTestEnhancer(t, model, cache.New(time.Minute, time.Minute))

		e.Enhance(context.Background(), "ice sword", desc)
		e.Enhance(context.Background(), "ice sword", desc)

		assert.Len(t, model.calls, 2)
	})
}

func TestCleanModelText(t *testing.T) {
	assert.Equal(t, "hello", CleanModelText("```\nhello\n```"))
	assert.Equal(t, "hello", CleanModelText("```markdown hello```"))
	assert.Equal(t, "plain text", CleanModelText("  plain text \n"))
}
