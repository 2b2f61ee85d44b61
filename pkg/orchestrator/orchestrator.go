package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/generator"
	"github.com/shouni/go-asset-kit/pkg/store"
	"github.com/shouni/go-asset-kit/pkg/style"
)

const (
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
)

// GallerySink は生成成功ごとにエントリを受け取ります。
type GallerySink interface {
	Add(entry domain.GalleryEntry) domain.GalleryEntry
}

// Config はオーケストレーターの動作設定です。
type Config struct {
	PacingDelay time.Duration
	// MaxBatchSize は1回の RunBatch で処理する件数の上限です。0 以下なら上限なしです。
	MaxBatchSize int
	Metrics      *Metrics
}

// Orchestrator は選択されたレコードを1件ずつ順番に生成します。
// 外部サービスの流量制限があるため、1つのバッチ内で並列化はしません。
type Orchestrator struct {
	store    *store.Store
	resolver *style.Resolver
	enhancer generator.PromptEnhancer
	images   generator.ImageGenerator
	sink     GallerySink
	cfg      Config

	mu       sync.Mutex
	reserved map[string]struct{}
	regen    singleflight.Group
}

// New は Orchestrator を生成します。sink は nil でも構いません。
func New(
	st *store.Store,
	resolver *style.Resolver,
	enhancer generator.PromptEnhancer,
	images generator.ImageGenerator,
	sink GallerySink,
	cfg Config,
) *Orchestrator {
	if cfg.PacingDelay < 0 {
		cfg.PacingDelay = 0
	}
	return &Orchestrator{
		store:    st,
		resolver: resolver,
		enhancer: enhancer,
		images:   images,
		sink:     sink,
		cfg:      cfg,
		reserved: make(map[string]struct{}),
	}
}

// RunBatch は selection に含まれ、かつ pending のレコードを Store の順序で処理するタスクを開始します。
// 選択が空、または未知の ID を含む場合は何も変更せずにエラーを返します。
// 対象が0件の場合は即座に完了したタスクを返します。
func (o *Orchestrator) RunBatch(ctx context.Context, selection []string) (*Task, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	selected := make(map[string]struct{}, len(selection))
	for _, id := range selection {
		if _, err := o.store.Get(id); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRecord, id)
		}
		selected[id] = struct{}{}
	}

	var candidates []string
	for _, r := range o.store.List() {
		if _, ok := selected[r.ID]; ok && r.Status == domain.StatusPending {
			candidates = append(candidates, r.ID)
		}
	}

	ids := o.reserve(candidates, o.cfg.MaxBatchSize)
	remaining := len(candidates) - len(ids)
	if len(ids) == 0 {
		return finishedTask(domain.LabelDone, domain.BatchSummary{Remaining: remaining}), nil
	}

	return o.start(ctx, ids, domain.LabelDone, "batch", remaining), nil
}

// RetryFailed は現在 failed の全レコードを対象に同じ逐次処理を再実行します。
func (o *Orchestrator) RetryFailed(ctx context.Context) (*Task, error) {
	failed := o.store.IDsWithStatus(domain.StatusFailed)
	ids := o.reserve(failed, 0)
	if len(ids) == 0 {
		return finishedTask(domain.LabelRetryDone, domain.BatchSummary{}), nil
	}
	return o.start(ctx, ids, domain.LabelRetryDone, "retry", 0), nil
}

// RegenerateOne は1件だけを同期的に生成し直し、決着後のレコードを返します。
// 同じ ID への同時呼び出しは1回の実行を共有します。
func (o *Orchestrator) RegenerateOne(ctx context.Context, id string) (domain.AssetRecord, error) {
	v, err, _ := o.regen.Do(id, func() (any, error) {
		rec, err := o.store.Get(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRecord, id)
		}
		if rec.Status == domain.StatusGenerating {
			return nil, fmt.Errorf("%w: %s", ErrRecordBusy, id)
		}
		if len(o.reserve([]string{id}, 0)) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrRecordBusy, id)
		}
		defer o.release(id)

		o.process(ctx, id)
		o.cfg.Metrics.observeBatch("regenerate")
		return o.store.Get(id)
	})
	if err != nil {
		return domain.AssetRecord{}, err
	}
	return v.(domain.AssetRecord), nil
}

// Generate はレコードを介さずに1枚生成し、ギャラリーへ追加したエントリを返します。
// aspectRatio が空ならスタイルの既定値を使います。
func (o *Orchestrator) Generate(ctx context.Context, prompt string, styleID domain.Style, aspectRatio domain.AspectRatio) (domain.GalleryEntry, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return domain.GalleryEntry{}, ErrEmptyPrompt
	}

	desc := o.resolver.Resolve(styleID)
	if aspectRatio == "" {
		aspectRatio = desc.AspectRatio
	}
	aspectRatio = domain.CoerceAspectRatio(string(aspectRatio))

	started := time.Now()
	enhanced := o.enhancer.Enhance(ctx, prompt, desc)
	res, err := o.images.Generate(ctx, enhanced, aspectRatio)
	if err != nil {
		o.cfg.Metrics.observeRecord(outcomeFailed, time.Since(started).Seconds())
		return domain.GalleryEntry{}, fmt.Errorf("画像生成に失敗しました: %w", err)
	}
	o.cfg.Metrics.observeRecord(outcomeCompleted, time.Since(started).Seconds())

	entry := domain.GalleryEntry{
		Prompt:      prompt,
		Style:       desc.ID,
		ImageData:   res.Data,
		MimeType:    res.MimeType,
		AspectRatio: aspectRatio,
	}
	if o.sink != nil {
		entry = o.sink.Add(entry)
	}
	return entry, nil
}

// Busy は id が実行中のバッチまたは再生成に予約されているかを返します。
func (o *Orchestrator) Busy(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.reserved[id]
	return ok
}

// reserve は未予約の ID を順に予約して返します。limit が0以下なら上限なしです。
func (o *Orchestrator) reserve(ids []string, limit int) []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []string
	for _, id := range ids {
		if limit > 0 && len(out) >= limit {
			break
		}
		if _, busy := o.reserved[id]; busy {
			continue
		}
		o.reserved[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (o *Orchestrator) release(ids ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, id := range ids {
		delete(o.reserved, id)
	}
}

func (o *Orchestrator) start(ctx context.Context, ids []string, terminalLabel, kind string, remaining int) *Task {
	runCtx, cancel := context.WithCancel(ctx)
	task := newTask(len(ids), cancel)

	go func() {
		defer cancel()
		summary := o.run(runCtx, task, ids, terminalLabel)
		summary.Remaining = remaining
		o.cfg.Metrics.observeBatch(kind)
		task.finish(summary)
	}()
	return task
}

func (o *Orchestrator) run(ctx context.Context, task *Task, ids []string, terminalLabel string) domain.BatchSummary {
	logger := slog.With("batch_size", len(ids), "label", terminalLabel)
	logger.InfoContext(ctx, "Batch started")
	started := time.Now()

	progress := domain.BatchProgress{Total: len(ids)}
	task.publish(progress)

	processed := 0
	cancelled := false
	for i, id := range ids {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		if rec, err := o.store.Get(id); err == nil {
			progress.CurrentLabel = rec.Label()
		} else {
			progress.CurrentLabel = id
		}
		task.publish(progress)

		if o.process(context.WithoutCancel(ctx), id) {
			progress.CompletedCount++
		} else {
			progress.FailedCount++
		}
		o.release(id)
		processed++
		task.publish(progress)

		if i < len(ids)-1 {
			if err := o.pace(ctx); err != nil {
				cancelled = true
				break
			}
		}
	}
	o.release(ids[processed:]...)

	progress.CurrentLabel = terminalLabel
	progress.Done = true
	task.publish(progress)

	summary := domain.BatchSummary{
		Total:          progress.CompletedCount + progress.FailedCount,
		CompletedCount: progress.CompletedCount,
		FailedCount:    progress.FailedCount,
		Cancelled:      cancelled,
	}
	logger.InfoContext(ctx, "Batch finished",
		"successful", summary.CompletedCount,
		"failed", summary.FailedCount,
		"cancelled", cancelled,
		"duration", time.Since(started),
	)
	return summary
}

func (o *Orchestrator) pace(ctx context.Context) error {
	if o.cfg.PacingDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(o.cfg.PacingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// process は1件を generating から completed か failed まで決着させます。
// 予期しない panic も failed として扱い、ループを止めません。
func (o *Orchestrator) process(ctx context.Context, id string) (ok bool) {
	logger := slog.With("asset_id", id)
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Asset generation panicked", "panic", r)
			_, _ = o.store.MarkFailed(id)
			ok = false
		}
		outcome := outcomeFailed
		if ok {
			outcome = outcomeCompleted
		}
		o.cfg.Metrics.observeRecord(outcome, time.Since(started).Seconds())
	}()

	rec, err := o.store.MarkGenerating(id)
	if err != nil {
		logger.WarnContext(ctx, "Asset record disappeared before generation", "error", err)
		return false
	}

	desc := o.resolver.Resolve(rec.Style)
	enhanced := o.enhancer.Enhance(ctx, rec.Prompt, desc)

	res, err := o.images.Generate(ctx, enhanced, rec.AspectRatio)
	if err != nil {
		logger.WarnContext(ctx, "Asset generation failed", "style", desc.ID, "error", err)
		_, _ = o.store.MarkFailed(id)
		return false
	}

	if _, err := o.store.MarkCompleted(id, res.Data, res.MimeType, enhanced); err != nil {
		logger.WarnContext(ctx, "Asset record disappeared after generation", "error", err)
		return false
	}

	if o.sink != nil {
		o.sink.Add(domain.GalleryEntry{
			Prompt:      rec.Prompt,
			Style:       desc.ID,
			ImageData:   res.Data,
			MimeType:    res.MimeType,
			AspectRatio: rec.AspectRatio,
		})
	}
	logger.InfoContext(ctx, "Asset generated", "style", desc.ID, "duration", time.Since(started))
	return true
}
