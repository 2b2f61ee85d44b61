package orchestrator

import (
	"context"
	"sync"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

// Task は非同期に実行されるバッチのハンドルです。
// Progress チャネルは実行終了時にクローズされます。
type Task struct {
	progress chan domain.BatchProgress
	done     chan struct{}
	cancel   context.CancelFunc

	mu       sync.RWMutex
	snapshot domain.BatchProgress
	summary  domain.BatchSummary
}

// newTask は n 件を処理するタスクを生成します。
// 1件につき開始と決着の2回、加えて初期と終了の通知を送るため、チャネルは送信でブロックしません。
func newTask(n int, cancel context.CancelFunc) *Task {
	return &Task{
		progress: make(chan domain.BatchProgress, 2*n+2),
		done:     make(chan struct{}),
		cancel:   cancel,
	}
}

// finishedTask は何も処理しないまま完了したタスクを返します。
func finishedTask(label string, summary domain.BatchSummary) *Task {
	t := newTask(0, func() {})
	t.publish(domain.BatchProgress{CurrentLabel: label, Done: true})
	t.finish(summary)
	return t
}

// Progress は進捗スナップショットを受け取るチャネルを返します。
func (t *Task) Progress() <-chan domain.BatchProgress {
	return t.progress
}

// Snapshot は最新の進捗を返します。チャネルを購読しない呼び出し側向けです。
func (t *Task) Snapshot() domain.BatchProgress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot
}

// Done は実行終了時にクローズされるチャネルを返します。
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel は次の項目へ進む前に実行を止めます。処理中の項目は決着まで待ちます。
func (t *Task) Cancel() {
	t.cancel()
}

// Wait は実行終了を待ってサマリーを返します。ctx が先に終わった場合はそのエラーを返します。
func (t *Task) Wait(ctx context.Context) (domain.BatchSummary, error) {
	select {
	case <-t.done:
		t.mu.RLock()
		defer t.mu.RUnlock()
		return t.summary, nil
	case <-ctx.Done():
		return domain.BatchSummary{}, ctx.Err()
	}
}

func (t *Task) publish(p domain.BatchProgress) {
	t.mu.Lock()
	t.snapshot = p
	t.mu.Unlock()

	select {
	case t.progress <- p:
	default:
	}
}

func (t *Task) finish(summary domain.BatchSummary) {
	t.mu.Lock()
	t.summary = summary
	t.mu.Unlock()
	close(t.progress)
	close(t.done)
}
