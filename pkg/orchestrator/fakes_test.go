package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/generator"
	"github.com/shouni/go-asset-kit/pkg/style"
)

type fakeEnhancer struct{}

func (fakeEnhancer) Enhance(_ context.Context, raw string, desc style.Descriptor) string {
	return string(desc.ID) + ":" + raw
}

// fakeImages は生のプロンプト単位で結果を切り替えます。
type fakeImages struct {
	mu     sync.Mutex
	fail   map[string]bool
	empty  map[string]bool
	panics map[string]bool
	onCall func(prompt string)
	calls  []string
	times  []time.Time
	block  chan struct{}
}

func (f *fakeImages) Generate(_ context.Context, prompt string, _ domain.AspectRatio) (*generator.ImageResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, prompt)
	f.times = append(f.times, time.Now())
	hook := f.onCall
	f.mu.Unlock()

	if hook != nil {
		hook(prompt)
	}
	if f.block != nil {
		<-f.block
	}

	raw := rawOf(prompt)
	switch {
	case f.panics[raw]:
		panic("boom")
	case f.fail[raw]:
		return nil, generator.ErrService
	case f.empty[raw]:
		return nil, generator.ErrEmptyResult
	}
	return &generator.ImageResult{Data: []byte("png:" + raw), MimeType: "image/png", PromptUsed: prompt}, nil
}

func (f *fakeImages) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallTimes は各呼び出しの開始時刻を呼び出し順に返します。
func (f *fakeImages) CallTimes() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.times...)
}

func rawOf(prompt string) string {
	for i := 0; i < len(prompt); i++ {
		if prompt[i] == ':' {
			return prompt[i+1:]
		}
	}
	return prompt
}

type fakeSink struct {
	mu      sync.Mutex
	entries []domain.GalleryEntry
}

func (s *fakeSink) Add(e domain.GalleryEntry) domain.GalleryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = "gallery-" + e.Prompt
	s.entries = append(s.entries, e)
	return e
}

func (s *fakeSink) Entries() []domain.GalleryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.GalleryEntry(nil), s.entries...)
}
