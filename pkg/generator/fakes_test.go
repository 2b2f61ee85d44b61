package generator

import (
	"context"
	"sync"

	"github.com/shouni/gemini-image-kit/ports"

	"github.com/shouni/go-asset-kit/pkg/adapters"
)

type fakeTextModel struct {
	mu    sync.Mutex
	text  string
	err   error
	calls []adapters.TextRequest
}

func (f *fakeTextModel) GenerateText(_ context.Context, req adapters.TextRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.text, f.err
}

type fakeImageModel struct {
	images []*ports.ImageResponse
	err    error
	reqs   []ports.GenerationOptions
	counts []int
}

func (f *fakeImageModel) GenerateImages(_ context.Context, req ports.GenerationOptions, count int) ([]*ports.ImageResponse, error) {
	f.reqs = append(f.reqs, req)
	f.counts = append(f.counts, count)
	return f.images, f.err
}
