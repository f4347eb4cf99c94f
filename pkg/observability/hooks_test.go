package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type stageEvent struct {
	stage string
	start bool
	err   error
}

type recordingPipelineHooks struct {
	mu     sync.Mutex
	events []stageEvent
}

func (h *recordingPipelineHooks) OnStageStart(_ context.Context, stage string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, stageEvent{stage: stage, start: true})
}

func (h *recordingPipelineHooks) OnStageComplete(_ context.Context, stage string, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, stageEvent{stage: stage, err: err})
}

type countingCacheHooks struct{ hits, misses, sets int }

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	NoopPipelineHooks{}.OnStageStart(ctx, StageFetch)
	NoopPipelineHooks{}.OnStageComplete(ctx, StageFetch, time.Second, nil)

	NoopCacheHooks{}.OnCacheHit(ctx, "http")
	NoopCacheHooks{}.OnCacheMiss(ctx, "s3")
	NoopCacheHooks{}.OnCacheSet(ctx, "http", 1024)

	NoopHTTPHooks{}.OnRequest(ctx, "GET", "example.org", "/data.json")
	NoopHTTPHooks{}.OnResponse(ctx, "GET", "example.org", "/data.json", 200, time.Second)
	NoopHTTPHooks{}.OnError(ctx, "GET", "example.org", "/data.json", nil)
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should default to NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should default to NoopHTTPHooks")
	}

	p := &recordingPipelineHooks{}
	SetPipelineHooks(p)
	SetPipelineHooks(nil)
	if Pipeline() != p {
		t.Error("SetPipelineHooks(nil) should keep the registered hooks")
	}

	c := &countingCacheHooks{}
	SetCacheHooks(c)
	Cache().OnCacheHit(context.Background(), "http")
	if c.hits != 1 {
		t.Errorf("hits = %d, want 1", c.hits)
	}

	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestStage(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	p := &recordingPipelineHooks{}
	SetPipelineHooks(p)

	boom := errors.New("boom")
	ctx := context.Background()
	Stage(ctx, StageFetch)(nil)
	Stage(ctx, StageParse)(boom)

	want := []stageEvent{
		{stage: StageFetch, start: true},
		{stage: StageFetch},
		{stage: StageParse, start: true},
		{stage: StageParse, err: boom},
	}
	if len(p.events) != len(want) {
		t.Fatalf("events = %+v", p.events)
	}
	for i := range want {
		if p.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, p.events[i], want[i])
		}
	}
}
