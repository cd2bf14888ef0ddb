package fixer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/fixer"
	"github.com/zoobzio/fixer/fixertest"
)

// runNextPosted waits for work handed to the host and runs it.
func runNextPosted(t *testing.T, doc *fixertest.Document) {
	t.Helper()
	select {
	case fn := <-doc.Posted():
		fn()
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for posted work")
	}
}

func TestFollow_AppliesDocuments(t *testing.T) {
	h := fixertest.NewHarness()
	rec := &fixertest.Recorder{}

	tr := h.New(t, rec.Install(h.Config()))
	h.ScrollTo(700)
	fixertest.RequireState(t, tr, fixer.StateBottom)

	source := make(chan []byte, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := tr.Follow(ctx, fixer.NewChannelWatcher(source), fixer.YAMLCodec{}); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	source <- []byte("reverse: true\nsensitivity: 15\nclasses:\n  prefix: nav\n")
	runNextPosted(t, h.Doc)

	got := tr.Config()
	if !got.Reverse || got.Sensitivity != 15 {
		t.Errorf("expected followed config applied, got reverse=%v sensitivity=%d", got.Reverse, got.Sensitivity)
	}
	if got.Container != fixer.Node(h.Container) {
		t.Error("expected container kept")
	}
	if got.Callbacks.OnScroll == nil {
		t.Error("expected callbacks kept")
	}
	fixertest.RequireClass(t, h.Container, "nav-container")
	fixertest.RequireNoClass(t, h.Container, "fixer-container")
	fixertest.RequireState(t, tr, fixer.StateDefault)
	if tr.LastError() != nil {
		t.Errorf("expected no error, got %v", tr.LastError())
	}
}

func TestFollow_RejectsInvalidDocument(t *testing.T) {
	h := fixertest.NewHarness()

	tr := h.New(t, h.Config())

	source := make(chan []byte, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := tr.Follow(ctx, fixer.NewChannelWatcher(source), fixer.JSONCodec{}); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	source <- []byte(`{"sensitivity": -4}`)
	runNextPosted(t, h.Doc)

	if !errors.Is(tr.LastError(), fixer.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", tr.LastError())
	}
	if tr.Config().Sensitivity != 0 {
		t.Error("expected previous config kept")
	}

	source <- []byte(`{not json`)
	runNextPosted(t, h.Doc)

	if !errors.Is(tr.LastError(), fixer.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for malformed document, got %v", tr.LastError())
	}
	fixertest.RequireClass(t, h.Container, "fixer-container")
}

func TestFollow_IgnoredAfterDestroy(t *testing.T) {
	h := fixertest.NewHarness()

	tr := h.New(t, h.Config())

	source := make(chan []byte, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := tr.Follow(ctx, fixer.NewChannelWatcher(source), fixer.YAMLCodec{}); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	source <- []byte("reverse: true\n")
	tr.Destroy()
	runNextPosted(t, h.Doc)

	if tr.Config().Reverse {
		t.Error("expected destroyed tracker to ignore followed config")
	}
	if h.Doc.TotalSubscribers() != 0 {
		t.Errorf("expected no subscriptions, got %d", h.Doc.TotalSubscribers())
	}

	if err := tr.Follow(ctx, fixer.NewChannelWatcher(source), fixer.YAMLCodec{}); !errors.Is(err, fixer.ErrDestroyed) {
		t.Errorf("expected ErrDestroyed, got %v", err)
	}
}

// ctxWatcher records the context it was started with.
type ctxWatcher struct {
	fixer.Watcher
	ctx context.Context
}

func (w *ctxWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	w.ctx = ctx
	return w.Watcher.Watch(ctx)
}

func TestFollow_DestroyReleasesWatcher(t *testing.T) {
	h := fixertest.NewHarness()

	tr := h.New(t, h.Config())

	source := make(chan []byte)
	w := &ctxWatcher{Watcher: fixer.NewChannelWatcher(source)}

	if err := tr.Follow(context.Background(), w, fixer.YAMLCodec{}); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if w.ctx.Err() != nil {
		t.Fatal("expected watcher context live while following")
	}

	tr.Destroy()

	if !errors.Is(w.ctx.Err(), context.Canceled) {
		t.Fatalf("expected watcher context canceled by Destroy, got %v", w.ctx.Err())
	}

	time.Sleep(20 * time.Millisecond)
	select {
	case source <- []byte("reverse: true\n"):
		t.Error("expected watcher released after Destroy")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFollow_SurvivesReconfigure(t *testing.T) {
	h := fixertest.NewHarness()

	tr := h.New(t, h.Config())

	source := make(chan []byte, 1)
	w := &ctxWatcher{Watcher: fixer.NewChannelWatcher(source)}

	if err := tr.Follow(context.Background(), w, fixer.YAMLCodec{}); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	defer tr.Destroy()

	source <- []byte("sensitivity: 5\n")
	runNextPosted(t, h.Doc)

	if w.ctx.Err() != nil {
		t.Fatal("expected following to continue after a reload")
	}

	source <- []byte("sensitivity: 9\n")
	runNextPosted(t, h.Doc)

	if tr.Config().Sensitivity != 9 {
		t.Errorf("expected second document applied, got sensitivity %d", tr.Config().Sensitivity)
	}
}
