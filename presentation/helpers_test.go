package presentation

import (
	"math/rand/v2"
	"testing"

	"spellslinger-go/application/capture"
	"spellslinger-go/core/eventbus"
	"spellslinger-go/domain/label"
	"spellslinger-go/domain/stroke"
	"spellslinger-go/infrastructure/dataset"
)

const testCanvasSize = 64

func newTestBridge(t *testing.T, bus eventbus.EventBus) (*UIEventBridge, string) {
	t.Helper()

	reg := label.NewRegistry()
	for i, name := range []string{"Fireball", "Ice Shard"} {
		if err := reg.Register(label.Label{Key: i, Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	root := t.TempDir()
	sess := capture.New(&capture.Config{
		RunID:    "ui-test",
		Labels:   reg,
		Samples:  dataset.NewStore(root, nil),
		Stroke:   &stroke.Config{Size: testCanvasSize, Width: 4},
		EventBus: bus,
		Rand:     rand.New(rand.NewPCG(3, 4)),
	})

	b := NewUIEventBridge(&BridgeConfig{
		Session:  sess,
		Labels:   reg,
		EventBus: bus,
	})
	t.Cleanup(b.Close)
	return b, root
}
