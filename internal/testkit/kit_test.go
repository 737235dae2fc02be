package testkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRecordsAreValid(t *testing.T) {
	ds := MustDataset(DemoRecords())

	assert.Equal(t, 56, ds.Len())
	assert.Equal(t, 0.0, ds.MinPayload())
	assert.Equal(t, 9600.0, ds.MaxPayload())
	assert.ElementsMatch(t, Sites, ds.Sites())
}

func TestStaticSource_ReturnsCopy(t *testing.T) {
	src := NewStaticSource("fixture", ScenarioRecords())
	assert.Equal(t, "fixture", src.Describe())

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	first[0].LaunchSite = "changed"

	second, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SiteCCAFSLC40, second[0].LaunchSite)
}

func TestStaticSource_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDemoSource().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLaunchGenerator_Deterministic(t *testing.T) {
	cfg := DefaultLaunchConfig()
	a := NewLaunchGenerator(cfg).Generate()
	b := NewLaunchGenerator(cfg).Generate()

	require.Len(t, a, cfg.Count)
	assert.Equal(t, a, b)

	for _, r := range a {
		assert.NoError(t, r.Validate())
		assert.LessOrEqual(t, r.PayloadMassKg, cfg.MaxPayload)
		assert.Contains(t, cfg.Sites, r.LaunchSite)
	}
}
