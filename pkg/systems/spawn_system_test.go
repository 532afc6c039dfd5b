package systems

import (
	"testing"

	"github.com/decker502/ravens/pkg/components"
	"github.com/decker502/ravens/pkg/config"
	"github.com/decker502/ravens/pkg/ecs"
	"github.com/decker502/ravens/pkg/entities"
	"github.com/decker502/ravens/pkg/utils"
)

func TestSpawnSystemInterval(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewSpawnSystem(em, newTestRNG(), utils.NewColorPalette(), config.DefaultGameConfig(), 800, 600)

	// 500ms 时尚未超过间隔
	for i := 0; i < 5; i++ {
		if _, ok := system.Update(100); ok {
			t.Fatalf("should not spawn before the interval is exceeded (step %d)", i)
		}
	}

	id, ok := system.Update(1)
	if !ok {
		t.Fatal("should spawn once the interval is exceeded")
	}
	if system.Timer() != 0 {
		t.Errorf("timer should reset after spawning, got %f", system.Timer())
	}

	pos := mustPosition(t, em, id)
	if pos.X != 800 {
		t.Errorf("raven should spawn at the right edge, got %f", pos.X)
	}
}

func TestSpawnKeepsRavensSortedBySize(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewSpawnSystem(em, newTestRNG(), utils.NewColorPalette(), config.DefaultGameConfig(), 800, 600)

	for i := 0; i < 30; i++ {
		system.Update(501)

		ravens := ecs.GetEntitiesWith1[*components.RavenComponent](em)
		for j := 1; j < len(ravens); j++ {
			prev, _ := ecs.GetComponent[*components.RavenComponent](em, ravens[j-1])
			cur, _ := ecs.GetComponent[*components.RavenComponent](em, ravens[j])
			if prev.Width > cur.Width {
				t.Fatalf("ravens not sorted after spawn %d: %f before %f", i, prev.Width, cur.Width)
			}
		}
	}
}

func TestSortRavensBySizeIsStable(t *testing.T) {
	em := ecs.NewEntityManager()
	palette := utils.NewColorPalette()

	a := addTestRaven(t, em, palette, entities.RavenParams{SizeModifier: 0.8})
	b := addTestRaven(t, em, palette, entities.RavenParams{SizeModifier: 0.5})
	c := addTestRaven(t, em, palette, entities.RavenParams{SizeModifier: 0.8})
	d := addTestRaven(t, em, palette, entities.RavenParams{SizeModifier: 0.4})

	SortRavensBySize(em)

	got := ecs.GetEntitiesWith1[*components.RavenComponent](em)
	want := []ecs.EntityID{d, b, a, c}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
