package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene 记录收到的调用
type recordingScene struct {
	updates []float64
	draws   int
}

func (s *recordingScene) Update(deltaTime float64) {
	s.updates = append(s.updates, deltaTime)
}

func (s *recordingScene) Draw(screen *ebiten.Image) {
	s.draws++
}

func TestSceneManagerStartsEmpty(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("expected no scene initially")
	}

	// 没有场景时不应 panic
	sm.Update(16)
	sm.Draw(nil)
}

func TestSceneManagerForwardsToCurrent(t *testing.T) {
	sm := NewSceneManager()
	scene := &recordingScene{}
	sm.SwitchTo(scene)

	sm.Update(16)
	sm.Update(33)
	sm.Draw(nil)

	if len(scene.updates) != 2 || scene.updates[0] != 16 || scene.updates[1] != 33 {
		t.Errorf("expected updates [16 33], got %v", scene.updates)
	}
	if scene.draws != 1 {
		t.Errorf("expected 1 draw, got %d", scene.draws)
	}
}

func TestSceneManagerSwitch(t *testing.T) {
	sm := NewSceneManager()
	first, second := &recordingScene{}, &recordingScene{}

	sm.SwitchTo(first)
	sm.Update(16)
	sm.SwitchTo(second)
	sm.Update(16)
	sm.Draw(nil)

	if len(first.updates) != 1 || first.draws != 0 {
		t.Errorf("first scene should only see the first update, got %d updates %d draws", len(first.updates), first.draws)
	}
	if len(second.updates) != 1 || second.draws != 1 {
		t.Errorf("second scene should see one update and one draw, got %d updates %d draws", len(second.updates), second.draws)
	}
	if sm.GetCurrentScene() != second {
		t.Error("GetCurrentScene should return the second scene")
	}

	sm.SwitchTo(nil)
	sm.Update(16)
	if len(second.updates) != 1 {
		t.Error("no scene should receive updates after switching to nil")
	}
}
