package systems

import (
	"testing"
	"time"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/transform"
)

const time1s = time.Second

func TestSelectThenImmediateAttackDoesNothing(t *testing.T) {
	h := newHarness(t)
	Select(h.w, h.weapon)

	if h.data().Active {
		t.Fatal("weapon active immediately after Select")
	}
	if TryAttack(h.w, h.weapon, cfg.SideLeft) {
		t.Fatal("attack accepted during the draw")
	}
	if Interact(h.w, h.weapon) {
		t.Fatal("interact accepted during the draw")
	}
	if h.data().Committed != 0 || h.arms.played(cfg.CueAttackLeft) != 0 {
		t.Errorf("draw-time intent left traces: committed=%d cues=%v", h.data().Committed, h.arms.cues)
	}
	if !h.arms.initialized || h.arms.played(cfg.CueDraw) != 1 {
		t.Errorf("animator not initialized or draw cue missing: %v", h.arms.cues)
	}
}

func TestSelectActivatesAfterDraw(t *testing.T) {
	h := newHarness(t)
	Select(h.w, h.weapon)

	h.advanceTo(399 * ms)
	if h.data().Active {
		t.Fatal("active before the draw finished")
	}
	h.advanceTo(400 * ms)
	if !h.data().Active {
		t.Fatal("not active once the draw finished")
	}
	if !h.loc().ReadyToVault {
		t.Error("ReadyToVault not set on activation")
	}
	if !h.ctx.ActionMaps.Enabled(cfg.MapMelee) {
		t.Error("melee action map not enabled")
	}
	if !TryAttack(h.w, h.weapon, cfg.SideLeft) {
		t.Error("attack rejected after activation")
	}
}

func TestSelectInitializesAnimatorOnce(t *testing.T) {
	h := newHarness(t)
	Select(h.w, h.weapon)
	h.advanceTo(400 * ms)
	Deselect(h.w, h.weapon)
	Select(h.w, h.weapon)

	if h.arms.inits != 1 {
		t.Errorf("animator initialized %d times, want 1", h.arms.inits)
	}
	if h.arms.played(cfg.CueDraw) != 2 {
		t.Errorf("draw cues = %d, want 2", h.arms.played(cfg.CueDraw))
	}
}

func TestDeselect(t *testing.T) {
	h := newHarness(t)
	Select(h.w, h.weapon)
	h.advanceTo(400 * ms)

	Deselect(h.w, h.weapon)
	if h.data().Active {
		t.Error("active after Deselect")
	}
	if h.loc().ReadyToVault {
		t.Error("ReadyToVault still set after Deselect")
	}
	if h.arms.played(cfg.CueHide) != 1 {
		t.Errorf("hide cues = %d, want 1", h.arms.played(cfg.CueHide))
	}
	if h.ctx.ActionMaps.Enabled(cfg.MapMelee) {
		t.Error("melee action map still enabled")
	}
	if TryAttack(h.w, h.weapon, cfg.SideLeft) || Interact(h.w, h.weapon) {
		t.Error("action authorized while inactive")
	}
}

func TestDeselectCancelsPendingWindup(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	receiver := &recordingReceiver{}
	h.addCollider(colliderSpec{fp: boxAhead(1), layer: cfg.LayerTarget, receiver: receiver})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(50 * ms)
	Deselect(h.w, h.weapon)
	h.advanceTo(200 * ms)

	if h.data().Resolved != 0 || len(receiver.calls) != 0 || len(h.arms.hits) != 0 {
		t.Errorf("cancelled windup still resolved: resolved=%d damage=%v", h.data().Resolved, receiver.calls)
	}
	if h.data().Pending != nil {
		t.Error("pending attack kept after Deselect")
	}
	if h.data().NextAttackTime != 350*ms {
		t.Errorf("NextAttackTime = %v, want the committed 350ms", h.data().NextAttackTime)
	}
}

func TestDeselectDuringDrawCancelsActivation(t *testing.T) {
	h := newHarness(t)
	Select(h.w, h.weapon)
	h.advanceTo(200 * ms)
	Deselect(h.w, h.weapon)
	h.advanceTo(1000 * ms)

	if h.data().Active {
		t.Error("weapon activated after being deselected mid-draw")
	}
	if h.loc().ReadyToVault {
		t.Error("ReadyToVault set by a cancelled draw")
	}
}

func TestInteractWindow(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	h.advanceTo(time1s)

	if !Interact(h.w, h.weapon) {
		t.Fatal("interact rejected")
	}
	// max(600ms animation, 500ms delay)
	if got := h.data().NextInteractTime; got != time1s+600*ms {
		t.Fatalf("NextInteractTime = %v, want 1.6s", got)
	}
	if h.arms.played(cfg.CueInteract) != 1 {
		t.Errorf("interact cue missing")
	}

	h.advanceTo(time1s + 599*ms)
	if TryAttack(h.w, h.weapon, cfg.SideLeft) {
		t.Fatal("attack accepted inside the interact window")
	}
	if Interact(h.w, h.weapon) {
		t.Fatal("interact accepted inside the interact window")
	}
	h.advanceTo(time1s + 600*ms)
	if !TryAttack(h.w, h.weapon, cfg.SideLeft) {
		t.Fatal("attack rejected once the interact window closed")
	}
}

func TestInteractUsesLongerDelay(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	h.data().InteractDelay = 900 * ms

	Interact(h.w, h.weapon)
	if got := h.data().NextInteractTime; got != 900*ms {
		t.Errorf("NextInteractTime = %v, want 900ms", got)
	}
}

func TestSelectParentsVisualUnderSwingRoot(t *testing.T) {
	h := newHarness(t)
	second := h.newWeapon("offhand")

	Select(h.w, h.weapon)
	Select(h.w, second)

	root, ok := SwingRootOf(h.w, h.character)
	if !ok {
		t.Fatal("no swing root created for the character")
	}
	for _, entry := range []*donburi.Entry{h.weapon, second} {
		visual := components.Weapon.Get(entry).VisualRoot
		parent, ok := transform.GetParent(visual)
		if !ok || parent.Entity() != root.Entity() {
			t.Errorf("%s visual root not parented under the shared swing root", components.Weapon.Get(entry).Name)
		}
	}
	if n := len(getOrCreateSwingRoots(h.w).Roots); n != 1 {
		t.Errorf("swing roots = %d, want 1 per character", n)
	}
}
