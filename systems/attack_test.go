package systems

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/components"
	"github.com/automoto/fpsmelee/shared/gamemath"
)

func TestAttackTimeline(t *testing.T) {
	h := newHarness(t)
	h.forceActive()

	if !TryAttack(h.w, h.weapon, cfg.SideLeft) {
		t.Fatal("attack at t=0 rejected")
	}
	if got := h.data().NextAttackTime; got != 350*ms {
		t.Fatalf("NextAttackTime = %v, want 350ms", got)
	}

	h.advanceTo(100 * ms)
	if got := h.data().Resolved; got != 1 {
		t.Fatalf("resolved at 100ms = %d, want 1", got)
	}
	if TryAttack(h.w, h.weapon, cfg.SideLeft) {
		t.Fatal("attack at t=100ms accepted during cooldown")
	}

	h.advanceTo(360 * ms)
	if !TryAttack(h.w, h.weapon, cfg.SideRight) {
		t.Fatal("attack at t=360ms rejected")
	}
	if got := h.data().NextAttackTime; got != 710*ms {
		t.Fatalf("NextAttackTime = %v, want 710ms", got)
	}

	h.advanceTo(459 * ms)
	if got := h.data().Resolved; got != 1 {
		t.Fatalf("second attack resolved early at 459ms")
	}
	h.advanceTo(460 * ms)
	if got := h.data().Resolved; got != 2 {
		t.Fatalf("resolved at 460ms = %d, want 2", got)
	}
	if got := h.data().Committed; got != 2 {
		t.Errorf("committed = %d, want 2", got)
	}
	if h.arms.played(cfg.CueAttackLeft) != 1 || h.arms.played(cfg.CueAttackRight) != 1 {
		t.Errorf("cues = %v, want one left and one right attack", h.arms.cues)
	}
}

func TestRejectedIntentDoesNotOverwriteCooldown(t *testing.T) {
	h := newHarness(t)
	h.forceActive()

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(200 * ms)
	if TryAttack(h.w, h.weapon, cfg.SideLeft) {
		t.Fatal("attack accepted during cooldown")
	}
	if got := h.data().NextAttackTime; got != 350*ms {
		t.Errorf("NextAttackTime = %v after rejected intent, want 350ms", got)
	}
	if got := PendingActions(h.w, h.weapon.Entity()); got != 0 {
		t.Errorf("pending actions = %d, want 0", got)
	}
}

func TestAcceptedAttacksRespectCooldown(t *testing.T) {
	h := newHarness(t)
	h.forceActive()

	var accepted []time.Duration
	tick := TickDuration()
	for Now(h.w) < 2*time.Second {
		if TryAttack(h.w, h.weapon, cfg.SideLeft) {
			accepted = append(accepted, Now(h.w))
		}
		h.advance(tick)
	}

	if len(accepted) < 2 {
		t.Fatalf("accepted %d attacks in 2s, want several", len(accepted))
	}
	for i := 1; i < len(accepted); i++ {
		if gap := accepted[i] - accepted[i-1]; gap < 350*ms {
			t.Errorf("attacks %d and %d are %v apart, want >= 350ms", i-1, i, gap)
		}
	}
	if h.data().Resolved != len(accepted) {
		t.Errorf("resolved %d of %d attacks", h.data().Resolved, len(accepted))
	}
}

func TestAttackHitAppliesDamageAndImpulse(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	SeedRandom(h.w, 7)

	receiver := &recordingReceiver{}
	target := h.addCollider(colliderSpec{
		fp:        boxAhead(1.5),
		layer:     cfg.LayerTarget,
		receiver:  receiver,
		rigidBody: true,
	})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(100 * ms)

	if len(receiver.calls) != 1 {
		t.Fatalf("damage calls = %d, want 1", len(receiver.calls))
	}
	call := receiver.calls[0]
	if call.amount < 15 || call.amount > 30 {
		t.Errorf("damage %d outside [15, 30]", call.amount)
	}
	if call.kind != cfg.DamageGeneric {
		t.Errorf("damage type = %d, want 0", call.kind)
	}
	if call.source != gamemath.V3(10, 0, 10) {
		t.Errorf("source = %v, want attacker root position", call.source)
	}
	want := gamemath.V3(10, 1.6, 8.5)
	if call.hit.Sub(want).Length() > 1e-9 {
		t.Errorf("hit point = %v, want %v", call.hit, want)
	}

	rb := components.RigidBody.Get(target)
	if math.Abs(rb.Velocity.Z+6) > 1e-9 || rb.Velocity.X != 0 {
		t.Errorf("velocity = %v, want 6 along -Z", rb.Velocity)
	}
	if len(h.arms.hits) != 1 {
		t.Errorf("hit signals = %d, want 1", len(h.arms.hits))
	}
}

func TestAttackHitWithoutBodyOrReceiver(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	h.addCollider(colliderSpec{fp: boxAhead(1.5), layer: cfg.LayerDefault})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(100 * ms)

	if len(h.arms.hits) != 1 {
		t.Fatalf("hit signals = %d, want 1", len(h.arms.hits))
	}
	if h.arms.hits[0].Sub(gamemath.V3(10, 1.6, 8.5)).Length() > 1e-9 {
		t.Errorf("hit point = %v", h.arms.hits[0])
	}
	if h.data().LastHitAt != 100*ms {
		t.Errorf("LastHitAt = %v, want 100ms", h.data().LastHitAt)
	}
}

func TestAttackDamagesOnlyTheStruckCollider(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	rootReceiver := &recordingReceiver{}
	// The root sits behind the camera, out of the ray.
	root := h.addCollider(colliderSpec{
		fp:       gamemath.Box{Min: gamemath.V3(9.5, 0, 11), Max: gamemath.V3(10.5, 2, 12)},
		layer:    cfg.LayerTarget,
		receiver: rootReceiver,
	})
	h.addCollider(colliderSpec{fp: boxAhead(1), layer: cfg.LayerTarget, root: root})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(100 * ms)

	if len(h.arms.hits) != 1 {
		t.Fatalf("hit signals = %d, want 1", len(h.arms.hits))
	}
	if len(rootReceiver.calls) != 0 {
		t.Errorf("root receiver got %d calls, want 0", len(rootReceiver.calls))
	}
}

func TestAttackMissHasNoEffect(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	receiver := &recordingReceiver{}
	h.addCollider(colliderSpec{fp: boxAhead(2.5), layer: cfg.LayerTarget, receiver: receiver})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(100 * ms)

	if len(receiver.calls) != 0 || len(h.arms.hits) != 0 {
		t.Errorf("miss produced damage %v or hits %v", receiver.calls, h.arms.hits)
	}
	if h.data().Resolved != 1 {
		t.Errorf("resolved = %d, want 1", h.data().Resolved)
	}
}

func TestAttackNeverDamagesOwnRoot(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	receiver := &recordingReceiver{}
	self := h.addCollider(colliderSpec{
		fp:        boxAhead(0.5),
		layer:     cfg.LayerTarget,
		root:      h.character,
		receiver:  receiver,
		rigidBody: true,
	})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(100 * ms)

	if len(receiver.calls) != 0 {
		t.Errorf("own root took damage: %v", receiver.calls)
	}
	if v := components.RigidBody.Get(self).Velocity; !v.IsZero() {
		t.Errorf("own root was pushed: %v", v)
	}
	if len(h.arms.hits) != 1 {
		t.Errorf("hit signals = %d, want 1", len(h.arms.hits))
	}
}

func TestAttackUsesCameraAtResolution(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	receiver := &recordingReceiver{}
	// Target off to the +X side; the camera turns toward it during the windup.
	h.addCollider(colliderSpec{
		fp:       gamemath.Box{Min: gamemath.V3(11, 0, 9.5), Max: gamemath.V3(11.5, 2, 10.5)},
		layer:    cfg.LayerTarget,
		receiver: receiver,
	})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(50 * ms)
	components.Camera.Get(h.camera).Forward = gamemath.V3(1, 0, 0)
	h.advanceTo(100 * ms)

	if len(receiver.calls) != 1 {
		t.Errorf("damage calls = %d, want 1 after turning toward the target", len(receiver.calls))
	}
}

func TestAttackLayerMask(t *testing.T) {
	h := newHarness(t)
	h.forceActive()
	receiver := &recordingReceiver{}
	h.addCollider(colliderSpec{fp: boxAhead(1), layer: cfg.LayerCharacter, receiver: receiver})

	TryAttack(h.w, h.weapon, cfg.SideLeft)
	h.advanceTo(100 * ms)

	if len(receiver.calls) != 0 || len(h.arms.hits) != 0 {
		t.Errorf("collider outside AffectedLayers was hit")
	}
}

func TestDamageSamplingBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 42))
	const n = 10000
	seen := make(map[int]bool)
	sum := 0
	for i := 0; i < n; i++ {
		d := SampleDamage(r, 15, 30)
		if d < 15 || d > 30 {
			t.Fatalf("sample %d outside [15, 30]", d)
		}
		seen[d] = true
		sum += d
	}
	mean := float64(sum) / n
	if math.Abs(mean-22.5) > 0.3 {
		t.Errorf("mean = %.3f, want about 22.5", mean)
	}
	if len(seen) != 16 {
		t.Errorf("saw %d distinct values, want all 16", len(seen))
	}
}

func TestSampleDamageDegenerateRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	if got := SampleDamage(r, 20, 20); got != 20 {
		t.Errorf("SampleDamage(20, 20) = %d", got)
	}
}

func TestSeedRandomIsDeterministic(t *testing.T) {
	a, b := newHarness(t), newHarness(t)
	SeedRandom(a.w, 99)
	SeedRandom(b.w, 99)
	ra, rb := getOrCreateRandom(a.w).Rand, getOrCreateRandom(b.w).Rand
	for i := 0; i < 100; i++ {
		if x, y := SampleDamage(ra, 15, 30), SampleDamage(rb, 15, 30); x != y {
			t.Fatalf("sample %d differs: %d vs %d", i, x, y)
		}
	}
	if RandomSeed(a.w) != 99 {
		t.Errorf("RandomSeed = %d, want 99", RandomSeed(a.w))
	}
}
