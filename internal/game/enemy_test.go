package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/turkey-shoot/internal/core"
)

func testCatalog() *Catalog {
	return &Catalog{
		Enemies:       map[string]EnemySpec{},
		PowerUps:      map[string]PowerUpSpec{},
		SineAmplitude: 10,
		SineFrequency: 0.25,
		ZigzagSpeed:   0.15,
	}
}

func spawnTestEnemy(t *testing.T, spec EnemySpec, speedMult float64) *Enemy {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	return NewEnemy(spec, testCatalog(), rng, 80, 5, speedMult)
}

func TestEnemySpawnPosition(t *testing.T) {
	spec := EnemySpec{Kind: "cranberry", Width: 4, Height: 2, Speed: 0.1, Health: 1, Movement: MoveStraight}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		e := NewEnemy(spec, testCatalog(), rng, 80, 5, 1)
		if e.X < 5 || e.X > 80-5-spec.Width {
			t.Fatalf("spawn x = %v outside margins", e.X)
		}
		if e.Y != -spec.Height {
			t.Fatalf("spawn y = %v, want %v", e.Y, -spec.Height)
		}
	}
}

func TestEnemySpeedMultiplier(t *testing.T) {
	spec := EnemySpec{Kind: "cranberry", Width: 4, Height: 2, Speed: 0.1, Health: 1, Movement: MoveStraight}
	e := spawnTestEnemy(t, spec, 1.5)
	if !almostEqual(e.Speed, 0.15) {
		t.Errorf("effective speed = %v, want 0.15", e.Speed)
	}
}

func TestStraightDescent(t *testing.T) {
	spec := EnemySpec{Kind: "cranberry", Width: 4, Height: 2, Speed: 0.1, Health: 1, Movement: MoveStraight}
	e := spawnTestEnemy(t, spec, 1)
	startX := e.X
	startY := e.Y

	for i := 0; i < 50; i++ {
		e.Update(80, nil)
	}
	if e.X != startX {
		t.Errorf("straight enemy drifted: x %v -> %v", startX, e.X)
	}
	if !almostEqual(e.Y, startY+50*0.1) {
		t.Errorf("y = %v, want %v", e.Y, startY+50*0.1)
	}
}

func TestZigzagBounces(t *testing.T) {
	spec := EnemySpec{Kind: "mashed_potato", Width: 6, Height: 3, Speed: 0.08, Health: 2, Movement: MoveZigzag}
	e := spawnTestEnemy(t, spec, 1)

	sawLeftEdge := false
	sawRightEdge := false
	for i := 0; i < 2000; i++ {
		e.Update(80, nil)
		if e.X < 0 || e.X+spec.Width > 80 {
			t.Fatalf("tick %d: zigzag escaped screen, x = %v", i, e.X)
		}
		if e.X == 0 {
			sawLeftEdge = true
		}
		if e.X+spec.Width == 80 {
			sawRightEdge = true
		}
	}
	if !sawLeftEdge || !sawRightEdge {
		t.Errorf("zigzag never reached both edges (left %v, right %v)", sawLeftEdge, sawRightEdge)
	}
}

func TestSpawnRandomizesMotion(t *testing.T) {
	sine := EnemySpec{Kind: "pumpkin_pie", Width: 7, Height: 3, Speed: 0.08, Health: 2, Movement: MoveSineWave}
	zig := EnemySpec{Kind: "mashed_potato", Width: 6, Height: 3, Speed: 0.08, Health: 2, Movement: MoveZigzag}
	rng := rand.New(rand.NewSource(3))

	phases := make(map[float64]bool)
	sawLeft, sawRight := false, false
	for i := 0; i < 50; i++ {
		s := NewEnemy(sine, testCatalog(), rng, 80, 5, 1)
		if s.phase < 0 || s.phase >= 2*math.Pi {
			t.Fatalf("phase = %v outside [0, 2pi)", s.phase)
		}
		phases[s.phase] = true

		z := NewEnemy(zig, testCatalog(), rng, 80, 5, 1)
		switch z.zigzagDir {
		case 1:
			sawRight = true
		case -1:
			sawLeft = true
		default:
			t.Fatalf("zigzagDir = %v, want +1 or -1", z.zigzagDir)
		}
	}
	if len(phases) < 2 {
		t.Error("every sine enemy spawned with the same phase")
	}
	if !sawLeft || !sawRight {
		t.Errorf("zigzag starting direction never varied (left %v, right %v)", sawLeft, sawRight)
	}
}

func TestSineWaveStaysOnScreen(t *testing.T) {
	spec := EnemySpec{Kind: "pumpkin_pie", Width: 7, Height: 3, Speed: 0.08, Health: 2, Movement: MoveSineWave}
	e := spawnTestEnemy(t, spec, 1)
	center := e.X

	var maxDrift float64
	for i := 0; i < 500; i++ {
		e.Update(80, nil)
		if e.X < 0 || e.X+spec.Width > 80 {
			t.Fatalf("tick %d: sine enemy off screen, x = %v", i, e.X)
		}
		if d := math.Abs(e.X - center); d > maxDrift {
			maxDrift = d
		}
	}
	if maxDrift == 0 {
		t.Error("sine enemy never oscillated")
	}
	if maxDrift > 10+1e-9 {
		t.Errorf("sine drift %v exceeds amplitude 10", maxDrift)
	}
}

func TestTrackPlayerMovesTowardTarget(t *testing.T) {
	spec := EnemySpec{Kind: "turkey", Width: 10, Height: 4, Speed: 0.055, Health: 3, Movement: MoveTrackPlayer}
	e := spawnTestEnemy(t, spec, 1)
	tgt := core.PointF{X: 40, Y: 20}

	cx, cy := e.Center()
	before := math.Hypot(tgt.X-cx, tgt.Y-cy)
	for i := 0; i < 100; i++ {
		e.Update(80, &tgt)
	}
	cx, cy = e.Center()
	after := math.Hypot(tgt.X-cx, tgt.Y-cy)
	if after >= before {
		t.Errorf("tracker did not close distance: %v -> %v", before, after)
	}
}

func TestTrackPlayerNilTargetFallsStraight(t *testing.T) {
	spec := EnemySpec{Kind: "turkey", Width: 10, Height: 4, Speed: 0.055, Health: 3, Movement: MoveTrackPlayer}
	e := spawnTestEnemy(t, spec, 1)
	startX := e.X

	for i := 0; i < 20; i++ {
		e.Update(80, nil)
	}
	if e.X != startX {
		t.Errorf("tracker drifted with nil target: %v -> %v", startX, e.X)
	}
	if e.Y <= -spec.Height {
		t.Error("tracker did not descend with nil target")
	}
}

func TestTrackPlayerAtTargetHolds(t *testing.T) {
	spec := EnemySpec{Kind: "turkey", Width: 10, Height: 4, Speed: 0.055, Health: 3, Movement: MoveTrackPlayer}
	e := spawnTestEnemy(t, spec, 1)
	cx, cy := e.Center()
	tgt := core.PointF{X: cx, Y: cy}

	e.Update(80, &tgt)
	nx, ny := e.Center()
	if nx != cx || ny != cy {
		t.Errorf("enemy at target moved: (%v,%v) -> (%v,%v)", cx, cy, nx, ny)
	}
}

func TestTakeDamageDestroysOnce(t *testing.T) {
	spec := EnemySpec{Kind: "stuffing", Width: 6, Height: 2, Speed: 0.06, Health: 3, Points: 30, Movement: MoveStraight}
	e := spawnTestEnemy(t, spec, 1)

	if e.TakeDamage() {
		t.Error("destroyed at health 2")
	}
	if e.TakeDamage() {
		t.Error("destroyed at health 1")
	}
	if !e.TakeDamage() {
		t.Error("not destroyed at health 0")
	}
	if e.Active {
		t.Error("still active after destruction")
	}
	if e.TakeDamage() {
		t.Error("destroyed twice")
	}
}
