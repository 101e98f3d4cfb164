package physics

import (
	"errors"
	"math"
	"testing"
	"time"
)

func mustCreate(t *testing.T, w *World, spec BodySpec) BodyID {
	t.Helper()
	id, err := w.CreateBody(spec)
	if err != nil {
		t.Fatalf("create %q: %v", spec.Label, err)
	}
	if err := w.Add(id); err != nil {
		t.Fatalf("add %q: %v", spec.Label, err)
	}
	return id
}

func TestCreateBodyValidation(t *testing.T) {
	w := NewWorld()
	bad := []BodySpec{
		{Shape: ShapeRect, Width: 0, Height: 5},
		{Shape: ShapeRect, Width: 5, Height: -1},
		{Shape: ShapeCircle, Radius: 0},
		{Shape: ShapeRect, X: math.NaN(), Width: 1, Height: 1},
		{Shape: Shape(9), Width: 1, Height: 1},
	}
	for i, spec := range bad {
		if _, err := w.CreateBody(spec); !errors.Is(err, ErrInvalidBody) {
			t.Errorf("case %d: expected ErrInvalidBody, got %v", i, err)
		}
	}

	if err := w.Add(BodyID(42)); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
}

func TestBodiesOnlyAdded(t *testing.T) {
	w := NewWorld()
	a, _ := w.CreateBody(BodySpec{Shape: ShapeRect, Width: 1, Height: 1, Label: "a"})
	_, _ = w.CreateBody(BodySpec{Shape: ShapeRect, Width: 1, Height: 1, Label: "b"})
	if err := w.Add(a, a); err != nil {
		t.Fatal(err)
	}

	bodies := w.Bodies()
	if len(bodies) != 1 || bodies[0].Label != "a" {
		t.Errorf("expected only body a, got %+v", bodies)
	}
}

func TestGravityMovesOnlyDynamic(t *testing.T) {
	w := NewWorld()
	dyn := mustCreate(t, w, BodySpec{Shape: ShapeRect, Width: 2, Height: 2, Label: "dyn"})
	static := mustCreate(t, w, BodySpec{Shape: ShapeRect, X: 100, Width: 2, Height: 2, Static: true, Label: "static"})
	w.SetGravity(0, 1000)

	for i := 0; i < 100; i++ {
		w.Step(10 * time.Millisecond)
	}

	b, _ := w.Body(dyn)
	_, y := b.Center()
	if math.Abs(y-505) > 1 {
		t.Errorf("expected dynamic body near y=505 after 1s, got %v", y)
	}

	s, _ := w.Body(static)
	if _, sy := s.Center(); sy != 0 {
		t.Errorf("static body moved to y=%v", sy)
	}
}

func TestCollisionStartReportedOnce(t *testing.T) {
	w := NewWorld()
	wall := mustCreate(t, w, BodySpec{Shape: ShapeRect, X: 100, Y: 50, Width: 10, Height: 100, Static: true, Label: "wall"})
	ball := mustCreate(t, w, BodySpec{Shape: ShapeCircle, X: 50, Y: 50, Radius: 10, Label: "ball"})
	w.SetVelocity(ball, 300, 0)

	var starts []Pair
	for i := 0; i < 60; i++ {
		starts = append(starts, w.Step(16*time.Millisecond)...)
	}

	if len(starts) != 1 {
		t.Fatalf("expected exactly one collision start, got %v", starts)
	}
	if starts[0] != MakePair(wall, ball) {
		t.Errorf("unexpected pair %v", starts[0])
	}

	b, _ := w.Body(ball)
	if x, _ := b.Center(); x > 85.01 {
		t.Errorf("ball penetrated the wall: x=%v", x)
	}
	if vx, _ := w.Velocity(ball); vx > 0 {
		t.Errorf("approaching velocity should be cancelled, got vx=%v", vx)
	}
}

func TestContactRestartsAfterSeparation(t *testing.T) {
	w := NewWorld()
	mustCreate(t, w, BodySpec{Shape: ShapeRect, X: 100, Y: 50, Width: 10, Height: 100, Static: true, Label: "wall"})
	ball := mustCreate(t, w, BodySpec{Shape: ShapeCircle, X: 80, Y: 50, Radius: 10, Label: "ball"})

	w.SetVelocity(ball, 100, 0)
	if got := len(w.Step(50 * time.Millisecond)); got != 1 {
		t.Fatalf("expected contact start, got %d", got)
	}

	w.SetVelocity(ball, -100, 0)
	if got := len(w.Step(100 * time.Millisecond)); got != 0 {
		t.Fatalf("expected no start while separating, got %d", got)
	}

	w.SetVelocity(ball, 200, 0)
	if got := len(w.Step(100 * time.Millisecond)); got != 1 {
		t.Errorf("expected a new contact start after separation, got %d", got)
	}
}

func TestStaticPairsIgnored(t *testing.T) {
	w := NewWorld()
	mustCreate(t, w, BodySpec{Shape: ShapeRect, Width: 10, Height: 10, Static: true})
	mustCreate(t, w, BodySpec{Shape: ShapeRect, X: 2, Width: 10, Height: 10, Static: true})

	if got := w.Step(16 * time.Millisecond); len(got) != 0 {
		t.Errorf("static-static overlap must not report, got %v", got)
	}
}

func TestDynamicPairSeparates(t *testing.T) {
	w := NewWorld()
	a := mustCreate(t, w, BodySpec{Shape: ShapeRect, Width: 10, Height: 10})
	b := mustCreate(t, w, BodySpec{Shape: ShapeRect, X: 6, Width: 10, Height: 10})

	if got := w.Step(time.Millisecond); len(got) != 1 {
		t.Fatalf("expected one start, got %v", got)
	}

	ba, _ := w.Body(a)
	bb, _ := w.Body(b)
	ax, _ := ba.Center()
	bx, _ := bb.Center()
	if bx-ax < 9.99 {
		t.Errorf("bodies still overlap: %v..%v", ax, bx)
	}
	if math.Abs(ax+2) > 1e-6 || math.Abs(bx-8) > 1e-6 {
		t.Errorf("expected symmetric push-out to -2 and 8, got %v and %v", ax, bx)
	}
}

func TestSetStaticClearsVelocity(t *testing.T) {
	w := NewWorld()
	id := mustCreate(t, w, BodySpec{Shape: ShapeRect, Width: 1, Height: 1})
	w.SetVelocity(id, 5, 5)
	w.SetStatic(id, true)

	if vx, vy := w.Velocity(id); vx != 0 || vy != 0 {
		t.Errorf("expected zero velocity, got (%v,%v)", vx, vy)
	}
	if !w.IsStatic(id) {
		t.Error("expected static")
	}

	w.SetStatic(id, false)
	if w.IsStatic(id) {
		t.Error("expected dynamic")
	}
}

func TestCapSpeed(t *testing.T) {
	w := NewWorld(WithMaxSpeed(100))
	id := mustCreate(t, w, BodySpec{Shape: ShapeCircle, Radius: 1})
	w.SetVelocity(id, 300, 400)
	w.Step(time.Millisecond)

	vx, vy := w.Velocity(id)
	if mag := math.Hypot(vx, vy); math.Abs(mag-100) > 0.01 {
		t.Errorf("expected speed capped to 100, got %v", mag)
	}
}
