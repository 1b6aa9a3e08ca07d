package systems

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/pthm-cable/dragon/components"
)

var testBoard = Board{Width: 800, Height: 600, CellSize: 40}

// noFood is never reachable by a wrapped head.
var noFood = components.Cell{X: -1, Y: -1}

func cell(x, y int) components.Cell { return components.Cell{X: x, Y: y} }

func TestBoardValidate(t *testing.T) {
	if err := testBoard.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := []Board{
		{Width: 0, Height: 600, CellSize: 40},
		{Width: 800, Height: 600, CellSize: 0},
		{Width: 810, Height: 600, CellSize: 40},
	}
	for _, b := range bad {
		if err := b.Validate(); !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidBoard", b, err)
		}
	}
}

func TestBoardDimensions(t *testing.T) {
	if testBoard.Columns() != 20 || testBoard.Rows() != 15 || testBoard.TotalCells() != 300 {
		t.Errorf("got %d cols, %d rows, %d cells; want 20, 15, 300",
			testBoard.Columns(), testBoard.Rows(), testBoard.TotalCells())
	}
	if c := testBoard.Center(); c != cell(400, 300) {
		t.Errorf("Center() = %v, want (400,300)", c)
	}
}

func TestWrapAxis(t *testing.T) {
	tests := []struct {
		name   string
		v      int
		extent int
		want   int
	}{
		{"inside", 360, 800, 360},
		{"zero", 0, 800, 0},
		{"last cell", 760, 800, 760},
		{"positive overshoot x", 800, 800, 0},
		{"negative overshoot x", -40, 800, 760},
		{"positive overshoot y", 600, 600, 0},
		{"negative overshoot y", -40, 600, 560},
		{"off-grid positive overshoot", 620, 600, 0},
		{"off-grid negative overshoot", -20, 600, 560},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testBoard.WrapAxis(tt.v, tt.extent); got != tt.want {
				t.Errorf("WrapAxis(%d, %d) = %d, want %d", tt.v, tt.extent, got, tt.want)
			}
		})
	}
}

func TestWrapCellAlwaysInside(t *testing.T) {
	for x := -40; x <= 800; x += 20 {
		for y := -40; y <= 600; y += 20 {
			got := testBoard.WrapCell(cell(x, y))
			if !testBoard.Contains(got) {
				t.Fatalf("WrapCell((%d,%d)) = %v, outside board", x, y, got)
			}
		}
	}
}

func TestPlaceFoodAvoidsBody(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	small := Board{Width: 120, Height: 80, CellSize: 40} // 6 cells

	body := []components.Cell{cell(0, 0), cell(40, 0), cell(80, 0), cell(0, 40), cell(40, 40)}
	for i := 0; i < 200; i++ {
		got, ok := PlaceFood(rng, small, body)
		if !ok {
			t.Fatal("PlaceFood reported a full board with one free cell")
		}
		if got != cell(80, 40) {
			t.Fatalf("PlaceFood = %v, want the only free cell (80,40)", got)
		}
	}
}

func TestPlaceFoodGridAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	body := []components.Cell{cell(400, 300)}

	for i := 0; i < 500; i++ {
		got, ok := PlaceFood(rng, testBoard, body)
		if !ok {
			t.Fatal("unexpected full board")
		}
		if got.X%40 != 0 || got.Y%40 != 0 || !testBoard.Contains(got) {
			t.Fatalf("PlaceFood = %v, not a grid cell on the board", got)
		}
		if slices.Contains(body, got) {
			t.Fatalf("PlaceFood = %v, on the body", got)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tiny := Board{Width: 80, Height: 40, CellSize: 40}

	_, ok := PlaceFood(rng, tiny, []components.Cell{cell(0, 0), cell(40, 0)})
	if ok {
		t.Error("PlaceFood on a full board returned ok")
	}
}

func TestStepMovesAndKeepsLength(t *testing.T) {
	c := &components.Creature{
		Body:      []components.Cell{cell(400, 280), cell(360, 280), cell(320, 280)},
		Direction: components.Right,
		Pending:   components.Right,
	}

	res := Step(c, testBoard, noFood)

	if res.Collided || res.Ate {
		t.Fatalf("Step result = %+v, want plain move", res)
	}
	want := []components.Cell{cell(440, 280), cell(400, 280), cell(360, 280)}
	if !slices.Equal(c.Body, want) {
		t.Errorf("body = %v, want %v", c.Body, want)
	}
}

func TestStepEatsAndGrows(t *testing.T) {
	c := components.NewCreature(cell(400, 300))

	res := Step(c, testBoard, cell(440, 300))

	if !res.Ate || res.Collided {
		t.Fatalf("Step result = %+v, want Ate", res)
	}
	want := []components.Cell{cell(440, 300), cell(400, 300)}
	if !slices.Equal(c.Body, want) {
		t.Errorf("body = %v, want %v", c.Body, want)
	}
}

func TestStepWrapsLeftEdge(t *testing.T) {
	c := &components.Creature{
		Body:      []components.Cell{cell(0, 300), cell(40, 300)},
		Direction: components.Left,
		Pending:   components.Left,
	}

	res := Step(c, testBoard, noFood)

	if res.Collided {
		t.Fatal("unexpected collision")
	}
	want := []components.Cell{cell(760, 300), cell(0, 300)}
	if !slices.Equal(c.Body, want) {
		t.Errorf("body = %v, want %v", c.Body, want)
	}
}

func TestStepWrapsVertically(t *testing.T) {
	down := &components.Creature{Body: []components.Cell{cell(400, 580)}, Direction: components.Down, Pending: components.Down}
	Step(down, testBoard, noFood)
	if down.Head() != cell(400, 0) {
		t.Errorf("head after moving down off the board = %v, want (400,0)", down.Head())
	}

	up := &components.Creature{Body: []components.Cell{cell(400, 0)}, Direction: components.Up, Pending: components.Up}
	Step(up, testBoard, noFood)
	if up.Head() != cell(400, 560) {
		t.Errorf("head after moving up off the board = %v, want (400,560)", up.Head())
	}
}

func TestStepCommitsPending(t *testing.T) {
	c := components.NewCreature(cell(400, 280))
	c.Pending = components.Up

	Step(c, testBoard, noFood)

	if c.Direction != components.Up {
		t.Errorf("direction = %s, want up", c.Direction)
	}
	if c.Head() != cell(400, 240) {
		t.Errorf("head = %v, want (400,240)", c.Head())
	}
}

func TestStepSelfCollisionLeavesBody(t *testing.T) {
	body := []components.Cell{cell(400, 300), cell(440, 300), cell(440, 340), cell(400, 340)}
	c := &components.Creature{
		Body:      slices.Clone(body),
		Direction: components.Up,
		Pending:   components.Right,
	}

	res := Step(c, testBoard, noFood)

	if !res.Collided {
		t.Fatal("expected collision moving into (440,300)")
	}
	if res.Head != cell(440, 300) {
		t.Errorf("collision head = %v, want (440,300)", res.Head)
	}
	if !slices.Equal(c.Body, body) {
		t.Errorf("body mutated on collision: %v", c.Body)
	}
}

func TestStepCollidesWithVacatingTail(t *testing.T) {
	// A 2x2 loop: the head's next cell is the current tail, which would be
	// vacated this step. It still counts as a collision.
	c := &components.Creature{
		Body:      []components.Cell{cell(40, 40), cell(80, 40), cell(80, 80), cell(40, 80)},
		Direction: components.Left,
		Pending:   components.Down,
	}

	if res := Step(c, testBoard, noFood); !res.Collided {
		t.Errorf("Step into tail cell = %+v, want collision", res)
	}
}

func TestStepLengthDeltaProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	c := components.NewCreature(cell(400, 280))
	food, _ := PlaceFood(rng, testBoard, c.Body)

	for i := 0; i < 2000; i++ {
		// Random legal turn
		d := components.Directions[rng.Intn(4)]
		if !d.IsOpposite(c.Direction) {
			c.Pending = d
		}

		before := c.Len()
		prevFood := food
		snapshot := slices.Clone(c.Body)

		res := Step(c, testBoard, food)
		if res.Collided {
			if !slices.Equal(c.Body, snapshot) {
				t.Fatalf("tick %d: body mutated on collision", i)
			}
			c.Reset(cell(400, 280))
			food, _ = PlaceFood(rng, testBoard, c.Body)
			continue
		}

		delta := c.Len() - before
		ate := c.Head() == prevFood
		switch {
		case ate && delta != 1:
			t.Fatalf("tick %d: ate but length delta %d", i, delta)
		case !ate && delta != 0:
			t.Fatalf("tick %d: moved but length delta %d", i, delta)
		case res.Ate != ate:
			t.Fatalf("tick %d: Ate=%v, head on food=%v", i, res.Ate, ate)
		}
		if c.Len() == 0 {
			t.Fatalf("tick %d: empty body", i)
		}
		if ate {
			var ok bool
			food, ok = PlaceFood(rng, testBoard, c.Body)
			if !ok {
				t.Fatalf("tick %d: board unexpectedly full", i)
			}
			if c.Occupies(food) {
				t.Fatalf("tick %d: food %v placed on body", i, food)
			}
		}
	}
}

func TestStepPanicsOnEmptyBody(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty body")
		}
	}()
	Step(&components.Creature{}, testBoard, noFood)
}
