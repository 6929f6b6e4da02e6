package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(42, 22)

	if s.Width() != 42 {
		t.Errorf("Width() = %d, expected 42", s.Width())
	}
	if s.Height() != 22 {
		t.Errorf("Height() = %d, expected 22", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != '●' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red dot", cell)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.SetColored(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "SCORE")

	if got := s.Row(1); got != "  SCORE   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorYellow)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3, ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox produced:\n%s\nexpected:\n%s", got, want)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'z')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  z" {
		t.Errorf("unexpected lines %q", lines)
	}
	if s.Row(5) != "   " {
		t.Error("Row out of range should return blank line")
	}
}
