package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '█', ColorBrown)
	if c := s.GetCell(3, 4); c.Rune != '█' || c.Color != ColorBrown {
		t.Errorf("GetCell(3, 4) = %+v", c)
	}

	// Out of bounds writes are ignored and reads return blank
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRectColored(NewRect(0, 0, 4, 2), '#', ColorGreen)
	s.Clear()

	if c := s.GetCell(2, 1); c != blank {
		t.Errorf("after Clear cell = %+v, expected blank", c)
	}
}

func TestScreenDrawTextClipsAndCounts(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(17, 0, "Höhe", ColorYellow)

	if s.Get(17, 0) != 'H' || s.Get(18, 0) != 'ö' || s.Get(19, 0) != 'h' {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if s.GetCell(18, 0).Color != ColorYellow {
		t.Error("DrawTextColored should keep color")
	}

	s.DrawTextCentered(2, "Hi")
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered: row 2 = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "AAAAA")
	s.DrawHLine(0, 1, 5, '=')

	if got := s.String(); got != "AAAAA\n=====" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(8, 3)
	if !strings.HasPrefix(s.Row(0), "AAAAA") || len(s.Row(0)) != 8 {
		t.Errorf("Resize should preserve content, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "        " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
