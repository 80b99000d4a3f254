package geom

import "testing"

func TestMat3Mul(t *testing.T) {
	a := Mat3{
		{1, 0, 0},
		{0, 0, -1},
		{0, 1, 0},
	}
	b := Mat3{
		{2, 0, 0},
		{0, 2, 0},
		{0, 0, 2},
	}
	got := a.Mul(b)
	want := Mat3{
		{2, 0, 0},
		{0, 0, -2},
		{0, 2, 0},
	}
	if got != want {
		t.Errorf("Mat3.Mul() = %v, want %v", got, want)
	}
}

func TestMulRect(t *testing.T) {
	a := [][]float32{
		{1, 2, 3},
		{4, 5, 6},
	}
	b := [][]float32{
		{7, 8},
		{9, 10},
		{11, 12},
	}
	got := MulRect(a, b)
	want := [][]float32{
		{58, 64},
		{139, 154},
	}
	if len(got) != 2 || len(got[0]) != 2 {
		t.Fatalf("MulRect shape = %dx%d, want 2x2", len(got), len(got[0]))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("MulRect[%d][%d] = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestMulRectMat3Agree(t *testing.T) {
	m := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	}
	n := Mat3{
		{-1, 0, 2},
		{3, 1, 0},
		{0, -2, 1},
	}
	rect := MulRect(
		[][]float32{m[0][:], m[1][:], m[2][:]},
		[][]float32{n[0][:], n[1][:], n[2][:]},
	)
	fixed := m.Mul(n)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if rect[i][j] != fixed[i][j] {
				t.Errorf("MulRect and Mat3.Mul disagree at [%d][%d]: %v vs %v",
					i, j, rect[i][j], fixed[i][j])
			}
		}
	}
}
