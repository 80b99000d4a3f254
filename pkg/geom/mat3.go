package geom

// Mat3 is a 3x3 matrix, row-major: Mat3[row][col].
type Mat3 [3][3]float32

// Mat3FromBasis builds a matrix whose row i is basis vector i.
func Mat3FromBasis(b Basis3) Mat3 {
	return Mat3{
		{b.X.X, b.X.Y, b.X.Z},
		{b.Y.X, b.Y.Y, b.Y.Z},
		{b.Z.X, b.Z.Y, b.Z.Z},
	}
}

// Basis is the inverse of Mat3FromBasis: row i becomes basis vector i.
func (m Mat3) Basis() Basis3 {
	return Basis3{
		X: Vec3{m[0][0], m[0][1], m[0][2]},
		Y: Vec3{m[1][0], m[1][1], m[1][2]},
		Z: Vec3{m[2][0], m[2][1], m[2][2]},
	}
}

// Mul returns the matrix product m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result[row][col] =
				m[row][0]*other[0][col] +
					m[row][1]*other[1][col] +
					m[row][2]*other[2][col]
		}
	}
	return result
}

// MulRect returns the rectangular matrix product a * b. Result has rows(a)
// rows and cols(b) columns; the inner dimension cols(a) == rows(b) is the
// caller's responsibility and is not validated.
func MulRect(a, b [][]float32) [][]float32 {
	rows, inner, cols := len(a), len(b), len(b[0])
	result := make([][]float32, rows)
	for i := 0; i < rows; i++ {
		result[i] = make([]float32, cols)
		for j := 0; j < cols; j++ {
			var sum float32
			for k := 0; k < inner; k++ {
				sum += a[i][k] * b[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}
