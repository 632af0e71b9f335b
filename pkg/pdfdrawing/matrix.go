package pdfdrawing

// matrix is a 2D affine transform in PDF order: [a b c d e f], applied to row
// vectors. Only the planar part matters here; drawings carry no rotation of
// consequence but scaling and translation from cm/Tm operators must be
// honored for label positions to land next to their shapes.
type matrix [6]float64

func identityMatrix() matrix {
	return matrix{1, 0, 0, 1, 0, 0}
}

func translationMatrix(tx, ty float64) matrix {
	return matrix{1, 0, 0, 1, tx, ty}
}

// mul returns a×b: the transform that applies a first, then b.
func mul(a, b matrix) matrix {
	return matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

// apply transforms the point (x, y).
func (m matrix) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
