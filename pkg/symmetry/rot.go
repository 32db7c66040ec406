package symmetry

// Rot is an integer 3x3 rotation matrix acting on fractional coordinates.
type Rot [3][3]int

// Identity is the identity rotation.
var Identity = Rot{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Inversion is the centre of symmetry.
var Inversion = Rot{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}

// Mul returns the product r*o.
func (r Rot) Mul(o Rot) Rot {
	var out Rot
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += r[i][k] * o[k][j]
			}
		}
	}
	return out
}

// Neg returns -r.
func (r Rot) Neg() Rot {
	var out Rot
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = -r[i][j]
		}
	}
	return out
}

// Det returns the determinant of r.
func (r Rot) Det() int {
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// TransformIndex applies r to a reciprocal-space index as the row vector h*r.
func (r Rot) TransformIndex(h [3]int) [3]int {
	var out [3]int
	for j := 0; j < 3; j++ {
		out[j] = h[0]*r[0][j] + h[1]*r[1][j] + h[2]*r[2][j]
	}
	return out
}

// closure generates the finite group spanned by gens. The identity is
// always first and the order is deterministic for a given generator list.
func closure(gens ...Rot) []Rot {
	ops := []Rot{Identity}
	seen := map[Rot]bool{Identity: true}
	for i := 0; i < len(ops); i++ {
		for _, g := range gens {
			p := ops[i].Mul(g)
			if !seen[p] {
				seen[p] = true
				ops = append(ops, p)
			}
		}
	}
	return ops
}
