package hex

// Ring returns the cells at exact distance k from c, starting from
// c + Directions[4]*k and walking the six sides in Directions order.
// If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k <= 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(Directions[4].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns all cells at distance <= radius from c.
func Disk(c Axial, radius int) []Axial {
	if radius < 0 {
		return nil
	}
	res := make([]Axial, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		r1 := maxInt(-radius, -q-radius)
		r2 := minInt(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			res = append(res, c.Add(Axial{q, r}))
		}
	}
	return res
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
