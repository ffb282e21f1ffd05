package fht

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// selectKernel returns the unrolled codelet registered for size n,
// or nil if only the staged path is available.
func selectKernel[T fhtypes.Float](n int) fhtypes.Kernel[T] {
	switch n {
	case 2:
		return kernel2[T]
	case 4:
		return kernel4[T]
	case 8:
		return kernel8[T]
	case 16:
		return kernel16[T]
	default:
		return nil
	}
}

func kernel2[T fhtypes.Float](buf []T) bool {
	if len(buf) < 2 {
		return false
	}

	a, b := buf[0], buf[1]
	buf[0], buf[1] = a+b, a-b

	return true
}

func kernel4[T fhtypes.Float](buf []T) bool {
	if len(buf) < 4 {
		return false
	}

	a0, a1 := buf[0]+buf[1], buf[0]-buf[1]
	a2, a3 := buf[2]+buf[3], buf[2]-buf[3]
	buf[0], buf[2] = a0+a2, a0-a2
	buf[1], buf[3] = a1+a3, a1-a3

	return true
}

func kernel8[T fhtypes.Float](buf []T) bool {
	if len(buf) < 8 {
		return false
	}

	s := buf[:8]

	a0, a1 := s[0]+s[1], s[0]-s[1]
	a2, a3 := s[2]+s[3], s[2]-s[3]
	a4, a5 := s[4]+s[5], s[4]-s[5]
	a6, a7 := s[6]+s[7], s[6]-s[7]

	b0, b2 := a0+a2, a0-a2
	b1, b3 := a1+a3, a1-a3
	b4, b6 := a4+a6, a4-a6
	b5, b7 := a5+a7, a5-a7

	s[0], s[4] = b0+b4, b0-b4
	s[1], s[5] = b1+b5, b1-b5
	s[2], s[6] = b2+b6, b2-b6
	s[3], s[7] = b3+b7, b3-b7

	return true
}

func kernel16[T fhtypes.Float](buf []T) bool {
	if len(buf) < 16 {
		return false
	}

	wht16(buf)

	return true
}

// wht16 is the size-16 butterfly with all four stages unrolled.
// It is also the leaf used by the hybrid path for larger sizes.
func wht16[T fhtypes.Float](s []T) {
	a0, a1 := s[0]+s[1], s[0]-s[1]
	a2, a3 := s[2]+s[3], s[2]-s[3]
	a4, a5 := s[4]+s[5], s[4]-s[5]
	a6, a7 := s[6]+s[7], s[6]-s[7]
	a8, a9 := s[8]+s[9], s[8]-s[9]
	a10, a11 := s[10]+s[11], s[10]-s[11]
	a12, a13 := s[12]+s[13], s[12]-s[13]
	a14, a15 := s[14]+s[15], s[14]-s[15]

	b0, b2 := a0+a2, a0-a2
	b1, b3 := a1+a3, a1-a3
	b4, b6 := a4+a6, a4-a6
	b5, b7 := a5+a7, a5-a7
	b8, b10 := a8+a10, a8-a10
	b9, b11 := a9+a11, a9-a11
	b12, b14 := a12+a14, a12-a14
	b13, b15 := a13+a15, a13-a15

	c0, c4 := b0+b4, b0-b4
	c1, c5 := b1+b5, b1-b5
	c2, c6 := b2+b6, b2-b6
	c3, c7 := b3+b7, b3-b7
	c8, c12 := b8+b12, b8-b12
	c9, c13 := b9+b13, b9-b13
	c10, c14 := b10+b14, b10-b14
	c11, c15 := b11+b15, b11-b15

	s[0], s[8] = c0+c8, c0-c8
	s[1], s[9] = c1+c9, c1-c9
	s[2], s[10] = c2+c10, c2-c10
	s[3], s[11] = c3+c11, c3-c11
	s[4], s[12] = c4+c12, c4-c12
	s[5], s[13] = c5+c13, c5-c13
	s[6], s[14] = c6+c14, c6-c14
	s[7], s[15] = c7+c15, c7-c15
}
