package hwy

// ForEach1 is the reference element-wise evaluator: lane i of the result is
// f(lane i of a).
//
// Every operation in this package is defined by what ForEach1 or ForEach2
// would compute with the matching scalar function, and the null backend is
// built from them.
func ForEach1[T Lanes, A Array[T]](a Vec[T, A], f func(T) T) Vec[T, A] {
	var r Vec[T, A]
	for i := 0; i < len(a.lanes); i++ {
		r.lanes[i] = f(a.lanes[i])
	}
	return r
}

// ForEach2 is the two-operand form of ForEach1.
func ForEach2[T Lanes, A Array[T]](a, b Vec[T, A], f func(T, T) T) Vec[T, A] {
	var r Vec[T, A]
	for i := 0; i < len(a.lanes); i++ {
		r.lanes[i] = f(a.lanes[i], b.lanes[i])
	}
	return r
}

// avgScalar is the rounded average computed at twice the width. The shift
// floors, also for negative sums.
func avgScalar[T AvgLanes](x, y T) T {
	return T((int64(x) + int64(y) + 1) >> 1)
}

// shiftLScalar returns the scalar left shift by count. Go shifts produce
// zero once count reaches the width of T.
func shiftLScalar[T Integers](count uint) func(T) T {
	return func(x T) T { return x << count }
}
