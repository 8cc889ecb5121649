package raster

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy"
)

// dotProduct computes the inner product of a and b (up to the shorter
// length) using SIMD vectors with a scalar tail.
func dotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	lanes := hwy.MaxLanes[float64]()
	acc := hwy.Zero[float64]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		acc = hwy.FMA(hwy.Load(a[i:]), hwy.Load(b[i:]), acc)
	}
	sum := hwy.ReduceSum(acc)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// vecMinInto lowers dst lane-wise to min(dst, src), up to the shorter
// length.
func vecMinInto(dst, src []int32) {
	n := min(len(dst), len(src))
	lanes := hwy.MaxLanes[int32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		hwy.Store(hwy.Min(hwy.Load(dst[i:]), hwy.Load(src[i:])), dst[i:])
	}
	for ; i < n; i++ {
		if src[i] < dst[i] {
			dst[i] = src[i]
		}
	}
}

// planeBuf holds pooled per-channel int32 planes plus one scratch row per
// channel, reused across neighborhood filter calls.
type planeBuf struct {
	r, g, b    [][]int32
	vr, vg, vb []int32
	w, h       int
}

var planePool = sync.Pool{New: func() any { return new(planeBuf) }}

func getPlaneBuf(w, h int) *planeBuf {
	buf := planePool.Get().(*planeBuf)
	if buf.w != w || buf.h != h {
		alloc := func() [][]int32 {
			p := make([][]int32, h)
			for y := range h {
				p[y] = make([]int32, w)
			}
			return p
		}
		buf.r, buf.g, buf.b = alloc(), alloc(), alloc()
		buf.vr = make([]int32, w)
		buf.vg = make([]int32, w)
		buf.vb = make([]int32, w)
		buf.w, buf.h = w, h
	}
	return buf
}

func putPlaneBuf(buf *planeBuf) {
	planePool.Put(buf)
}

// fill splits img into the buffer's R, G, B planes.
func (buf *planeBuf) fill(img *Image) {
	for row := range buf.h {
		for col := range buf.w {
			c := img.at(col, row)
			buf.r[row][col] = int32(c.Red())
			buf.g[row][col] = int32(c.Green())
			buf.b[row][col] = int32(c.Blue())
		}
	}
}

// vecBuf holds a pooled pair of float64 vectors for similarity scoring.
type vecBuf struct {
	a, b []float64
	n    int
}

var vecPool = sync.Pool{New: func() any { return new(vecBuf) }}

func getVecBuf(n int) *vecBuf {
	buf := vecPool.Get().(*vecBuf)
	if buf.n != n {
		buf.a = make([]float64, n)
		buf.b = make([]float64, n)
		buf.n = n
	}
	return buf
}

func putVecBuf(buf *vecBuf) {
	vecPool.Put(buf)
}
