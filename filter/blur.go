package filter

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggpipe/mode"
)

// GaussianBlur applies a separable Gaussian blur with sigma Radius.
// Edges are extended (clamped), so the output has the bounds of the input.
//
// A *image.Gray input produces a *image.Gray; anything else is blurred as
// premultiplied RGBA and produces a *image.RGBA. Radius 0 copies the image.
type GaussianBlur struct {
	Radius float64
}

// NewGaussianBlur returns a blur with the given radius.
func NewGaussianBlur(radius float64) *GaussianBlur {
	return &GaussianBlur{Radius: radius}
}

// Process blurs img.
func (f *GaussianBlur) Process(img image.Image) (image.Image, error) {
	if math.IsNaN(f.Radius) || f.Radius < 0 {
		return nil, fmt.Errorf("%w: blur radius %v", ErrInvalidParameter, f.Radius)
	}
	if img == nil {
		return nil, mode.ErrNilImage
	}

	b := img.Bounds()
	kernel := CachedGaussianKernel(f.Radius)

	if _, ok := img.(*image.Gray); ok {
		g, err := grayCopy(img)
		if err != nil {
			return nil, err
		}
		blurPlanes(g.Pix, g.Stride, b.Dx(), b.Dy(), 1, kernel)
		return g, nil
	}

	dst := image.NewRGBA(b)
	draw.Copy(dst, b.Min, img, b, draw.Src, nil)
	blurPlanes(dst.Pix, dst.Stride, b.Dx(), b.Dy(), 4, kernel)
	return dst, nil
}

// blurPlanes blurs an interleaved buffer of n channels in place: a
// horizontal pass into a float buffer, then a vertical pass back.
func blurPlanes(pix []uint8, stride, width, height, n int, kernel []float32) {
	if len(kernel) == 1 || width == 0 || height == 0 {
		return
	}
	half := len(kernel) / 2
	rowLen := width * n

	temp := getTempBuffer(rowLen * height)
	defer putTempBuffer(temp)

	for y := 0; y < height; y++ {
		src := pix[y*stride:]
		for x := 0; x < width; x++ {
			for c := 0; c < n; c++ {
				var sum float32
				for k, w := range kernel {
					kx := clampInt(x+k-half, 0, width-1)
					sum += float32(src[kx*n+c]) * w
				}
				temp[y*rowLen+x*n+c] = sum
			}
		}
	}

	for y := 0; y < height; y++ {
		dst := pix[y*stride:]
		for x := 0; x < width; x++ {
			for c := 0; c < n; c++ {
				var sum float32
				for k, w := range kernel {
					ky := clampInt(y+k-half, 0, height-1)
					sum += temp[ky*rowLen+x*n+c] * w
				}
				dst[x*n+c] = clampUint8(sum)
			}
		}
	}
}

// floatBuffer wraps a slice for sync.Pool.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 0, 1024*1024)}
	},
}

// getTempBuffer returns a buffer of at least size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers (64MB max)
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:0]})
	}
}
