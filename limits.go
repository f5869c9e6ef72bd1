package hateoas

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// IsNormalizedSize returns the page size that will actually be used for size
// and whether size was accepted unchanged. Non-positive sizes fall back to
// defaultSize, sizes above maxSize are clamped.
func IsNormalizedSize(size, defaultSize, maxSize int) (int, bool) {
	if size <= 0 {
		return defaultSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizeSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedSize(size, DefaultPageSize, maxSize)
	return ret
}

func NormalizeSize(size int) int {
	return NormalizeSizeMax(size, MaxPageSize)
}
