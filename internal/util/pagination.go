package util

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Calculate turns 1-based page/size query values into offset/limit.
func Calculate(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return (page - 1) * size, size
}
