package arraymap

import "github.com/eecs-autograder/ag-website-vue-sub005/utils"

type (
	config struct {
		capacity int
		order    utils.Order
	}

	Option func(cfg *config)
)

// WithCapacity preallocates room for n pairs.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// WithOrder reverses the less function once at construction when
// order is utils.DescOrder.
func WithOrder(order utils.Order) Option {
	return func(cfg *config) {
		cfg.order = order
	}
}
