//go:build !windows

package input

import "github.com/bnema/honkbreach/internal/domain"

func SystemSampler() (Sampler, error) {
	return nil, domain.ErrUnsupportedPlatform
}
