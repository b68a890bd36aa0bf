package ports

import "github.com/bnema/honkbreach/internal/domain"

type Input interface {
	// PrimaryClicked is true only on the frame the primary button went down.
	PrimaryClicked() bool
	Cursor() domain.Vec2
	CancelPressed() bool
}
