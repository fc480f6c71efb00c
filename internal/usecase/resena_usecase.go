package usecase

import (
	"context"

	"directorio/internal/domain/entity"
)

// CreateResenaInput is a review left by the calling usuario.
type CreateResenaInput struct {
	Comentario string
	Puntuacion int
}

// ResenaUsecase adds reviews to webs.
type ResenaUsecase interface {
	// AddResena stores the review and returns the web with its updated score.
	AddResena(ctx context.Context, principal *entity.Principal, webID string, input *CreateResenaInput) (*WebView, error)
}
