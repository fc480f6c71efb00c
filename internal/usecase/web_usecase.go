package usecase

import (
	"context"
	"io"

	"directorio/internal/domain/entity"
)

// CreateWebInput defines the content of a new page.
type CreateWebInput struct {
	Ciudad    string
	Actividad string
	Titulo    string
	Resumen   string
	Textos    []string
	Fotos     []string
}

// UpdateWebInput carries a partial update of the caller's page. Reviews are not writable.
type UpdateWebInput struct {
	Ciudad    *string
	Actividad *string
	Titulo    *string
	Resumen   *string
	Textos    *[]string
	Fotos     *[]string
}

// ListWebsInput narrows and orders a web listing.
type ListWebsInput struct {
	Ciudad    *string
	Actividad *string
	ListInput
}

// FotoInput is an uploaded photo.
type FotoInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// WebView is a web with its derived score.
type WebView struct {
	*entity.Web
	Score float64
}

// FotoOutput returns the stored path and the updated page.
type FotoOutput struct {
	Path string
	Web  *WebView
}

// WebUsecase defines page operations. Writes act on the page owned by the calling comercio.
type WebUsecase interface {
	List(ctx context.Context, input *ListWebsInput) ([]*WebView, error)
	Get(ctx context.Context, id string) (*WebView, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateWebInput) (*WebView, error)
	Update(ctx context.Context, principal *entity.Principal, input *UpdateWebInput) (*WebView, error)
	Delete(ctx context.Context, principal *entity.Principal, logico bool) (*WebView, error)
	UploadFoto(ctx context.Context, principal *entity.Principal, input *FotoInput) (*FotoOutput, error)
}

// NewWebView derives the score of a web.
func NewWebView(web *entity.Web) *WebView {
	if web == nil {
		return nil
	}

	return &WebView{Web: web, Score: web.Score()}
}
