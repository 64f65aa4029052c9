package usecase

import (
	"context"

	"github.com/jhoicas/carta-api/internal/domain/entity"
)

// MenuPDFGenerator genera la carta imprimible de una empresa (puerto; la
// implementación con Maroto vive en infraestructura).
type MenuPDFGenerator interface {
	GenerateMenuPDF(ctx context.Context, company *entity.Company, items []*entity.Item) ([]byte, error)
}
