package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/money"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// BusinessTxRunner ejecuta la creación negocio + membresía admin en una tx.
type BusinessTxRunner interface {
	RunBusiness(ctx context.Context, fn func(
		bizRepo repository.BusinessRepository,
		memRepo repository.MembershipRepository,
	) error) error
}

// BusinessUseCase casos de uso para negocios (tenants) y su configuración.
type BusinessUseCase struct {
	txRunner BusinessTxRunner
	bizRepo  repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(txRunner BusinessTxRunner, bizRepo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{txRunner: txRunner, bizRepo: bizRepo}
}

// Create crea un negocio y deja al creador como admin, en una sola tx.
// El formato de moneda se siembra desde los metadatos si no viene en el body.
func (uc *BusinessUseCase) Create(ctx context.Context, creator *entity.User, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if creator == nil {
		return nil, domain.ErrUnauthorized
	}
	format := money.DefaultFormat(in.Currency)
	if in.CurrencyFormat != nil {
		format = formatFromDTO(*in.CurrencyFormat, format)
	}
	now := time.Now()
	biz := &entity.Business{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		LogoURL:        in.LogoURL,
		Currency:       in.Currency,
		CurrencyFormat: format,
		DefaultTaxRate: in.DefaultTaxRate,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	membership := &entity.Membership{
		ID:           uuid.New().String(),
		UserID:       creator.ID,
		BusinessID:   biz.ID,
		BusinessName: biz.Name,
		BusinessLogo: biz.LogoURL,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.txRunner.RunBusiness(ctx, func(
		bizRepo repository.BusinessRepository,
		memRepo repository.MembershipRepository,
	) error {
		if err := bizRepo.Create(biz); err != nil {
			return err
		}
		return memRepo.Create(membership)
	})
	if err != nil {
		return nil, err
	}
	return ToBusinessResponse(biz), nil
}

// GetByID obtiene un negocio por ID.
func (uc *BusinessUseCase) GetByID(id string) (*dto.BusinessResponse, error) {
	biz, err := uc.bizRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if biz == nil {
		return nil, domain.ErrNotFound
	}
	return ToBusinessResponse(biz), nil
}

// ListMine lista los negocios donde el usuario tiene membresía.
func (uc *BusinessUseCase) ListMine(userID string) (*dto.BusinessListResponse, error) {
	list, err := uc.bizRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *ToBusinessResponse(b))
	}
	return &dto.BusinessListResponse{Items: items}, nil
}

// Update actualiza datos y configuración del negocio (requiere canManageSettings,
// verificado en el middleware). Si cambia la moneda sin enviar formato nuevo,
// el formato se resiembra con los defaults de la moneda nueva.
func (uc *BusinessUseCase) Update(id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	biz, err := uc.bizRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if biz == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		biz.Name = in.Name
	}
	if in.Email != "" {
		biz.Email = in.Email
	}
	if in.Phone != "" {
		biz.Phone = in.Phone
	}
	if in.Address != "" {
		biz.Address = in.Address
	}
	if in.LogoURL != "" {
		biz.LogoURL = in.LogoURL
	}
	if in.Currency != "" && in.Currency != biz.Currency {
		biz.Currency = in.Currency
		biz.CurrencyFormat = money.DefaultFormat(in.Currency)
	}
	if in.CurrencyFormat != nil {
		biz.CurrencyFormat = formatFromDTO(*in.CurrencyFormat, biz.CurrencyFormat)
	}
	if in.DefaultTaxRate != nil {
		biz.DefaultTaxRate = *in.DefaultTaxRate
	}
	biz.UpdatedAt = time.Now()
	if err := uc.bizRepo.Update(biz); err != nil {
		return nil, err
	}
	return ToBusinessResponse(biz), nil
}

// FormatPreview renderiza un monto con una configuración propuesta sin
// persistir nada (vista previa en vivo del formulario de moneda).
func (uc *BusinessUseCase) FormatPreview(amount decimal.Decimal, currency string, f *dto.CurrencyFormatDTO) dto.FormatPreviewResponse {
	var format *money.Format
	if f != nil {
		merged := formatFromDTO(*f, money.DefaultFormat(currency))
		format = &merged
	}
	return dto.FormatPreviewResponse{
		Currency:  currency,
		Formatted: money.FormatAmount(amount, currency, format),
	}
}

// formatFromDTO interpreta el DTO como formato completo (el formulario de
// moneda siempre envía todos los campos; digits=0 es un valor válido).
// Display/Position vacíos conservan los de base.
func formatFromDTO(in dto.CurrencyFormatDTO, base money.Format) money.Format {
	out := base
	if in.Display != "" {
		out.Display = in.Display
	}
	if in.Position != "" {
		out.Position = in.Position
	}
	out.Digits = in.Digits
	out.GroupSep = in.GroupSep
	out.DecimalSep = in.DecimalSep
	return out
}

// ToBusinessResponse mapea la entidad a DTO.
func ToBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:      b.ID,
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Address: b.Address,
		LogoURL: b.LogoURL,
		Currency: b.Currency,
		CurrencyFormat: dto.CurrencyFormatDTO{
			Display:    b.CurrencyFormat.Display,
			Position:   b.CurrencyFormat.Position,
			Digits:     b.CurrencyFormat.Digits,
			GroupSep:   b.CurrencyFormat.GroupSep,
			DecimalSep: b.CurrencyFormat.DecimalSep,
		},
		DefaultTaxRate: b.DefaultTaxRate,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
