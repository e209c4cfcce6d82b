package equipment

import (
	"context"
	"encoding/base64"
	"strings"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AllCategories is the category value clients send to mean "no filter".
const AllCategories = "All"

type Service struct {
	store repository.Store
	log   *zap.Logger
}

func NewService(store repository.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// List is the marketplace view: everything not marked unavailable, plus all
// of viewer's own listings whatever their status.
func (s *Service) List(ctx context.Context, category, viewer string) ([]domain.Equipment, error) {
	f := repository.EquipmentFilter{
		ExcludeStatus: domain.EquipmentUnavailable,
		VisibleOwner:  viewer,
	}
	if category != "" && category != AllCategories {
		f.Category = category
	}
	return s.list(ctx, f)
}

func (s *Service) ListByOwner(ctx context.Context, owner string) ([]domain.Equipment, error) {
	return s.list(ctx, repository.EquipmentFilter{Owner: owner})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	e, err := s.store.Equipment().GetByID(ctx, id)
	if err != nil {
		return nil, repository.DomainError("load equipment", err, ErrEquipmentNotFound)
	}
	return e, nil
}

// EquipmentPatch lists the client-settable fields. Nil means unchanged; the
// rating aggregate is not part of it.
type EquipmentPatch struct {
	Name           *string
	Category       *string
	DailyPrice     *decimal.Decimal
	PickupLocation *string
	PhotoURL       *string
	Photo          []byte
	Status         *domain.EquipmentStatus
	BookedUntil    *domain.Date
}

func (p EquipmentPatch) validate() error {
	// stored prices carry two decimals, so the rounded value must stay positive
	if p.DailyPrice != nil && !domain.RoundMoney(*p.DailyPrice).IsPositive() {
		return ErrInvalidPrice
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if len(p.Photo) > MaxPhotoSize {
		return ErrPhotoTooLarge
	}
	return nil
}

func (p EquipmentPatch) apply(e *domain.Equipment) {
	if p.Name != nil {
		e.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		e.Category = strings.TrimSpace(*p.Category)
	}
	if p.DailyPrice != nil {
		e.DailyPrice = domain.RoundMoney(*p.DailyPrice)
	}
	if p.PickupLocation != nil {
		e.PickupLocation = strings.TrimSpace(*p.PickupLocation)
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.BookedUntil != nil {
		until := *p.BookedUntil
		e.BookedUntil = &until
	}
	// uploaded bytes win over a URL sent in the same request
	switch {
	case len(p.Photo) > 0:
		e.SetPhotoBinary(base64.StdEncoding.EncodeToString(p.Photo))
	case p.PhotoURL != nil:
		e.SetPhotoURL(*p.PhotoURL)
	}
}

// Create lists new equipment for owner. Name, category, price and pickup
// location are required; status defaults to available.
func (s *Service) Create(ctx context.Context, owner string, in EquipmentPatch) (*domain.Equipment, error) {
	if owner == "" {
		return nil, ErrMissingPrincipal
	}
	if blank(in.Name) || blank(in.Category) || blank(in.PickupLocation) || in.DailyPrice == nil {
		return nil, ErrMissingFields
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.Users().GetByUsername(ctx, owner); err != nil {
		return nil, repository.DomainError("load owner", err, ErrOwnerNotFound)
	}

	e := &domain.Equipment{
		OwnerUsername: owner,
		Status:        domain.EquipmentAvailable,
	}
	in.apply(e)
	if err := s.store.Equipment().Create(ctx, e); err != nil {
		return nil, repository.DomainError("create equipment", err, nil)
	}

	s.log.Info("equipment listed",
		zap.Int64("equipment_id", e.ID),
		zap.String("owner", owner),
		zap.String("category", e.Category))
	return e, nil
}

func (s *Service) Update(ctx context.Context, actor string, id int64, patch EquipmentPatch) (*domain.Equipment, error) {
	if actor == "" {
		return nil, ErrMissingPrincipal
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.OwnerUsername != actor {
		return nil, ErrNotOwner
	}

	patch.apply(e)
	if err := s.store.Equipment().Update(ctx, e); err != nil {
		return nil, repository.DomainError("update equipment", err, ErrEquipmentNotFound)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, actor string, id int64) error {
	if actor == "" {
		return ErrMissingPrincipal
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if e.OwnerUsername != actor {
		return ErrNotOwner
	}
	return repository.DomainError("delete equipment", s.store.Equipment().Delete(ctx, id), ErrEquipmentNotFound)
}

func (s *Service) list(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error) {
	items, err := s.store.Equipment().List(ctx, f)
	if err != nil {
		return nil, repository.DomainError("list equipment", err, nil)
	}
	if items == nil {
		items = []domain.Equipment{}
	}
	return items, nil
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
