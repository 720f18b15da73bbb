package serviceImp

import (
	"errors"

	"growbro/entities"
	"growbro/pkg/harvest/repository"
	svc "growbro/pkg/harvest/service"
)

type service struct{ repo repository.HarvestRepository }

func New(r repository.HarvestRepository) svc.HarvestService { return &service{repo: r} }

func (s *service) Create(h *entities.Harvest) error {
	if h.PlantID == "" {
		return errors.New("plant_id is required")
	}
	if h.Date == "" {
		return errors.New("date is required")
	}
	if h.Status == "" {
		h.Status = "planned"
	}
	return s.repo.Create(h)
}

func (s *service) UpdatePartial(id uint, p svc.HarvestPatch) (*entities.Harvest, error) {
	cur, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if p.WetWeightG != nil {
		cur.WetWeightG = p.WetWeightG
	}
	if p.DryWeightG != nil {
		cur.DryWeightG = p.DryWeightG
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	// auto-calc dry/wet ratio
	if cur.WetWeightG != nil && cur.DryWeightG != nil && *cur.WetWeightG > 0 {
		v := *cur.DryWeightG / *cur.WetWeightG * 100
		cur.DryRatioPct = &v
	}
	return cur, s.repo.Update(cur)
}

func (s *service) ListByPlant(plantID string) ([]entities.Harvest, error) {
	return s.repo.ListByPlant(plantID)
}
