package serviceImp

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"growbro/entities"
	repo "growbro/pkg/plant/repository"
	"growbro/pkg/plant/service"
)

type plantSvc struct{ r repo.PlantRepository }

func NewPlantService(r repo.PlantRepository) service.PlantService { return &plantSvc{r} }

func (s *plantSvc) CreatePlant(p *entities.Plant) (*entities.Plant, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("plant name is required")
	}
	if p.PlantID == "" {
		p.PlantID = uuid.NewString()
	}
	if p.Stage == "" {
		p.Stage = "seedling"
	}
	if p.StartedAt.IsZero() {
		p.StartedAt = time.Now()
	}
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *plantSvc) GetPlantByID(id string, uid string) (*entities.Plant, error) {
	return s.r.FindByID(id, uid)
}

func (s *plantSvc) ListPlants(uid string) ([]entities.Plant, error) {
	return s.r.ListByUser(uid)
}
