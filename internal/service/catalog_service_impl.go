package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/lvanderveer/tally/internal/repository"
)

type catalogService struct {
	projects repository.ProjectRepo
}

func NewCatalogService(projects repository.ProjectRepo) CatalogService {
	return &catalogService{projects: projects}
}

func (s *catalogService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *catalogService) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" || p.Code == "" {
		return fmt.Errorf("project name and code are required: %w", domain.ErrInvalidInput)
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	for i := range p.SubProjects {
		if p.SubProjects[i].ID == "" {
			p.SubProjects[i].ID = uuid.New().String()
		}
	}
	p.CreatedAt = time.Now().UTC()
	return s.projects.Create(ctx, p)
}

func (s *catalogService) Names(ctx context.Context) (domain.NameIndex, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return domain.NameIndex{}, fmt.Errorf("loading catalog: %w", err)
	}
	return domain.BuildNameIndex(projects), nil
}
