package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/workflow"
	apperrors "fibertrack/pkg/errors"
)

type ProjectStore struct {
	s *Store
}

func (p *ProjectStore) collect(match func(entities.Project) bool) []entities.Project {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	projects := make([]entities.Project, 0)
	for _, proj := range p.s.projects {
		if match(proj) {
			projects = append(projects, proj)
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID > projects[j].ID
	})
	return projects
}

func (p *ProjectStore) GetAll(ctx context.Context) ([]entities.Project, error) {
	return p.collect(func(entities.Project) bool { return true }), nil
}

func (p *ProjectStore) FindByID(ctx context.Context, id int64) (*entities.Project, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	proj, ok := p.s.projects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &proj, nil
}

func (p *ProjectStore) FindByStage(ctx context.Context, stage workflow.Stage) ([]entities.Project, error) {
	return p.collect(func(proj entities.Project) bool { return proj.CurrentStage == stage }), nil
}

func (p *ProjectStore) FindByServiceType(ctx context.Context, serviceType entities.ServiceType) ([]entities.Project, error) {
	return p.collect(func(proj entities.Project) bool { return proj.ServiceType == serviceType }), nil
}

func (p *ProjectStore) FindByStatus(ctx context.Context, isCompleted bool) ([]entities.Project, error) {
	return p.collect(func(proj entities.Project) bool { return proj.IsCompleted == isCompleted }), nil
}

func (p *ProjectStore) Search(ctx context.Context, query string) ([]entities.Project, error) {
	q := strings.ToLower(query)
	return p.collect(func(proj entities.Project) bool {
		for _, field := range []string{
			proj.CustomerName, proj.ContactPerson, proj.ProjectCode, proj.Address, proj.Email,
		} {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}), nil
}

func (p *ProjectStore) Create(ctx context.Context, data dto.CreateProjectDTO) (*entities.Project, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	p.s.nextProjectID++
	p.s.nextProjectCode++
	now := time.Now()

	proj := entities.Project{
		ID:                 p.s.nextProjectID,
		ProjectCode:        fmt.Sprintf("P-%d-%04d", now.Year(), p.s.nextProjectCode),
		CustomerName:       data.CustomerName,
		ContactPerson:      data.ContactPerson,
		Email:              data.Email,
		Phone:              data.Phone,
		Address:            data.Address,
		ServiceType:        entities.ServiceType(data.ServiceType),
		Bandwidth:          data.Bandwidth,
		Requirements:       data.Requirements,
		AssignedTo:         data.AssignedTo,
		ExpectedCompletion: data.ExpectedCompletion,
		CurrentStage:       workflow.StageRequirements,
		IsCompleted:        false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	p.s.projects[proj.ID] = proj
	return &proj, nil
}

func (p *ProjectStore) Update(ctx context.Context, id int64, data dto.UpdateProjectDTO) (*entities.Project, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	proj, ok := p.s.projects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if data.CustomerName != nil {
		proj.CustomerName = *data.CustomerName
	}
	if data.ContactPerson != nil {
		proj.ContactPerson = *data.ContactPerson
	}
	if data.Email != nil {
		proj.Email = *data.Email
	}
	if data.Phone != nil {
		proj.Phone = *data.Phone
	}
	if data.Address != nil {
		proj.Address = *data.Address
	}
	if data.ServiceType != nil {
		proj.ServiceType = entities.ServiceType(*data.ServiceType)
	}
	if data.Bandwidth != nil {
		proj.Bandwidth = *data.Bandwidth
	}
	if data.Requirements.Valid {
		proj.Requirements = data.Requirements
	}
	if data.AssignedTo != nil {
		proj.AssignedTo = *data.AssignedTo
	}
	if data.ExpectedCompletion != nil {
		proj.ExpectedCompletion = *data.ExpectedCompletion
	}
	proj.UpdatedAt = time.Now()

	p.s.projects[id] = proj
	return &proj, nil
}

func (p *ProjectStore) UpdateStage(ctx context.Context, id int64, stage workflow.Stage) (*entities.Project, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	proj, ok := p.s.projects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	proj.CurrentStage = stage
	proj.IsCompleted = stage.IsTerminal()
	proj.UpdatedAt = time.Now()

	p.s.projects[id] = proj
	return &proj, nil
}
