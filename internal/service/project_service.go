package service

import (
	"context"
	"time"

	"buildhive-be/internal/dto"
	"buildhive-be/internal/entity"
	"buildhive-be/internal/pkg/serverutils"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/pkg/uploader"

	"github.com/google/uuid"
)

type ProjectFilter struct {
	Status   string
	Category string
	Page     int
	Limit    int
}

type IProjectService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context, filter ProjectFilter) (*dto.ProjectListResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	Update(ctx context.Context, ownerId, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, ownerId, id uuid.UUID) error
	UploadImage(ctx context.Context, data []byte) (string, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
	uploader   uploader.Uploader
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, up uploader.Uploader) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
		uploader:   up,
	}
}

func toProjectResponse(p *entity.Project) dto.ProjectResponse {
	res := dto.ProjectResponse{
		Id:          p.Id,
		OwnerId:     p.OwnerId,
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		LookingFor:  p.LookingFor,
		Images:      p.Images,
		DemoURL:     p.DemoURL,
		RepoURL:     p.RepoURL,
		Difficulty:  p.Difficulty,
		Category:    p.Category,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Owner != nil {
		owner := toUserResponse(p.Owner)
		res.Owner = &owner
	}
	return res
}

func (s *projectService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project := &entity.Project{
		Id:          uuid.New(),
		OwnerId:     ownerId,
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		LookingFor:  req.LookingFor,
		Images:      req.Images,
		DemoURL:     req.DemoURL,
		RepoURL:     req.RepoURL,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		Status:      entity.ProjectStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	res := toProjectResponse(project)
	return &res, nil
}

func (s *projectService) List(ctx context.Context, filter ProjectFilter) (*dto.ProjectListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProjectRepository()

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 50 {
		filter.Limit = 10
	}

	filterSpecs := []specification.Specification{}
	if filter.Status != "" {
		filterSpecs = append(filterSpecs, specification.ByStatus{Status: filter.Status})
	}
	if filter.Category != "" {
		filterSpecs = append(filterSpecs, specification.ByCategory{Category: filter.Category})
	}

	total, err := repo.Count(ctx, filterSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filterSpecs,
		specification.Preload{Association: "Owner"},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: filter.Limit, Offset: (filter.Page - 1) * filter.Limit},
	)
	projects, err := repo.FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = toProjectResponse(p)
	}

	return &dto.ProjectListResponse{
		Projects: items,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *projectService) Show(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.Preload{Association: "Owner"},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NotFound("Project not found")
	}
	res := toProjectResponse(project)
	return &res, nil
}

func (s *projectService) Update(ctx context.Context, ownerId, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProjectRepository()

	project, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NotFound("Project not found")
	}
	if project.OwnerId != ownerId {
		return nil, serverutils.Forbidden("You do not own this project")
	}

	project.Title = req.Title
	project.Description = req.Description
	project.TechStack = req.TechStack
	project.LookingFor = req.LookingFor
	if req.Images != nil {
		project.Images = req.Images
	}
	project.DemoURL = req.DemoURL
	project.RepoURL = req.RepoURL
	project.Difficulty = req.Difficulty
	project.Category = req.Category
	if req.Status != "" {
		project.Status = entity.ProjectStatus(req.Status)
	}
	project.UpdatedAt = time.Now()

	if err := repo.Update(ctx, project); err != nil {
		return nil, err
	}

	res := toProjectResponse(project)
	return &res, nil
}

func (s *projectService) Delete(ctx context.Context, ownerId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProjectRepository()

	project, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if project == nil {
		return serverutils.NotFound("Project not found")
	}
	if project.OwnerId != ownerId {
		return serverutils.Forbidden("You do not own this project")
	}

	return repo.Delete(ctx, id)
}

func (s *projectService) UploadImage(ctx context.Context, data []byte) (string, error) {
	url, err := s.uploader.Upload(ctx, data)
	if err != nil {
		return "", serverutils.BadRequest("Image upload failed")
	}
	return url, nil
}
