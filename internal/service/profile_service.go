package service

import (
	"lavkapos/internal/dto"
	"lavkapos/internal/model"
	"lavkapos/internal/repository"
	"lavkapos/internal/validate"
)

// ProfileService manages the named workspaces themselves.
type ProfileService interface {
	List() ([]dto.ProfileSummary, error)
	Create(req dto.CreateProfileRequest) (*dto.ProfileSummary, error)
	Delete(name string) error
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) List() ([]dto.ProfileSummary, error) {
	names := s.repo.Names()
	out := make([]dto.ProfileSummary, 0, len(names))
	for _, name := range names {
		summary := dto.ProfileSummary{Name: name}
		err := s.repo.View(name, func(doc *model.ProfileDocument) error {
			summary.ProductsCount = len(doc.Products)
			summary.OrdersCount = len(doc.Orders)
			return nil
		})
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *profileService) Create(req dto.CreateProfileRequest) (*dto.ProfileSummary, error) {
	name, err := validate.NonEmpty(req.Name, "Profile name")
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(name); err != nil {
		return nil, err
	}
	return &dto.ProfileSummary{Name: name}, nil
}

func (s *profileService) Delete(name string) error {
	return s.repo.Delete(name)
}
