package service

import (
	"errors"

	"gulshan-laundry/laundry-svc/internal/domain"
)

var ErrInvalidPackage = errors.New("invalid package payload")

type PackageService struct {
	repo PackageRepository
}

func NewPackageService(repo PackageRepository) *PackageService {
	return &PackageService{repo: repo}
}

func (s *PackageService) Create(pkg *domain.Package) error {
	if pkg.Name == "" || pkg.Price <= 0 {
		return ErrInvalidPackage
	}
	pkg.ID = mintID()
	return s.repo.CreatePackage(pkg)
}

func (s *PackageService) List() ([]domain.Package, error) {
	return s.repo.ListPackages()
}

func (s *PackageService) Get(id string) (*domain.Package, error) {
	return s.repo.GetPackage(id)
}

func (s *PackageService) Update(pkg *domain.Package) error {
	if pkg.Name == "" || pkg.Price <= 0 {
		return ErrInvalidPackage
	}
	return s.repo.UpdatePackage(pkg)
}

var _ PackageServiceInterface = (*PackageService)(nil)
