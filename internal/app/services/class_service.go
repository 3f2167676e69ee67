package services

import (
	"context"
	"fmt"

	"classfinder/internal/app/models"
)

// ClassService defines the interface for class-schedule operations
type ClassService interface {
	GetClassesByTerm(ctx context.Context, term models.Term) ([]models.ClassDetail, error)
}

// ClassReader is the repository surface the class service reads through.
type ClassReader interface {
	GetByTerm(ctx context.Context, term models.Term) ([]models.ClassDetail, error)
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classRepo ClassReader
	registry  *models.TermRegistry
}

// NewClassService creates a new class service instance
func NewClassService(classRepo ClassReader, registry *models.TermRegistry) ClassService {
	return &classServiceImpl{
		classRepo: classRepo,
		registry:  registry,
	}
}

// GetClassesByTerm retrieves all classes for a term. The term is checked
// against the allow-list here, before any repository call, so an unknown
// term never reaches SQL construction.
func (s *classServiceImpl) GetClassesByTerm(ctx context.Context, term models.Term) ([]models.ClassDetail, error) {
	if _, err := s.registry.Tables(term); err != nil {
		return nil, err
	}

	classes, err := s.classRepo.GetByTerm(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes for term %q: %w", term, err)
	}
	return classes, nil
}
