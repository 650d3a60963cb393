// Package catalog covers the document-metadata side of the API: uploaded
// file records and the categories that group them.
package catalog

import (
	"context"

	"github.com/labstack/gommon/log"

	"github.com/docnest/docnest/internal/model"
	"github.com/docnest/docnest/internal/store"
)

type Service struct {
	files      store.FileCatalog
	categories store.CategoryCatalog
	logger     *log.Logger
}

func New(files store.FileCatalog, categories store.CategoryCatalog, logger *log.Logger) *Service {
	return &Service{
		files:      files,
		categories: categories,
		logger:     logger,
	}
}

func (s *Service) SaveFile(ctx context.Context, params *model.UploadFileParams) (*model.FileInfo, error) {
	file := &model.FileInfo{
		Filename:       params.Filename,
		Type:           params.Type,
		Size:           params.Size,
		CreatorName:    params.CreatorName,
		Category:       params.Category,
		Classification: params.Classification,
		Confidence:     params.Confidence,
	}
	return s.files.Create(ctx, file)
}

func (s *Service) ListFiles(ctx context.Context) ([]*model.FileInfo, error) {
	return s.files.List(ctx)
}

func (s *Service) DeleteFile(ctx context.Context, id string) error {
	return s.files.Delete(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, params *model.CreateCategoryParams) (*model.Category, error) {
	category := &model.Category{
		Name:        params.Name,
		Sample:      params.Files,
		CreateDate:  params.Created,
		TrainDate:   params.Created,
		TrainStatus: model.TrainStatusCompleted,
	}
	saved, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("category saved: %s", saved.Name)
	return saved, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categories.List(ctx)
}

// EditCategory updates a category in place and returns the refreshed,
// sorted category list, matching what the front-end renders after an edit.
func (s *Service) EditCategory(ctx context.Context, params *model.EditCategoryParams) ([]*model.Category, error) {
	if _, err := s.categories.Edit(ctx, params); err != nil {
		return nil, err
	}
	return s.categories.List(ctx)
}
