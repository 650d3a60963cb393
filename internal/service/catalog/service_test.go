package catalog

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/docnest/docnest/internal/model"
)

type fakeFileCatalog struct {
	files []*model.FileInfo
}

func (f *fakeFileCatalog) Create(ctx context.Context, file *model.FileInfo) (*model.FileInfo, error) {
	file.ID = primitive.NewObjectID()
	if file.Date.IsZero() {
		file.Date = time.Now().UTC()
	}
	f.files = append(f.files, file)
	return file, nil
}

func (f *fakeFileCatalog) List(ctx context.Context) ([]*model.FileInfo, error) {
	return f.files, nil
}

func (f *fakeFileCatalog) Delete(ctx context.Context, id string) error {
	for i, file := range f.files {
		if file.ID.Hex() == id {
			f.files = append(f.files[:i], f.files[i+1:]...)
			return nil
		}
	}
	return model.ErrorFileNotFound
}

type fakeCategoryCatalog struct {
	categories []*model.Category
}

func (f *fakeCategoryCatalog) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, category)
	return category, nil
}

func (f *fakeCategoryCatalog) List(ctx context.Context) ([]*model.Category, error) {
	sorted := append([]*model.Category{}, f.categories...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TrainDate.After(sorted[j].TrainDate)
	})
	return sorted, nil
}

func (f *fakeCategoryCatalog) Edit(ctx context.Context, params *model.EditCategoryParams) (*model.Category, error) {
	for _, category := range f.categories {
		if category.ID.Hex() == params.ID {
			category.Name = params.Name
			category.Sample = params.Files
			category.TrainDate = params.Updated
			return category, nil
		}
	}
	return nil, model.ErrorCategoryNotFound
}

func newTestService() (*Service, *fakeFileCatalog, *fakeCategoryCatalog) {
	files := &fakeFileCatalog{}
	categories := &fakeCategoryCatalog{}
	logger := log.New("test")
	logger.SetLevel(log.OFF)
	return New(files, categories, logger), files, categories
}

func TestFiles(t *testing.T) {
	assert := assert.New(t)
	service, files, _ := newTestService()

	saved, err := service.SaveFile(context.Background(), &model.UploadFileParams{
		Filename:       "report.pdf",
		Type:           "application/pdf",
		Size:           "52341",
		CreatorName:    "alice",
		Classification: "invoice",
		Confidence:     0.93,
	})
	assert.Nil(err)
	assert.False(saved.ID.IsZero())
	assert.False(saved.Date.IsZero())

	listed, err := service.ListFiles(context.Background())
	assert.Nil(err)
	assert.Len(listed, 1)

	assert.Nil(service.DeleteFile(context.Background(), saved.ID.Hex()))
	assert.Empty(files.files)

	err = service.DeleteFile(context.Background(), saved.ID.Hex())
	assert.ErrorIs(err, model.ErrorFileNotFound)
}

func TestCategories(t *testing.T) {
	assert := assert.New(t)
	service, _, _ := newTestService()

	created := time.Now().UTC().Add(-time.Hour)

	first, err := service.CreateCategory(context.Background(), &model.CreateCategoryParams{
		Name:    "invoices",
		Files:   []string{"report.pdf"},
		Created: created,
	})
	assert.Nil(err)
	assert.Equal(model.TrainStatusCompleted, first.TrainStatus)
	assert.Equal(created, first.CreateDate)
	assert.Equal(created, first.TrainDate)

	t.Run("edit returns the refreshed list, newest trained first", func(t *testing.T) {
		second, err := service.CreateCategory(context.Background(), &model.CreateCategoryParams{
			Name:    "contracts",
			Files:   []string{"nda.pdf"},
			Created: created.Add(10 * time.Minute),
		})
		assert.Nil(err)

		updated := time.Now().UTC()
		list, err := service.EditCategory(context.Background(), &model.EditCategoryParams{
			ID:      first.ID.Hex(),
			Name:    "invoices-2026",
			Files:   []string{"report.pdf", "receipt.pdf"},
			Updated: updated,
		})
		assert.Nil(err)
		assert.Len(list, 2)
		assert.Equal("invoices-2026", list[0].Name)
		assert.Equal(second.Name, list[1].Name)
	})

	t.Run("editing a missing category", func(t *testing.T) {
		_, err := service.EditCategory(context.Background(), &model.EditCategoryParams{
			ID:      primitive.NewObjectID().Hex(),
			Name:    "ghost",
			Files:   []string{},
			Updated: time.Now(),
		})
		assert.ErrorIs(err, model.ErrorCategoryNotFound)
	})
}
