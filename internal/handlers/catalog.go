package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docnest/docnest/internal/model"
)

// CatalogService is the slice of the catalog workflows the HTTP layer uses.
type CatalogService interface {
	SaveFile(ctx context.Context, params *model.UploadFileParams) (*model.FileInfo, error)
	ListFiles(ctx context.Context) ([]*model.FileInfo, error)
	DeleteFile(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, params *model.CreateCategoryParams) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	EditCategory(ctx context.Context, params *model.EditCategoryParams) ([]*model.Category, error)
}

func UploadFile(catalogService CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.UploadFileParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		if _, err := catalogService.SaveFile(c.Request().Context(), params); err != nil {
			return c.JSON(http.StatusOK, echo.Map{"success": false, "mail": "Can't save the file!"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "mail": "Saved successfully!"})
	}
}

func ListFiles(catalogService CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		files, err := catalogService.ListFiles(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "files": files})
	}
}

func DeleteFile(catalogService CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := catalogService.DeleteFile(c.Request().Context(), c.Param("id"))
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"success": true})
		case errors.Is(err, model.ErrorFileNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Can't find the file!"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
}

func CreateCategory(catalogService CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreateCategoryParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		category, err := catalogService.CreateCategory(c.Request().Context(), params)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database Error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "newCategory": category})
	}
}

func ListCategories(catalogService CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := catalogService.ListCategories(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database Error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "categories": categories})
	}
}

func EditCategory(catalogService CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.EditCategoryParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		categories, err := catalogService.EditCategory(c.Request().Context(), params)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"success": true, "editCategory": categories})
		case errors.Is(err, model.ErrorCategoryNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Can't find the category!"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database Error"})
		}
	}
}
