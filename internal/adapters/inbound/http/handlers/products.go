package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/internal/usecases/commands"
	"github.com/storecraft/storefront/internal/usecases/queries"
)

const (
	msgProductNotFound    = "product not found"
	msgInvalidProductID   = "invalid product ID"
	msgInvalidRequestBody = "invalid request body"
)

type (
	productLinks struct {
		Self *string `json:"self,omitempty"`
	}

	productData struct {
		ID        string        `json:"id"`
		Name      string        `json:"name"`
		Color     string        `json:"color"`
		Size      string        `json:"size"`
		Price     int64         `json:"price"`
		CreatedAt time.Time     `json:"createdAt"`
		UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
		Links     *productLinks `json:"links,omitempty"`
	}

	createProductRequest struct {
		Name  string `json:"name"`
		Color string `json:"color"`
		Size  string `json:"size"`
		Price int64  `json:"price"`
	}

	ProductHandler struct {
		app *usecases.Application
	}
)

func NewProductHandler(app *usecases.Application) *ProductHandler {
	return &ProductHandler{app: app}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidQuery, err.Error())

		return
	}

	result, err := h.app.Queries.ListProducts.Execute(r.Context(), queries.ListProductsQuery{Filter: filter})
	if err != nil {
		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, err.Error())

		return
	}

	data := make([]productData, 0, len(result.Products))
	for index := range result.Products {
		data = append(data, toProductData(result.Products[index]))
	}

	writeEnveloped(w, r, http.StatusOK, data, toPaginationData(result.Pagination))
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return
	}

	cmd := commands.CreateProductCommand{
		Name:  req.Name,
		Color: model.Color(strings.ToLower(req.Color)),
		Size:  model.Size(strings.ToLower(req.Size)),
		Price: req.Price,
	}

	product, err := h.app.Commands.CreateProduct.Handle(r.Context(), cmd)
	if err != nil {
		var verrs *model.ValidationErrors
		if errors.As(err, &verrs) {
			writeErrorResponseWithDetails(w, r, http.StatusUnprocessableEntity, codeValidation,
				"product validation failed", toErrorDetails(verrs))

			return
		}

		if errors.Is(err, model.ErrDuplicateProduct) {
			writeErrorResponse(w, r, http.StatusConflict, codeConflict, err.Error())

			return
		}

		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, err.Error())

		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/products/%s", product.ID.String()))
	writeEnveloped(w, r, http.StatusCreated, toProductData(product), nil)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidID, msgInvalidProductID)

		return
	}

	product, err := h.app.Queries.GetProduct.Execute(r.Context(), queries.GetProductQuery{ID: id})
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeErrorResponse(w, r, http.StatusNotFound, codeNotFound, msgProductNotFound)

			return
		}

		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, err.Error())

		return
	}

	writeEnveloped(w, r, http.StatusOK, toProductData(product), nil)
}

func parseProductFilter(r *http.Request) (model.ProductFilter, error) {
	filter := model.DefaultProductFilter()
	query := r.URL.Query()

	for _, raw := range query["color"] {
		color, err := model.ParseColor(raw)
		if err != nil {
			return filter, err
		}

		filter.Colors = append(filter.Colors, color)
	}

	for _, raw := range query["size"] {
		size, err := model.ParseSize(raw)
		if err != nil {
			return filter, err
		}

		filter.Sizes = append(filter.Sizes, size)
	}

	if name := query.Get("name"); name != "" {
		filter.NameLike = name
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || page == 0 {
			return filter, fmt.Errorf("invalid page: %s", raw)
		}

		filter.Page = uint(page)
	}

	if raw := query.Get("page_size"); raw != "" {
		size, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || size == 0 {
			return filter, fmt.Errorf("invalid page_size: %s", raw)
		}

		filter.Size = uint(size)
	}

	if raw := query.Get("sort"); raw != "" {
		filter.Sort = strings.Split(raw, ",")
	}

	return filter, nil
}

func toProductData(product *model.Product) productData {
	selfLink := fmt.Sprintf("/v1/products/%s", product.ID.String())
	updatedAt := product.UpdatedAt

	return productData{
		ID:        product.ID.String(),
		Name:      product.Name,
		Color:     product.Color.String(),
		Size:      product.Size.String(),
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
		UpdatedAt: &updatedAt,
		Links:     &productLinks{Self: &selfLink},
	}
}

func toPaginationData(p model.Pagination) *paginationData {
	hasNext := p.HasNext
	hasPrevious := p.HasPrevious

	return &paginationData{
		Page:        p.Page,
		Size:        p.Size,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		HasNext:     &hasNext,
		HasPrevious: &hasPrevious,
	}
}

func toErrorDetails(verrs *model.ValidationErrors) []errorDetail {
	details := make([]errorDetail, 0, len(verrs.Errors))
	for _, verr := range verrs.Errors {
		details = append(details, errorDetail{
			Field:   verr.Field,
			Message: verr.Message,
			Code:    verr.Code,
		})
	}

	return details
}
