package handlers

import (
	"Inventory/internal/model"
	"Inventory/internal/service"
	"Inventory/internal/view"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обслуживает HTML-страницы CRUD для позиций склада.
type ItemHandler struct {
	ItemService *service.ItemService
	View        *view.Renderer
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, renderer *view.Renderer, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, View: renderer, Logger: logger}
}

type itemsPage struct {
	Items []model.Item
}

type itemPage struct {
	Item *model.Item
}

// List список всех позиций
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Logger, "list", err)
		return
	}
	h.render(w, r, view.PageItems, itemsPage{Items: items})
}

// NewForm пустая форма создания
func (h *ItemHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageForm, itemPage{})
}

// Create создание позиции из формы
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := parseItemForm(r)
	if err != nil {
		writeError(w, r, h.Logger, "create", err)
		return
	}
	if _, err := h.ItemService.Create(r.Context(), in); err != nil {
		writeError(w, r, h.Logger, "create", err)
		return
	}
	http.Redirect(w, r, "/items", http.StatusFound)
}

// Show карточка позиции
func (h *ItemHandler) Show(w http.ResponseWriter, r *http.Request) {
	it, ok := h.loadItem(w, r, "show")
	if !ok {
		return
	}
	h.render(w, r, view.PageItem, itemPage{Item: it})
}

// EditForm форма редактирования с текущими значениями
func (h *ItemHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	it, ok := h.loadItem(w, r, "edit")
	if !ok {
		return
	}
	h.render(w, r, view.PageForm, itemPage{Item: it})
}

// Update перезапись всех полей позиции. Сначала проверяем, что запись есть:
// для несуществующего id ответ 404, даже если форма некорректна.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	it, ok := h.loadItem(w, r, "update")
	if !ok {
		return
	}
	in, err := parseItemForm(r)
	if err != nil {
		writeError(w, r, h.Logger, "update", err)
		return
	}
	if _, err := h.ItemService.Update(r.Context(), it.ID, in); err != nil {
		writeError(w, r, h.Logger, "update", err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/items/%d", it.ID), http.StatusFound)
}

// Delete удаление позиции
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, h.Logger, "delete", service.ErrItemNotFound)
		return
	}
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.Logger, "delete", err)
		return
	}
	http.Redirect(w, r, "/items", http.StatusFound)
}

// loadItem достаёт позицию по {id}; при ошибке ответ уже записан.
func (h *ItemHandler) loadItem(w http.ResponseWriter, r *http.Request, op string) (*model.Item, bool) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, h.Logger, op, service.ErrItemNotFound)
		return nil, false
	}
	it, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.Logger, op, err)
		return nil, false
	}
	return it, true
}

func (h *ItemHandler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	renderPage(w, r, h.View, h.Logger, page, data)
}

// pathID разбирает {id}; нечисловой id ведёт себя как несуществующий.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseItemForm(r *http.Request) (service.ItemInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.ItemInput{}, &service.ConstraintViolation{Field: "form", Reason: err.Error()}
	}
	return service.ParseItemForm(service.ItemForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Quantity:    r.PostFormValue("quantity"),
	})
}
