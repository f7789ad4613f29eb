package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, p entities.Principal, checkout entities.Checkout) (entities.Order, error)
	RequestCancellation(ctx context.Context, p entities.Principal, orderID uuid.UUID, itemID *uuid.UUID) (entities.Order, error)
	SetItemStatus(ctx context.Context, p entities.Principal, orderID, itemID uuid.UUID, next entities.ItemStatus) (entities.Order, error)
	GetBuyerOrders(ctx context.Context, p entities.Principal) ([]entities.Order, error)
	GetSellerOrders(ctx context.Context, p entities.Principal) ([]entities.Order, error)
	GetAllOrders(ctx context.Context, p entities.Principal) ([]entities.Order, error)
	GetOrder(ctx context.Context, p entities.Principal, orderID uuid.UUID) (entities.Order, error)
	GetProductBuyers(ctx context.Context, p entities.Principal, productID uuid.UUID) ([]entities.ProductBuyer, error)
}

type PresenceService interface {
	Heartbeat(ctx context.Context, p entities.Principal) error
	Leave(ctx context.Context, p entities.Principal) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     func(http.Handler) http.Handler
	svc      OrderService
	presence PresenceService
}

func NewHTTPHandler(logger *slog.Logger, auth func(http.Handler) http.Handler, svc OrderService, presence PresenceService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		auth:     auth,
		svc:      svc,
		presence: presence,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.PlaceOrder)
			r.Get("/buyer", h.GetBuyerOrders)
			r.Get("/seller", h.GetSellerOrders)
			r.Get("/{orderId}", h.GetOrder)
			r.Put("/{orderId}/request-cancellation", h.RequestCancellation)
			r.Put("/{orderId}/items/{itemId}/status", h.SetItemStatus)
		})

		r.Get("/admin/orders", h.GetAllOrders)
		r.Get("/admin/products/{productId}/buyers", h.GetProductBuyers)

		r.Post("/presence/heartbeat", h.Heartbeat)
		r.Delete("/presence", h.Leave)
	})
}

// PlaceOrder оформляет заказ и резервирует товар.
// @Summary      Оформить заказ
// @Description  Резервирует остатки по всем позициям и создаёт заказ. Либо всё, либо ничего.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PlaceOrderRequest  true  "Корзина и доставка"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PlaceOrder(r.Context(), p, req.ToEntity())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetBuyerOrders возвращает заказы покупателя.
// @Summary      Мои заказы
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/buyer [get]
func (h *HTTPHandler) GetBuyerOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, h.svc.GetBuyerOrders)
}

// GetSellerOrders возвращает заказы с товарами продавца.
// @Summary      Заказы продавца
// @Description  Только позиции продавца, total равен его подытогу
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/seller [get]
func (h *HTTPHandler) GetSellerOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, h.svc.GetSellerOrders)
}

// GetAllOrders возвращает все заказы.
// @Summary      Все заказы
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders [get]
func (h *HTTPHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, h.svc.GetAllOrders)
}

func (h *HTTPHandler) listOrders(w http.ResponseWriter, r *http.Request, list func(context.Context, entities.Principal) ([]entities.Order, error)) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	orders, err := list(r.Context(), p)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Покупатель видит свой заказ целиком, продавец только свои позиции
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        orderId  path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{orderId} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	orderID, ok := h.uuidParam(w, r, "orderId")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), p, orderID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// RequestCancellation запрашивает отмену позиции или всего заказа.
// @Summary      Запросить отмену
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        orderId  path      string               true   "ID заказа"
// @Param        request  body      CancellationRequest  false  "Позиция; пусто для всего заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Нечего отменять"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{orderId}/request-cancellation [put]
func (h *HTTPHandler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	orderID, ok := h.uuidParam(w, r, "orderId")
	if !ok {
		return
	}

	// тело необязательно
	var req CancellationRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var itemID *uuid.UUID
	if req.ItemID != "" {
		id := uuid.MustParse(req.ItemID)
		itemID = &id
	}

	order, err := h.svc.RequestCancellation(r.Context(), p, orderID, itemID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SetItemStatus меняет статус позиции.
// @Summary      Сменить статус позиции
// @Description  Отмена возвращает товар на склад
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        orderId  path      string             true  "ID заказа"
// @Param        itemId   path      string             true  "ID позиции"
// @Param        request  body      ItemStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Чужая позиция"
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{orderId}/items/{itemId}/status [put]
func (h *HTTPHandler) SetItemStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	orderID, ok := h.uuidParam(w, r, "orderId")
	if !ok {
		return
	}
	itemID, ok := h.uuidParam(w, r, "itemId")
	if !ok {
		return
	}

	var req ItemStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.SetItemStatus(r.Context(), p, orderID, itemID, entities.ItemStatus(req.Status))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetProductBuyers возвращает покупателей товара.
// @Summary      Покупатели товара
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        productId  path      string  true  "ID товара"
// @Success      200  {array}   ProductBuyer
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/products/{productId}/buyers [get]
func (h *HTTPHandler) GetProductBuyers(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	productID, ok := h.uuidParam(w, r, "productId")
	if !ok {
		return
	}

	buyers, err := h.svc.GetProductBuyers(r.Context(), p, productID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, ProductBuyersEntityToJSON(buyers), http.StatusOK)
}

// Heartbeat отмечает пользователя онлайн.
// @Summary      Присутствие
// @Tags         presence
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/presence/heartbeat [post]
func (h *HTTPHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	h.presenceCall(w, r, h.presence.Heartbeat)
}

// Leave снимает отметку онлайн.
// @Summary      Выход
// @Tags         presence
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/presence [delete]
func (h *HTTPHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.presenceCall(w, r, h.presence.Leave)
}

func (h *HTTPHandler) presenceCall(w http.ResponseWriter, r *http.Request, call func(context.Context, entities.Principal) error) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if err := call(r.Context(), p); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) principal(w http.ResponseWriter, r *http.Request) (entities.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", "unauthorized", http.StatusUnauthorized)
	}
	return p, ok
}

func (h *HTTPHandler) uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if err := h.validate.Var(raw, "required,uuid"); err != nil {
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Code:    "validation_error",
			Message: "invalid request",
			Fields:  map[string]string{name: "uuid"},
		}, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return uuid.MustParse(raw), true
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrNoEligibleItems):
		utils.WriteError(w, "no_eligible_items", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "insufficient_stock", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, "invalid_transition", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, "not_found", err.Error(), http.StatusNotFound)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		utils.WriteError(w, "internal", "internal server error", http.StatusInternalServerError)
	}
}
