package handler

import (
	"net/http"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type UserCreateRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/users")
	g.POST("", h.create)
	g.GET("", h.list)
}

func (h *UserHandler) create(c echo.Context) error {
	var req UserCreateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	u, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, IDNameResponse{ID: u.ID, Name: u.Name})
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]IDNameResponse, 0, len(users))
	for _, u := range users {
		out = append(out, IDNameResponse{ID: u.ID, Name: u.Name})
	}
	return c.JSON(http.StatusOK, out)
}
