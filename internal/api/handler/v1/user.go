package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hskpro/warehouse-api/internal/api/handler/v1/request"
	"github.com/hskpro/warehouse-api/internal/api/handler/v1/response"
	"github.com/hskpro/warehouse-api/internal/api/middleware"
	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/service"
)

type UserService interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleCreateUser godoc
// @Summary      Provision a warehouse account (IT only)
// @Tags         users
// @Produce      json
// @Param        request   body      request.CreateUserRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users [post]
// @Security     BearerAuth
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	actor, ok := middleware.GetActor(ctx)
	if !ok || actor.Position != "IT" {
		response.RenderErr(ctx, response.ErrInsufficientPermissions())

		return
	}

	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.CreateUser(ctx.Request.Context(), domain.User{
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		Position:    req.Position,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUsernameExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, user)
}
