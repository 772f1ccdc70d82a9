package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/facetime/facetime-api/internal/api/middleware"
	"github.com/facetime/facetime-api/internal/core/domain"
	"github.com/facetime/facetime-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// MyPage returns the profile of the authenticated account.
//
// @Summary      My page
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/mypage [get]
func (h *ProfileHandler) MyPage(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	profile, err := h.profileService.GetProfile(c.Request().Context(), id.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}
