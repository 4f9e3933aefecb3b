package handlers

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/carousel"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
)

// CarouselStrips is satisfied by *carousel.Strips.
type CarouselStrips interface {
	State(name string) (*models.CarouselState, error)
	Apply(name, action string, index int) (*models.CarouselState, error)
}

type CarouselHandler struct {
	strips CarouselStrips
}

func NewCarouselHandler(strips CarouselStrips) *CarouselHandler {
	return &CarouselHandler{strips: strips}
}

func carouselError(err error, name string) error {
	if stdErrors.Is(err, carousel.ErrUnknownStrip) {
		return errors.NotFoundError("Carousel not found").WithDetail(name)
	}

	return errors.BadRequestError("Unsupported carousel action").WithError(err).WithDetail(err.Error())
}

// GetCarousel godoc
//
//	@Summary		Get a carousel
//	@Description	Returns the items and position of the featured, sports or bestsellers strip.
//	@Tags			Carousels
//	@Produce		json
//	@Param			name	path		string					true	"Strip name"	Enums(featured, sports, bestsellers)
//	@Success		200		{object}	models.CarouselState	"Carousel"
//	@Failure		404		{object}	response.ErrorResponse	"Unknown carousel"
//	@Router			/carousels/{name} [get]
func (h *CarouselHandler) GetCarousel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		state, err := h.strips.State(name)
		if err != nil {
			response.Error(w, carouselError(err, name))
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// Navigate godoc
//
//	@Summary		Move or pause a carousel
//	@Description	next and prev wrap around, goto clamps to the valid range. hover/leave and touchstart/touchend pause and resume auto-advance.
//	@Tags			Carousels
//	@Produce		json
//	@Param			name	path		string					true	"Strip name"
//	@Param			action	path		string					true	"Action"	Enums(next, prev, goto, hover, leave, touchstart, touchend)
//	@Param			index	query		int						false	"Target index for goto"
//	@Success		200		{object}	models.CarouselState	"Carousel"
//	@Failure		400		{object}	response.ErrorResponse	"Unsupported action"
//	@Failure		404		{object}	response.ErrorResponse	"Unknown carousel"
//	@Router			/carousels/{name}/{action} [post]
func (h *CarouselHandler) Navigate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		action := r.PathValue("action")

		index := 0
		if v := r.URL.Query().Get("index"); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid carousel index").WithDetail(v))
				return
			}

			index = i
		}

		state, err := h.strips.Apply(name, action, index)
		if err != nil {
			response.Error(w, carouselError(err, name))
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}
