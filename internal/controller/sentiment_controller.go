package controller

import (
	"sentiment-dashboard/internal/dto"
	"sentiment-dashboard/internal/mapper"
	"sentiment-dashboard/internal/pkg/serverutils"
	"sentiment-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISentimentController interface {
	RegisterRoutes(r fiber.Router)
	GetDataset(ctx *fiber.Ctx) error
	Predict(ctx *fiber.Ctx) error
	PredictBulk(ctx *fiber.Ctx) error
}

type sentimentController struct {
	service     service.ISentimentService
	previewRows int
}

func NewSentimentController(service service.ISentimentService, previewRows int) ISentimentController {
	return &sentimentController{service: service, previewRows: previewRows}
}

func (c *sentimentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1")
	h.Get("/dataset", c.GetDataset)
	h.Post("/predict", c.Predict)
	h.Post("/predict/bulk", c.PredictBulk)
}

func (c *sentimentController) GetDataset(ctx *fiber.Ctx) error {
	res := mapper.ToDatasetResponse(c.service.Dataset(), c.previewRows)
	return ctx.JSON(serverutils.SuccessResponse("Dataset loaded", res))
}

func (c *sentimentController) Predict(ctx *fiber.Ctx) error {
	var req dto.PredictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Predict(ctx.UserContext(), req.Text)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Prediction completed", res))
}

func (c *sentimentController) PredictBulk(ctx *fiber.Ctx) error {
	var req dto.BulkPredictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.service.PredictBulk(ctx.UserContext(), req.Column)
	if err != nil {
		return err
	}
	res := mapper.ToBulkPredictResponse(req.Column, c.service.ResultColumn(), result, req.Limit)
	return ctx.JSON(serverutils.SuccessResponse("Sentiment analysis completed", res))
}
