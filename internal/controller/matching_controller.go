package controller

import (
	"encoding/json"

	"intern-matching-be/internal/constant"
	"intern-matching-be/internal/dto"
	"intern-matching-be/internal/pkg/serverutils"
	"intern-matching-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchingController interface {
	RegisterRoutes(r fiber.Router)
	EmbedIntern(ctx *fiber.Ctx) error
	EmbedJob(ctx *fiber.Ctx) error
	GetMatchesForIntern(ctx *fiber.Ctx) error
	GetCandidatesForJob(ctx *fiber.Ctx) error
}

type matchingController struct {
	matchingService  service.IMatchingService
	publisherService service.IPublisherService
}

func NewMatchingController(
	matchingService service.IMatchingService,
	publisherService service.IPublisherService,
) IMatchingController {
	return &matchingController{
		matchingService:  matchingService,
		publisherService: publisherService,
	}
}

func (c *matchingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/matching/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("embed-intern", c.EmbedIntern)
	h.Post("embed-job", c.EmbedJob)
	h.Get("interns/:id/matches", c.GetMatchesForIntern)
	h.Get("jobs/:id/candidates", c.GetCandidatesForJob)
}

// EmbedIntern enqueues a re-embed of one intern profile. The heavy work
// happens on the consumer side so the caller gets an immediate 202-style
// acknowledgement.
func (c *matchingController) EmbedIntern(ctx *fiber.Ctx) error {
	var req dto.EmbedInternRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	payload, err := json.Marshal(dto.PublishEmbedEntityMessage{
		Kind:     constant.EntityKindIntern,
		EntityId: req.InternId,
	})
	if err != nil {
		return err
	}

	if err := c.publisherService.Publish(ctx.Context(), payload); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Embedding queued", dto.EmbedAcceptedResponse{
		Kind:     constant.EntityKindIntern,
		EntityId: req.InternId,
	}))
}

// EmbedJob enqueues a re-embed of one job post.
func (c *matchingController) EmbedJob(ctx *fiber.Ctx) error {
	var req dto.EmbedJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	payload, err := json.Marshal(dto.PublishEmbedEntityMessage{
		Kind:     constant.EntityKindJob,
		EntityId: req.JobId,
	})
	if err != nil {
		return err
	}

	if err := c.publisherService.Publish(ctx.Context(), payload); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Embedding queued", dto.EmbedAcceptedResponse{
		Kind:     constant.EntityKindJob,
		EntityId: req.JobId,
	}))
}

func (c *matchingController) GetMatchesForIntern(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid intern id")
	}

	res, err := c.matchingService.GetMatchesForIntern(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get matches", res))
}

func (c *matchingController) GetCandidatesForJob(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid job id")
	}

	res, err := c.matchingService.GetCandidatesForJob(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get candidates", res))
}
