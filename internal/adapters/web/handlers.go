// Package web exposes the rendered-post API over Fiber.
package web

import (
	"context"
	"errors"
	"time"

	"birdfeed/internal/domain"
	"birdfeed/internal/usecases"
	"birdfeed/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 30 * time.Second

// Handlers contains the HTTP handlers for the rendered-post API.
type Handlers struct {
	timeline *usecases.GetTimelineUseCase
	search   *usecases.SearchTweetsUseCase
	getTweet *usecases.GetTweetUseCase
	limiter  *RateLimiter
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	timeline *usecases.GetTimelineUseCase,
	search *usecases.SearchTweetsUseCase,
	getTweet *usecases.GetTweetUseCase,
	limiter *RateLimiter,
) *Handlers {
	return &Handlers{timeline: timeline, search: search, getTweet: getTweet, limiter: limiter}
}

// Healthz reports liveness.
func (h *Handlers) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Timeline renders a user's timeline as JSON.
func (h *Handlers) Timeline(c *fiber.Ctx) error {
	if !h.limiter.Allow(c.IP()) {
		return h.renderError(c, domain.ErrRateLimited)
	}

	screenName := c.Params("screenName")
	count := c.QueryInt("count", 20)

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	rendered, err := h.timeline.Execute(ctx, screenName, count)
	if err != nil {
		log.GlobalErrorCtx(ctx, "timeline failed", "screen_name", screenName, "error", err.Error())
		return h.renderError(c, err)
	}
	return c.JSON(rendered)
}

// Search renders posts matching the q query parameter.
func (h *Handlers) Search(c *fiber.Ctx) error {
	if !h.limiter.Allow(c.IP()) {
		return h.renderError(c, domain.ErrRateLimited)
	}

	query := c.Query("q")
	count := c.QueryInt("count", 20)

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	rendered, err := h.search.Execute(ctx, query, count)
	if err != nil {
		log.GlobalErrorCtx(ctx, "search failed", "query", query, "error", err.Error())
		return h.renderError(c, err)
	}
	return c.JSON(rendered)
}

// GetTweet renders a single post by handle and ID (mirrors the status URL
// structure).
func (h *Handlers) GetTweet(c *fiber.Ctx) error {
	screenName := c.Params("screenName")
	id := c.Params("id")

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	rendered, err := h.getTweet.Execute(ctx, screenName, id)
	if err != nil {
		log.GlobalErrorCtx(ctx, "get tweet failed", "screen_name", screenName, "post_id", id, "error", err.Error())
		return h.renderError(c, err)
	}
	return c.JSON(rendered)
}

// Resolve accepts a pasted status URL in the url form value and redirects to
// the canonical API path.
func (h *Handlers) Resolve(c *fiber.Ctx) error {
	url := c.FormValue("url")
	screenName, id, err := ParseStatusURL(url)
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "invalid status URL", "url", url)
		return h.renderError(c, err)
	}
	return c.Redirect("/api/"+screenName+"/status/"+id, fiber.StatusSeeOther)
}

// renderError maps domain errors to HTTP statuses with a JSON body.
func (h *Handlers) renderError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	switch {
	case errors.Is(err, domain.ErrInvalidURL), errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrSpanOutOfRange):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTweetNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		status = fiber.StatusTooManyRequests
	}
	return c.Status(status).JSON(fiber.Map{"error": friendlyError(err)})
}

// friendlyError returns a neutral, non-blaming message.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrTweetNotFound):
		return "This post couldn't be found. It might no longer be available."
	case errors.Is(err, domain.ErrInvalidURL):
		return "That doesn't look like a status URL. Try pasting a link from twitter.com or x.com"
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, domain.ErrInvalidRecord), errors.Is(err, domain.ErrSpanOutOfRange):
		return "This post couldn't be rendered."
	default:
		return "Unable to load posts right now. Please try again in a moment."
	}
}
