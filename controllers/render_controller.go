// controllers/render_controller.go
package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sniperlink/models"
	"sniperlink/utils"
)

const (
	ErrMissingFields   = "Missing recipient or sender"
	ErrUnknownProvider = "Unknown email provider"
)

// ProviderResolver is what the render endpoint needs from the resolver
type ProviderResolver interface {
	Resolve(ctx context.Context, recipient string) (*models.Provider, error)
}

type RenderController struct {
	Resolver   ProviderResolver
	PublicHost string
	Logger     *logrus.Entry
}

func NewRenderController(resolver ProviderResolver, publicHost string, logger *logrus.Entry) *RenderController {
	return &RenderController{
		Resolver:   resolver,
		PublicHost: strings.TrimSuffix(publicHost, "/"),
		Logger:     logger,
	}
}

// RenderQuery holds the query parameters of the render endpoint
type RenderQuery struct {
	Recipient string `query:"recipient" validate:"required"`
	Sender    string `query:"sender" validate:"required"`
}

// RenderResponse is consumed by the widget, field names must not change
type RenderResponse struct {
	URL            string `json:"url"`
	Image          string `json:"image"`
	ProviderPretty string `json:"provider_pretty"`
}

// Render resolves the recipient's provider and returns a link into its inbox
func (rc *RenderController) Render(c *fiber.Ctx) error {
	var query RenderQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeMissingFields, ErrMissingFields, nil)
	}
	if err := utils.ValidateStruct(query); err != nil {
		rc.Logger.WithField("reason", err.Error()).Debug("Rejected render request")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeMissingFields, ErrMissingFields, nil)
	}

	params := models.LinkParams{
		Recipient: strings.ToLower(strings.TrimSpace(query.Recipient)),
		Sender:    strings.ToLower(strings.TrimSpace(query.Sender)),
	}
	platform := utils.DetectPlatform(c.Get(fiber.HeaderUserAgent))

	provider, err := rc.Resolver.Resolve(c.UserContext(), params.Recipient)
	if err != nil {
		// Same answer as an unknown domain, but worth an alert
		utils.LogWarning("dns_lookup_failed", err, map[string]interface{}{
			"domain": utils.ExtractDomain(params.Recipient),
		})
	}
	if provider == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, utils.CodeUnknownEmailProvider, ErrUnknownProvider,
			map[string]interface{}{"recipient": params.Recipient})
	}

	rc.Logger.WithFields(logrus.Fields{
		"provider": provider.ID,
		"platform": platform,
	}).Debug("Rendered link")

	return c.JSON(RenderResponse{
		URL:            utils.GenerateLink(platform, provider, params),
		Image:          rc.PublicHost + provider.LogoPath(),
		ProviderPretty: provider.DisplayName,
	})
}
