package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dispatch-server/internal/apierrors"
	"dispatch-server/internal/campaigns/processor"
	"dispatch-server/internal/observability"
	"dispatch-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the campaign API.
type Handler struct {
	processor *processor.Processor
	logger    *observability.Logger
}

func New(p *processor.Processor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: p,
		logger:    logger,
	}
}

// CreateCampaignRequest is the HTTP payload for creating a draft campaign
type CreateCampaignRequest struct {
	Name               string     `json:"name" binding:"required,min=1,max=200"`
	Category           string     `json:"category" binding:"max=100"`
	DailyLimit         int        `json:"daily_limit" binding:"gte=0"`
	StartHour          int        `json:"start_hour" binding:"gte=0,lte=23"`
	EndHour            int        `json:"end_hour" binding:"gte=0,lte=23"`
	IntervalMinutes    int        `json:"interval_minutes" binding:"required,gte=1"`
	Weekdays           int        `json:"weekdays" binding:"gte=0,lte=127"`
	RotationEnabled    bool       `json:"rotation_enabled"`
	RotationStrategy   string     `json:"rotation_strategy" binding:"omitempty,oneof=round_robin random primary_first"`
	PrimaryShare       int        `json:"primary_share" binding:"gte=0"`
	PerContactDailyCap int        `json:"per_contact_daily_cap" binding:"gte=0"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
}

// HandleCreateCampaign creates a draft campaign for a store
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	storeSlug := c.Param("slug")

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "store_slug", Value: storeSlug})

	campaign, err := h.processor.Create(ctx, processor.CreateParams{
		StoreSlug:          storeSlug,
		Name:               req.Name,
		Category:           req.Category,
		DailyLimit:         req.DailyLimit,
		StartHour:          req.StartHour,
		EndHour:            req.EndHour,
		IntervalMinutes:    req.IntervalMinutes,
		Weekdays:           req.Weekdays,
		RotationEnabled:    req.RotationEnabled,
		RotationStrategy:   req.RotationStrategy,
		PrimaryShare:       req.PrimaryShare,
		PerContactDailyCap: req.PerContactDailyCap,
		ScheduledStart:     req.ScheduledStart,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// ScheduleCampaignRequest carries the audience snapshot and message
// variations a draft campaign is scheduled with
type ScheduleCampaignRequest struct {
	Recipients []processor.Recipient `json:"recipients" binding:"required,min=1,dive"`
	Variations []string              `json:"variations" binding:"required,min=1"`
	Randomize  bool                  `json:"randomize"`
}

// HandleScheduleCampaign resolves the audience and generates the send queue
func (h *Handler) HandleScheduleCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req ScheduleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	result, err := h.processor.Schedule(ctx, campaignID, processor.ScheduleParams{
		Recipients: req.Recipients,
		Variations: req.Variations,
		Randomize:  req.Randomize,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign":            result.Campaign,
		"queued":              result.Queued,
		"excluded_recipients": result.ExcludedRecipients,
		"estimated_finish":    result.EstimatedFinish,
		"estimated_days":      result.EstimatedDays,
	})
}

// HandlePauseCampaign pauses a running campaign
func (h *Handler) HandlePauseCampaign(c *gin.Context) {
	h.transition(c, h.processor.Pause)
}

// HandleResumeCampaign resumes a paused campaign
func (h *Handler) HandleResumeCampaign(c *gin.Context) {
	h.transition(c, h.processor.Resume)
}

// HandleCancelCampaign cancels a campaign
func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	h.transition(c, h.processor.Cancel)
}

// HandleRetryFailed requeues a campaign's failed messages
func (h *Handler) HandleRetryFailed(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	requeued, err := h.processor.RetryFailed(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requeued": requeued})
}

// HandleGetCampaign returns a campaign with queue stats and completion
// estimate
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	overview, err := h.processor.GetOverview(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// HandleListCampaigns returns a page of a store's campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()
	storeSlug := c.Param("slug")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	result, err := h.processor.List(ctx, store.ListCampaignsParams{
		StoreSlug: storeSlug,
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns":   result.Campaigns,
		"total_count": result.TotalCount,
	})
}

func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (store.Campaign, error)) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := op(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) campaignID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign id"))
		return uuid.Nil, false
	}
	return id, true
}
