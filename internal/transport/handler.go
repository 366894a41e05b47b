// Package transport exposes the HTTP front end of the minting gateway.
package transport

import (
	"context"
	"errors"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartzplatform/minter-service/internal/model"
)

type (
	// Coordinator is the submit surface consumed by the handler.
	Coordinator interface {
		Submit(ctx context.Context, req model.MintRequest) (model.Outcome, error)
	}
	// Resolver is the status surface consumed by the handler.
	Resolver interface {
		Status(ctx context.Context, id model.MintID) (model.StatusInfo, error)
	}
)

// Handler translates HTTP requests into calls on the mint core. It owns no
// state beyond its dependencies; all idempotency decisions live below it.
type Handler struct {
	coordinator Coordinator
	resolver    Resolver
	logger      *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(coordinator Coordinator, resolver Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		resolver:    resolver,
		logger:      logger.Named("http"),
	}
}

// Register mounts the gateway routes. authToken, when non-empty, guards
// the mutating route: the front end is the capability check, the core
// below assumes a single authorized caller.
func (h *Handler) Register(router *gin.Engine, authToken string) {
	router.GET("/healthz", h.health)

	v1 := router.Group("/v1")
	v1.GET("/mints/:mint_id", h.queryStatus)
	v1.POST("/mints", requireAuth(authToken), h.requestMint)
}

type mintRequestBody struct {
	MintID    string `json:"mint_id" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

// mintResponse is the wire shape of a mint record. The confirmation
// counters are pointers so a pending mint at depth zero still carries
// them, while terminal statuses omit them entirely.
type mintResponse struct {
	MintID                 string  `json:"mint_id"`
	Status                 string  `json:"status"`
	SubmissionRef          string  `json:"submission_ref,omitempty"`
	Confirmations          *uint64 `json:"confirmations,omitempty"`
	RemainingConfirmations *uint64 `json:"rest_confirmations,omitempty"`
	Error                  string  `json:"error,omitempty"`
}

func (h *Handler) requestMint(c *gin.Context) {
	var body mintRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := model.NewMintID(body.MintID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty mint_id"})
		return
	}
	if !common.IsHexAddress(body.Recipient) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad recipient address"})
		return
	}
	amount, ok := new(big.Int).SetString(body.Amount, 10)
	if !ok || amount.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad amount"})
		return
	}

	outcome, err := h.coordinator.Submit(c.Request.Context(), model.MintRequest{
		ID:        id,
		Recipient: common.HexToAddress(body.Recipient).Hex(),
		Amount:    amount,
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, recordResponse(outcome.Record))
	case errors.Is(err, model.ErrIdentifierMismatch):
		resp := recordResponse(outcome.Record)
		resp.Error = "mint_id already used with different recipient or amount"
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, model.ErrLedgerRejected):
		c.JSON(http.StatusBadGateway, recordResponse(outcome.Record))
	case model.IsLedgerTransient(err):
		// The submission is reserved and may still land; the caller
		// polls status instead of resubmitting.
		c.JSON(http.StatusAccepted, recordResponse(outcome.Record))
	case errors.Is(err, model.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		h.logger.Error("submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) queryStatus(c *gin.Context) {
	id, err := model.NewMintID(c.Param("mint_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty mint_id"})
		return
	}

	info, err := h.resolver.Status(c.Request.Context(), id)
	switch {
	case err == nil:
		resp := recordResponse(info.Record)
		if info.Record.Status == model.MintPending {
			confirmations, remaining := info.Confirmations, info.RemainingConfirmations
			resp.Confirmations = &confirmations
			resp.RemainingConfirmations = &remaining
		}
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, model.ErrNodeSyncing):
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "node_syncing"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "not_minted"})
	case errors.Is(err, model.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		h.logger.Error("status query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// recordResponse maps a record to the wire vocabulary: minting while
// pending, minted once confirmed.
func recordResponse(rec model.MintRecord) mintResponse {
	status := "minting"
	switch rec.Status {
	case model.MintConfirmed:
		status = "minted"
	case model.MintFailed:
		status = "failed"
	}

	return mintResponse{
		MintID:        string(rec.ID),
		Status:        status,
		SubmissionRef: rec.SubmissionRef,
	}
}
