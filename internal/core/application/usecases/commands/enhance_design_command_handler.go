package commands

import (
	"context"
	"log/slog"

	"printstream/internal/core/ports"
)

// EnhanceDesignResult is the outcome of a design enhancement request.
// When the upstream service fails, Degraded is true and the original design
// is returned unchanged — enhancement failure never blocks order placement.
type EnhanceDesignResult struct {
	EnhancedDesignDataURI string
	Suggestions           []string
	Degraded              bool
}

// EnhanceDesignCommandHandler calls the external design enhancement service
// and degrades gracefully on failure.
//
// The enhancement service is a black box: whatever payload it returns is
// accepted as-is. Upstream failures are logged with full detail server-side
// and reported to the caller only through the Degraded flag, so the customer
// can still place the order with the original design.
type EnhanceDesignCommandHandler struct {
	enhancer ports.DesignEnhancer
	logger   *slog.Logger
}

// NewEnhanceDesignCommandHandler creates a handler for design enhancement.
// Requires the DesignEnhancer port and a logger for upstream failure detail.
func NewEnhanceDesignCommandHandler(enhancer ports.DesignEnhancer, logger *slog.Logger) EnhanceDesignCommandHandler {
	return EnhanceDesignCommandHandler{
		enhancer: enhancer,
		logger:   logger.With("component", "enhance_design_handler"),
	}
}

// Handle processes the enhancement command.
// Returns the enhanced design on success, or the original design with
// Degraded set when the upstream service fails. The only error returned is a
// validation error on the command itself.
func (h *EnhanceDesignCommandHandler) Handle(ctx context.Context, cmd EnhanceDesignCommand) (EnhanceDesignResult, error) {
	if err := cmd.Validate(); err != nil {
		return EnhanceDesignResult{}, err
	}

	resp, err := h.enhancer.Enhance(ctx, ports.EnhanceDesignRequest{
		DesignDataURI: cmd.DesignDataURI(),
		Prompt:        cmd.Prompt(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "Design enhancement failed, returning original design", "error", err)
		return EnhanceDesignResult{
			EnhancedDesignDataURI: cmd.DesignDataURI(),
			Suggestions:           []string{},
			Degraded:              true,
		}, nil
	}

	// The upstream payload is opaque; an empty enhanced design falls back to
	// the original so callers always get something printable.
	enhanced := resp.EnhancedDesignDataURI
	if enhanced == "" {
		enhanced = cmd.DesignDataURI()
	}

	suggestions := resp.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return EnhanceDesignResult{
		EnhancedDesignDataURI: enhanced,
		Suggestions:           suggestions,
	}, nil
}
