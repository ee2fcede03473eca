package ports

import "context"

// EnhanceDesignRequest carries a design payload to the enhancement service.
// The payload is a base64 data URI; the optional prompt guides the enhancement.
type EnhanceDesignRequest struct {
	DesignDataURI string
	Prompt        string
}

// EnhanceDesignResponse is the enhancement service's answer. The payload is
// treated as a black box and stored as-is.
type EnhanceDesignResponse struct {
	EnhancedDesignDataURI string
	Suggestions           []string
}

// DesignEnhancer defines the contract for the external generative design
// enhancement service. Implementations return errs.UpstreamServiceError when
// the service fails or times out; callers degrade gracefully and must never
// let an enhancement failure block order placement.
type DesignEnhancer interface {
	Enhance(ctx context.Context, req EnhanceDesignRequest) (EnhanceDesignResponse, error)
}
