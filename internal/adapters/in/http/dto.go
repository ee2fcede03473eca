package http

import "time"

// PlaceOrderRequest is the body for POST /api/v1/orders.
type PlaceOrderRequest struct {
	ProductID     string  `json:"productId"`
	DesignDataURI string  `json:"designDataUri"`
	Color         string  `json:"color"`
	Size          string  `json:"size"`
	Price         float64 `json:"price"`
}

// PlaceOrderResponse returns the identifier of the placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

// OrderResponse is one order row in the staff order list.
type OrderResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WorkOrderResponse is one work order row on the production planning screen.
type WorkOrderResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	ProductName   string    `json:"productName"`
	ProductColor  string    `json:"productColor"`
	ProductSize   string    `json:"productSize"`
	DesignDataURI string    `json:"designDataUri"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	IsSubcontract bool      `json:"isSubcontract"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ChangeStatusRequest is the body for PATCH /api/v1/work-orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// MaterialRequirementResponse is one (product, size) group with the total
// units awaiting in-house production.
type MaterialRequirementResponse struct {
	ProductName   string `json:"productName"`
	ProductSize   string `json:"productSize"`
	TotalQuantity int    `json:"totalQuantity"`
}

// SubcontractWorklistItemResponse is one open subcontracted work order.
type SubcontractWorklistItemResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	ProductName  string    `json:"productName"`
	ProductColor string    `json:"productColor"`
	ProductSize  string    `json:"productSize"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EnhanceDesignRequest is the body for POST /api/v1/designs/enhance.
type EnhanceDesignRequest struct {
	DesignDataURI string `json:"designDataUri"`
	Prompt        string `json:"prompt"`
}

// EnhanceDesignResponse carries the enhancement result. When the upstream
// service fails, Degraded is true and the original design is returned.
type EnhanceDesignResponse struct {
	EnhancedDesignDataURI string   `json:"enhancedDesignDataUri"`
	Suggestions           []string `json:"suggestions"`
	Degraded              bool     `json:"degraded"`
}

// ErrorResponse is the generic error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
