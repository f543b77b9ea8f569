package dto

// StatusResponse represents the API response for a user's wallet status
type StatusResponse struct {
	UserID         uint64 `json:"userId"`
	Credits        int64  `json:"credits"`
	WelcomeClaimed bool   `json:"welcomeClaimed"`
}

// ConsumeRequest represents the body of a consume call. Amount defaults to
// one credit when omitted.
type ConsumeRequest struct {
	ResourceType string `json:"resourceType" binding:"required"`
	Amount       int64  `json:"amount"`
}

// GrantRequest represents the body of an admin grant call
type GrantRequest struct {
	UserID      uint64 `json:"userId" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ResultResponse represents the outcome of a wallet operation. Business
// rejections come back with Success false and a human-readable message.
type ResultResponse struct {
	UserID  uint64 `json:"userId"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreateUserRequest represents the body of an admin user provisioning call
type CreateUserRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
}

// TransactionResponse represents a single ledger entry in history responses
type TransactionResponse struct {
	ID          uint64 `json:"id"`
	Amount      int64  `json:"amount"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// TransactionListResponse wraps a user's ledger history
type TransactionListResponse struct {
	UserID       uint64                `json:"userId"`
	Transactions []TransactionResponse `json:"transactions"`
}
