package models

// ReactivationRequest asks for a disabled account to be re-enabled. Transient
// input; never persisted by this service.
type ReactivationRequest struct {
	Email string `json:"email"`
}

// ReactivationResult is the synchronous response to a reactivation call.
type ReactivationResult struct {
	Success bool `json:"success"`
}
