package request

// StartSessionRequest opens a counter session for a cashier.
type StartSessionRequest struct {
	Username string `json:"username" binding:"required,min=1,max=255"`
}
