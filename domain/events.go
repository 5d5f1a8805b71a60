package domain

import (
	"fmt"
	"strings"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Registration and verification events
	AccountRegisteredEvent  AuditEventType = "ACCOUNT_REGISTERED"
	AccountRollbackEvent    AuditEventType = "ACCOUNT_ROLLED_BACK"
	EmailVerifiedEvent      AuditEventType = "EMAIL_VERIFIED"
	VerificationSentEvent   AuditEventType = "VERIFICATION_CODE_SENT"
	VerificationFailedEvent AuditEventType = "EMAIL_VERIFICATION_FAILED"

	// Credential events
	LoginEvent         AuditEventType = "ACCOUNT_LOGIN"
	LoginFailedEvent   AuditEventType = "ACCOUNT_LOGIN_FAILED"
	ResetRequestEvent  AuditEventType = "PASSWORD_RESET_REQUESTED"
	ResetCompleteEvent AuditEventType = "PASSWORD_RESET_COMPLETED"
)

// AuditEvent records a lifecycle transition for operational logging.
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	AccountID uint           `json:"account_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	Username  string         `json:"username,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Success   bool           `json:"success"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
}

// NewAuditEvent creates an audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, accountID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		AccountID: accountID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError marks the event failed and records the cause
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithUsername sets the username field
func (e *AuditEvent) WithUsername(username string) *AuditEvent {
	e.Username = username
	return e
}

// String renders the event as a single key=value log line
func (e *AuditEvent) String() string {
	parts := []string{string(e.EventType)}
	if e.AccountID != 0 {
		parts = append(parts, fmt.Sprintf("account_id=%d", e.AccountID))
	}
	if e.Email != "" {
		parts = append(parts, "email="+e.Email)
	}
	if e.Username != "" {
		parts = append(parts, "username="+e.Username)
	}
	if !e.Success {
		parts = append(parts, "success=false")
	}
	if e.ErrorMsg != "" {
		parts = append(parts, "error="+e.ErrorMsg)
	}
	return strings.Join(parts, " ")
}
