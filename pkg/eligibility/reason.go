package eligibility

import (
	"github.com/QuangTung97/promo-offer/pkg/timecond"
	"strings"
)

// ReasonCode ...
type ReasonCode string

const (
	// ReasonNotFound ...
	ReasonNotFound ReasonCode = "NOT_FOUND"
	// ReasonInactive ...
	ReasonInactive ReasonCode = "INACTIVE"
	// ReasonNotYetStarted ...
	ReasonNotYetStarted ReasonCode = "NOT_YET_STARTED"
	// ReasonExpired ...
	ReasonExpired ReasonCode = "EXPIRED"
	// ReasonGlobalQuotaExceeded ...
	ReasonGlobalQuotaExceeded ReasonCode = "GLOBAL_QUOTA_EXCEEDED"
	// ReasonPerCustomerQuotaExceeded ...
	ReasonPerCustomerQuotaExceeded ReasonCode = "PER_CUSTOMER_QUOTA_EXCEEDED"
	// ReasonMinOrderNotMet ...
	ReasonMinOrderNotMet ReasonCode = "MIN_ORDER_NOT_MET"
	// ReasonTimeConditionUnmet carries the unmet flag in Reason.Condition
	ReasonTimeConditionUnmet ReasonCode = "TIME_CONDITION_UNMET"
	// ReasonRaceLost is reported when the commit-time recheck fails after a passing evaluation
	ReasonRaceLost ReasonCode = "RACE_LOST"
)

// Reason is one violated rule
type Reason struct {
	Code      ReasonCode
	Condition timecond.Flag // only for ReasonTimeConditionUnmet
}

// NewReason ...
func NewReason(code ReasonCode) Reason {
	return Reason{Code: code}
}

// TimeConditionUnmet ...
func TimeConditionUnmet(flag timecond.Flag) Reason {
	return Reason{Code: ReasonTimeConditionUnmet, Condition: flag}
}

func (r Reason) String() string {
	if r.Code == ReasonTimeConditionUnmet {
		return string(r.Code) + "(" + r.Condition.String() + ")"
	}
	return string(r.Code)
}

// Error is returned by operations that must fail, instead of only reporting, when an offer cannot apply.
// Use errors.Is with the Err* sentinels to match a code.
type Error struct {
	Reasons  []Reason
	RaceLost bool
}

// NewError ...
func NewError(reasons ...Reason) *Error {
	return &Error{Reasons: reasons}
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Reasons)+1)
	if e.RaceLost {
		names = append(names, string(ReasonRaceLost))
	}
	for _, r := range e.Reasons {
		names = append(names, r.String())
	}
	return "offer not applicable: " + strings.Join(names, ", ")
}

// Is matches a sentinel error carrying a single code.
// A sentinel with a zero condition flag matches any unmet time condition.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || len(t.Reasons) != 1 {
		return false
	}
	want := t.Reasons[0]

	if want.Code == ReasonRaceLost {
		return e.RaceLost
	}
	for _, r := range e.Reasons {
		if r.Code != want.Code {
			continue
		}
		if want.Condition == 0 || want.Condition == r.Condition {
			return true
		}
	}
	return false
}

var (
	// ErrNotFound ...
	ErrNotFound = NewError(NewReason(ReasonNotFound))
	// ErrInactive ...
	ErrInactive = NewError(NewReason(ReasonInactive))
	// ErrNotYetStarted ...
	ErrNotYetStarted = NewError(NewReason(ReasonNotYetStarted))
	// ErrExpired ...
	ErrExpired = NewError(NewReason(ReasonExpired))
	// ErrGlobalQuotaExceeded ...
	ErrGlobalQuotaExceeded = NewError(NewReason(ReasonGlobalQuotaExceeded))
	// ErrPerCustomerQuotaExceeded ...
	ErrPerCustomerQuotaExceeded = NewError(NewReason(ReasonPerCustomerQuotaExceeded))
	// ErrMinOrderNotMet ...
	ErrMinOrderNotMet = NewError(NewReason(ReasonMinOrderNotMet))
	// ErrTimeConditionUnmet matches any unmet time condition
	ErrTimeConditionUnmet = NewError(NewReason(ReasonTimeConditionUnmet))
	// ErrRaceLost ...
	ErrRaceLost = NewError(NewReason(ReasonRaceLost))
)
