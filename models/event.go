package models

import "fmt"

// EventKind identifies a notification emitted by the transport.
type EventKind int

const (
	EventConnected EventKind = iota + 1
	EventDisconnected
	EventLoggedOn
	EventLoggedOff
	EventAccountInfo
)

func (k EventKind) String() string {
	switch k {
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	case EventLoggedOn:
		return "logged_on"
	case EventLoggedOff:
		return "logged_off"
	case EventAccountInfo:
		return "account_info"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a single transport notification.
//
// Result and ExtendedResult are only meaningful for logon and logoff events.
type Event struct {
	Kind           EventKind
	Result         LogOnResult
	ExtendedResult LogOnResult
}

// LogOnResult is the result code reported by the remote service.
type LogOnResult int

const (
	ResultInvalid              LogOnResult = 0
	ResultOK                   LogOnResult = 1
	ResultFail                 LogOnResult = 2
	ResultNoConnection         LogOnResult = 3
	ResultInvalidPassword      LogOnResult = 5
	ResultLoggedInElsewhere    LogOnResult = 6
	ResultBusy                 LogOnResult = 10
	ResultTimeout              LogOnResult = 16
	ResultAccessDenied         LogOnResult = 15
	ResultServiceUnavailable   LogOnResult = 20
	ResultExpired              LogOnResult = 27
	ResultRateLimitExceeded    LogOnResult = 84
	ResultAccountLoginDenied   LogOnResult = 63
	ResultTwoFactorCodeInvalid LogOnResult = 88
)

var logOnResultNames = map[LogOnResult]string{
	ResultInvalid:              "Invalid",
	ResultOK:                   "OK",
	ResultFail:                 "Fail",
	ResultNoConnection:         "NoConnection",
	ResultInvalidPassword:      "InvalidPassword",
	ResultLoggedInElsewhere:    "LoggedInElsewhere",
	ResultBusy:                 "Busy",
	ResultTimeout:              "Timeout",
	ResultAccessDenied:         "AccessDenied",
	ResultServiceUnavailable:   "ServiceUnavailable",
	ResultExpired:              "Expired",
	ResultRateLimitExceeded:    "RateLimitExceeded",
	ResultAccountLoginDenied:   "AccountLoginDeniedNeedTwoFactor",
	ResultTwoFactorCodeInvalid: "TwoFactorCodeMismatch",
}

func (r LogOnResult) String() string {
	if name, ok := logOnResultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Result(%d)", int(r))
}
