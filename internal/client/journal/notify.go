package journal

import (
	"errors"

	"github.com/dmitrijs2005/gophjournal/internal/client/entries"
	"github.com/dmitrijs2005/gophjournal/internal/client/session"
	"github.com/dmitrijs2005/gophjournal/internal/common"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is what a handler wants the user to see. The zero value
// means there is nothing to show.
type Notification struct {
	Level   Level
	Message string
}

func (n Notification) Empty() bool { return n.Message == "" }

func success(msg string) Notification { return Notification{Level: LevelSuccess, Message: msg} }
func info(msg string) Notification    { return Notification{Level: LevelInfo, Message: msg} }
func warning(msg string) Notification { return Notification{Level: LevelWarning, Message: msg} }
func failure(msg string) Notification { return Notification{Level: LevelError, Message: msg} }

const (
	MsgSessionExpired = "Your session has expired. Please log in again."
	MsgLoginFirst     = "Please log in first."
	MsgLoadFailed     = "Could not load entries from server"
	MsgSaveFailed     = "Could not save entry"
	MsgDeleteFailed   = "Could not delete entry"
	MsgCommentFailed  = "Could not save comment"
	MsgExportFailed   = "Could not export journal"
	MsgEntryNotFound  = "Entry not found"
	MsgNothingPending = "There is no entry waiting to be deleted."
)

// notify turns an error from the core into a notification. retry is the
// operation's own message for transport failures.
func notify(err error, retry string) Notification {
	if err == nil {
		return Notification{}
	}

	var (
		ve  *common.ValidationError
		se  *common.ServerError
		ae  *session.AuthError
		lde *entries.LoadError
	)
	switch {
	case errors.Is(err, common.ErrStaleResponse):
		return Notification{}
	case errors.As(err, &ve):
		return warning(ve.Message)
	case errors.As(err, &ae):
		return failure(ae.Message)
	case errors.Is(err, common.ErrAuthRejected):
		return failure(MsgSessionExpired)
	case errors.Is(err, common.ErrNotLoggedIn):
		return warning(MsgLoginFirst)
	case errors.Is(err, common.ErrEntryNotFound):
		return failure(MsgEntryNotFound)
	case errors.Is(err, common.ErrNoPendingDelete):
		return warning(MsgNothingPending)
	case errors.As(err, &lde):
		if errors.As(err, &se) && se.Message != "" {
			return failure(se.Message)
		}
		return failure(MsgLoadFailed)
	case errors.As(err, &se) && se.Message != "":
		return failure(se.Message)
	default:
		return failure(retry)
	}
}
