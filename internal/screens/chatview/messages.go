package chatview

import (
	"time"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/llm"
)

// exchangeDoneMsg is sent when the provider call for an exchange returns.
type exchangeDoneMsg struct {
	UserMsg chat.Message
	Resp    *llm.Response
	Err     error
}

// attachmentLoadedMsg is sent when a file picked for attachment has been read.
type attachmentLoadedMsg struct {
	Attachment *chat.Attachment
	FileName   string
	Err        error
}

// spinnerTickMsg animates the waiting indicator while an exchange is in flight.
type spinnerTickMsg time.Time

// noticeExpiredMsg clears a transient notice line.
type noticeExpiredMsg struct{}
