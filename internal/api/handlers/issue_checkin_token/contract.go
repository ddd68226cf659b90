package issue_checkin_token

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	issueCheckinToken "github.com/eatease/EatEase-BookingService/internal/usecase/issue_checkin_token"
)

type IssueCheckinTokenUseCase interface {
	Execute(ctx context.Context, req *issueCheckinToken.Request, actor domain.Actor) (*issueCheckinToken.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
