package tabnews

import (
	apierrors "github.com/tabnews/tabnews-go/internal/errors"
	"github.com/tabnews/tabnews-go/internal/types"
)

// Public type aliases so SDK consumers can import only the tabnews package.
type (
	// Requests
	ContentParams     = types.ContentParams
	Strategy          = types.Strategy
	CreateUserRequest = types.CreateUserRequest
	LoginRequest      = types.LoginRequest
	RecoveryRequest   = types.RecoveryRequest

	// Domain entities
	Content            = types.Content
	ContentWithoutBody = types.ContentWithoutBody
	ContentStatus      = types.ContentStatus
	StatusPoint        = types.StatusPoint
	UserToken          = types.UserToken
	User               = types.User

	// Faults
	APIFault = apierrors.APIFault
)

// Result is the outcome of a request the server answered.
type Result[T any] = types.Result[T]

const (
	StrategyNew      = types.StrategyNew
	StrategyOld      = types.StrategyOld
	StrategyRelevant = types.StrategyRelevant

	StatusPublished = types.StatusPublished
	StatusDraft     = types.StatusDraft

	MetricUsersCreated          = types.MetricUsersCreated
	MetricRootContentPublished  = types.MetricRootContentPublished
	MetricChildContentPublished = types.MetricChildContentPublished
)
