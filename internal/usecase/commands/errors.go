package commands

import (
	"sendero-web/internal/infra"
	"sendero-web/internal/pkg/errs"
	"sendero-web/internal/pkg/metrics"
)

const (
	FormWaitlist = "waitlist"
	FormContact  = "contact"
	FormFeedback = "feedback"
)

// classifyStoreErr maps a repository failure onto the metrics outcome label
// and one of the shared sentinels.
func classifyStoreErr(err error, what string) (string, error) {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return metrics.OutcomeDuplicate, errs.Mark(errs.Wrap(err, what), errs.ErrDuplicateSubmission)
	}
	return metrics.OutcomeFailed, errs.Mark(errs.Wrap(err, what), errs.ErrDatabaseOperationFailed)
}
