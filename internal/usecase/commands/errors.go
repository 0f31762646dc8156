package commands

import (
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

// mapRepoErr turns repository kinds into the shared sentinels handlers map to HTTP.
func mapRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}

func validationErr(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}
