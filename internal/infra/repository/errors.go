package repository

import "github.com/Zolbayar-hub/holisticweb/internal/infra"

// affectedOne turns a zero row count from an :execrows statement into KindNotFound.
func affectedOne(entity, op string, rows int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr("failed to "+op+" "+entity, err)
	}
	if rows == 0 {
		return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
	}
	return nil
}
