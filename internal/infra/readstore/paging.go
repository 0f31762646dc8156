package readstore

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

// pageArgs converts normalized list params into the sqlc argument shapes.
// An empty search becomes NULL so the query skips the ILIKE filter.
func pageArgs(p queries.ListParams) (pgtype.Text, int32, int32) {
	p = p.Normalize()
	return pgconv.OptionalStringToPgtype(p.Search), int32(p.Limit), int32(p.Offset)
}
