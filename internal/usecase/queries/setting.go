package queries

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/sitesetting"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

type SettingReadStore interface {
	FindByID(ctx context.Context, id int64) (*SettingView, error)
	ListByLanguage(ctx context.Context, language string) ([]*SettingView, error)
	List(ctx context.Context, params ListParams) ([]*SettingView, error)
}

type SettingQueries interface {
	// Localized returns key/value pairs for language, falling back to the
	// default language for keys that have no translation.
	Localized(ctx context.Context, language locale.Language) (map[string]string, error)
	Get(ctx context.Context, id int64) (*SettingView, error)
	List(ctx context.Context, params ListParams) ([]*SettingView, error)
}

type settingQueriesImpl struct {
	readStore SettingReadStore
}

func NewSettingQueries(readStore SettingReadStore) SettingQueries {
	return &settingQueriesImpl{readStore: readStore}
}

func (q *settingQueriesImpl) Localized(ctx context.Context, language locale.Language) (map[string]string, error) {
	if !language.IsValid() {
		language = locale.Default
	}

	defaults, err := q.readStore.ListByLanguage(ctx, locale.Default.String())
	if err != nil {
		return nil, err
	}
	if language == locale.Default {
		return sitesetting.Merge(toKeyValues(defaults), nil), nil
	}

	localized, err := q.readStore.ListByLanguage(ctx, language.String())
	if err != nil {
		return nil, err
	}
	return sitesetting.Merge(toKeyValues(defaults), toKeyValues(localized)), nil
}

func (q *settingQueriesImpl) Get(ctx context.Context, id int64) (*SettingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSettingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *settingQueriesImpl) List(ctx context.Context, params ListParams) ([]*SettingView, error) {
	return q.readStore.List(ctx, params.Normalize())
}

func toKeyValues(views []*SettingView) map[string]string {
	out := make(map[string]string, len(views))
	for _, v := range views {
		out[v.Key] = v.Value
	}
	return out
}
