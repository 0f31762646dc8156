//go:build unit

package sitesetting_test

import (
	"testing"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/sitesetting"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetting(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s, err := sitesetting.NewSetting("hero.title", "Welcome", "xx", "", now)
	require.NoError(t, err)
	assert.Equal(t, locale.Default, s.Language())

	for _, key := range []string{"", "Hero", "hero title", "hero-title"} {
		_, err := sitesetting.NewSetting(key, "v", locale.English, "", now)
		assert.ErrorIs(t, err, sitesetting.ErrInvalidKey, "key %q", key)
	}
}

func TestMerge(t *testing.T) {
	defaults := map[string]string{"site_name": "Holistic Web", "hero_title": "Find your balance"}
	localized := map[string]string{"hero_title": "Тэнцвэрээ ол", "footer": "Баярлалаа"}

	got := sitesetting.Merge(defaults, localized)

	want := map[string]string{
		"site_name":  "Holistic Web",
		"hero_title": "Тэнцвэрээ ол",
		"footer":     "Баярлалаа",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Find your balance", defaults["hero_title"], "inputs are not mutated")
}
