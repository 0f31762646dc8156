//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/sitesetting"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sharedmock "github.com/Zolbayar-hub/holisticweb/internal/mock/shared"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

var catalogNow = time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

// CatalogCommandsTestSuite covers the admin-managed content: services, templates and settings.
type CatalogCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	services  *sharedmock.MockServiceRepository
	templates *sharedmock.MockTemplateRepository
	settings  *sharedmock.MockSettingRepository
	uow       *sharedmock.MockUnitOfWork
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.services = sharedmock.NewMockServiceRepository(s.mockCtrl)
	s.templates = sharedmock.NewMockTemplateRepository(s.mockCtrl)
	s.settings = sharedmock.NewMockSettingRepository(s.mockCtrl)

	tx := sharedmock.NewMockTx(s.mockCtrl)
	tx.EXPECT().Services().Return(s.services).AnyTimes()
	tx.EXPECT().Templates().Return(s.templates).AnyTimes()
	tx.EXPECT().Settings().Return(s.settings).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).
		AnyTimes()
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func (s *CatalogCommandsTestSuite) TestServiceCreate() {
	cmds := commands.NewServiceCommands(s.uow, clock.NewMockClock(catalogNow))
	inactive := false

	s.Run("success: inactive flag and unknown language", func() {
		s.services.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, svc *service.Service) (int64, error) {
				s.Equal("Sound Bath", svc.Name())
				s.Equal(locale.English, svc.Language())
				s.False(svc.IsActive())
				return 3, nil
			})

		id, err := cmds.Create(context.Background(), commands.ServiceInput{
			Name: "Sound Bath", PriceCents: 4500, DurationMin: 60, Language: "FRA", IsActive: &inactive,
		})

		s.Require().NoError(err)
		s.Equal(int64(3), id)
	})

	s.Run("failure: negative price", func() {
		_, err := cmds.Create(context.Background(), commands.ServiceInput{Name: "x", PriceCents: -1, DurationMin: 60})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("failure: zero duration", func() {
		_, err := cmds.Create(context.Background(), commands.ServiceInput{Name: "x", PriceCents: 100})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}

func (s *CatalogCommandsTestSuite) TestServiceUpdate() {
	cmds := commands.NewServiceCommands(s.uow, clock.NewMockClock(catalogNow))
	price, _ := service.NewMoney(5000)

	s.Run("success: keeps active flag when omitted", func() {
		stored := service.ReconstructService(1, "Reiki", "", price, 60, locale.English, nil, true, catalogNow, catalogNow)
		s.services.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(stored, nil)
		s.services.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(nil)

		err := cmds.Update(context.Background(), 1, commands.ServiceInput{
			Name: "Reiki Healing", PriceCents: 5500, DurationMin: 75, Language: "MON",
		})

		s.Require().NoError(err)
		s.Equal("Reiki Healing", stored.Name())
		s.Equal(locale.Mongolian, stored.Language())
		s.True(stored.IsActive())
	})

	s.Run("failure: not found", func() {
		s.services.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(9)).
			Return(nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound))

		err := cmds.Update(context.Background(), 9, commands.ServiceInput{Name: "x", PriceCents: 1, DurationMin: 1})
		s.True(errs.Is(err, errs.ErrServiceNotFound))
	})
}

func (s *CatalogCommandsTestSuite) TestTemplateCommands() {
	cmds := commands.NewTemplateCommands(s.uow, clock.NewMockClock(catalogNow))

	s.Run("create", func() {
		s.templates.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, t *notification.Template) (int64, error) {
				s.Equal(notification.TemplateBookingConfirmation, t.Name())
				return 5, nil
			})

		id, err := cmds.Create(context.Background(), commands.TemplateInput{
			Name: notification.TemplateBookingConfirmation, Subject: "Booked", Body: "Hi {user_name}",
		})

		s.Require().NoError(err)
		s.Equal(int64(5), id)
	})

	s.Run("create rejects bad name", func() {
		_, err := cmds.Create(context.Background(), commands.TemplateInput{Name: "Bad Name!", Subject: "s", Body: "b"})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("duplicate name", func() {
		s.templates.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert template", errs.New("unique"), infra.KindDuplicateKey))

		_, err := cmds.Create(context.Background(), commands.TemplateInput{Name: "dup", Subject: "s", Body: "b"})
		s.True(errs.Is(err, errs.ErrDuplicateTemplateName))
	})

	s.Run("update", func() {
		stored := notification.ReconstructTemplate(5, "welcome", "Hi", "Body", "", catalogNow, catalogNow)
		s.templates.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(5)).Return(stored, nil)
		s.templates.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(nil)

		s.Require().NoError(cmds.Update(context.Background(), 5, commands.TemplateInput{Name: "welcome", Subject: "Hello", Body: "New body"}))
		s.Equal("Hello", stored.Subject())
	})

	s.Run("delete not found", func() {
		s.templates.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(8)).
			Return(infra.WrapRepoErr("template not found", nil, infra.KindNotFound))

		s.True(errs.Is(cmds.Delete(context.Background(), 8), errs.ErrTemplateNotFound))
	})
}

func (s *CatalogCommandsTestSuite) TestSettingCommands() {
	cmds := commands.NewSettingCommands(s.uow, clock.NewMockClock(catalogNow))

	s.Run("upsert", func() {
		s.settings.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, st *sitesetting.Setting) (int64, error) {
				s.Equal("hero_title", st.Key())
				s.Equal(locale.Mongolian, st.Language())
				return 4, nil
			})

		id, err := cmds.Upsert(context.Background(), commands.SettingInput{Key: "hero_title", Value: "Сайн байна уу", Language: "MON"})

		s.Require().NoError(err)
		s.Equal(int64(4), id)
	})

	s.Run("upsert rejects bad key", func() {
		_, err := cmds.Upsert(context.Background(), commands.SettingInput{Key: "Hero Title", Value: "x"})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("update collides with another key", func() {
		stored := sitesetting.ReconstructSetting(4, "hero_title", "Hi", locale.English, "", catalogNow)
		s.settings.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(4)).Return(stored, nil)
		s.settings.EXPECT().Update(gomock.Any(), gomock.Any(), stored).
			Return(infra.WrapRepoErr("update setting", errs.New("unique"), infra.KindDuplicateKey))

		err := cmds.Update(context.Background(), 4, commands.SettingInput{Key: "site_name", Value: "x", Language: "ENG"})
		s.True(errs.Is(err, errs.ErrDuplicateSetting))
	})

	s.Run("delete not found", func() {
		s.settings.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(4)).
			Return(infra.WrapRepoErr("setting not found", nil, infra.KindNotFound))

		s.True(errs.Is(cmds.Delete(context.Background(), 4), errs.ErrSettingNotFound))
	})
}
