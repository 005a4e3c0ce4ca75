package app

import (
	"github.com/widyalab/landing-api/internal/middleware"
	"github.com/widyalab/landing-api/internal/modules/admin"
	"github.com/widyalab/landing-api/internal/modules/agenda"
	"github.com/widyalab/landing-api/internal/modules/announcement"
	"github.com/widyalab/landing-api/internal/modules/banner"
	"github.com/widyalab/landing-api/internal/modules/category"
	"github.com/widyalab/landing-api/internal/modules/intern"
	"github.com/widyalab/landing-api/internal/modules/logs"
	"github.com/widyalab/landing-api/internal/modules/news"
	"github.com/widyalab/landing-api/internal/modules/partner"
	"github.com/widyalab/landing-api/internal/modules/project"
	"github.com/widyalab/landing-api/internal/modules/projectcategory"
	"github.com/widyalab/landing-api/internal/modules/projectmember"
	"github.com/widyalab/landing-api/internal/modules/staff"
	"github.com/widyalab/landing-api/internal/modules/statistic"
	"github.com/widyalab/landing-api/internal/modules/testimony"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"github.com/widyalab/landing-api/internal/pkg/jwt"
)

func (a *App) registerRoutes(signer *jwt.Signer, images *imagestore.Store, rec *audit.Recorder) {
	api := a.engine.Group("/api")

	authMW := middleware.Auth(signer)
	loginRateMW := middleware.LoginRateLimit(a.rdb)

	adminSvc := admin.NewService(a.db, signer, rec)
	admin.NewHandler(adminSvc).RegisterRoutes(api, authMW, loginRateMW)
	logs.NewHandler(a.db).RegisterRoutes(api, authMW)

	staff.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	intern.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	news.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	announcement.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	agenda.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	partner.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	testimony.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	category.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	banner.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	statistic.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)

	project.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	projectcategory.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
	projectmember.NewHandler(a.db, images, rec, a.log).RegisterRoutes(api, authMW)
}
