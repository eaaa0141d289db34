package handler

import (
	"net/http"

	"github.com/vfg2006/crm-api/internal/api/handler/router"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/insighting"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/middleware"
)

const (
	authPrefix = "/api/v1/auth"
	userPrefix = "/api/v1/users"
	crmPrefix  = "/api/v1/a-crm"
)

// crmGroup agrupa um recurso do CRM liberado a todos os papéis
func crmGroup(resource string, extra ...router.Middleware) router.Group {
	return router.Group{
		Prefix:      crmPrefix + resource,
		Middlewares: append([]router.Middleware{middleware.AllRoles()}, extra...),
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	authenticated := []router.Middleware{middleware.AllRoles()}

	return router.Group{Prefix: authPrefix}.Routes(
		router.Route{Path: "/register", Method: http.MethodPost, Handler: Register(service)},
		router.Route{Path: "/login", Method: http.MethodPost, Handler: Login(service)},
		router.Route{Path: "/logout", Method: http.MethodPost, Handler: Logout(service), Middlewares: authenticated},
		router.Route{Path: "/me", Method: http.MethodGet, Handler: GetMe(service), Middlewares: authenticated},
		router.Route{Path: "/update-password", Method: http.MethodPut, Handler: ChangePassword(service), Middlewares: authenticated},
	)
}

// User: leitura e edição do próprio perfil liberadas a todos; o serviço confere o alvo
func User(service authenticating.Authenticator) []router.Route {
	admin := []router.Middleware{middleware.AdminOnly()}
	all := []router.Middleware{middleware.AllRoles()}

	return router.Group{Prefix: userPrefix}.Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListUsers(service), Middlewares: admin},
		router.Route{Path: "", Method: http.MethodPost, Handler: CreateUser(service), Middlewares: admin},
		router.Route{Path: "/:id", Method: http.MethodGet, Handler: GetUser(service), Middlewares: all},
		router.Route{Path: "/:id", Method: http.MethodPut, Handler: UpdateUser(service), Middlewares: all},
		router.Route{Path: "/:id/generate-password", Method: http.MethodPost, Handler: GeneratePassword(service), Middlewares: admin},
	)
}

func Companies(service managing.CompanyManager) []router.Route {
	return crmGroup("/companies").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListCompanies(service)},
		router.Route{Path: "", Method: http.MethodPost, Handler: CreateCompany(service)},
		router.Route{Path: "/:id", Method: http.MethodGet, Handler: GetCompany(service)},
		router.Route{Path: "/:id", Method: http.MethodPut, Handler: UpdateCompany(service)},
		router.Route{Path: "/:id", Method: http.MethodDelete, Handler: DeleteCompany(service)},
		router.Route{Path: "/:id/contacts", Method: http.MethodGet, Handler: ListCompanyContacts(service)},
		router.Route{Path: "/:id/deals", Method: http.MethodGet, Handler: ListCompanyDeals(service)},
	)
}

func Contacts(service managing.ContactManager) []router.Route {
	return crmGroup("/contacts").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListContacts(service)},
		router.Route{Path: "", Method: http.MethodPost, Handler: CreateContact(service)},
		router.Route{Path: "/:id", Method: http.MethodGet, Handler: GetContact(service)},
		router.Route{Path: "/:id", Method: http.MethodPut, Handler: UpdateContact(service)},
		router.Route{Path: "/:id", Method: http.MethodDelete, Handler: DeleteContact(service)},
	)
}

// Deals: GET /deals/pipeline é atendido por GetDeal
func Deals(service managing.DealManager) []router.Route {
	return crmGroup("/deals").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListDeals(service)},
		router.Route{Path: "", Method: http.MethodPost, Handler: CreateDeal(service)},
		router.Route{Path: "/:id", Method: http.MethodGet, Handler: GetDeal(service)},
		router.Route{Path: "/:id", Method: http.MethodPut, Handler: UpdateDeal(service)},
		router.Route{Path: "/:id", Method: http.MethodDelete, Handler: DeleteDeal(service)},
		router.Route{Path: "/:id/stage", Method: http.MethodPatch, Handler: UpdateDealStage(service)},
	)
}

func Activities(service managing.ActivityManager) []router.Route {
	return crmGroup("/activities").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListActivities(service)},
		router.Route{Path: "", Method: http.MethodPost, Handler: CreateActivity(service)},
		router.Route{Path: "/:id", Method: http.MethodGet, Handler: GetActivity(service)},
		router.Route{Path: "/:id", Method: http.MethodPut, Handler: UpdateActivity(service)},
		router.Route{Path: "/:id", Method: http.MethodDelete, Handler: DeleteActivity(service)},
		router.Route{Path: "/:id/complete", Method: http.MethodPatch, Handler: CompleteActivity(service)},
	)
}

// Tasks e Notes são visões das atividades do tipo correspondente
func Tasks(service managing.ActivityManager) []router.Route {
	return crmGroup("/tasks").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListActivitiesOfType(service, domain.ActivityTypeTask)},
	)
}

func Notes(service managing.ActivityManager) []router.Route {
	return crmGroup("/notes").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListActivitiesOfType(service, domain.ActivityTypeNote)},
	)
}

func Projects(service managing.ProjectManager) []router.Route {
	return crmGroup("/projects").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListProjects(service)},
		router.Route{Path: "", Method: http.MethodPost, Handler: CreateProject(service)},
		router.Route{Path: "/:id", Method: http.MethodGet, Handler: GetProject(service)},
		router.Route{Path: "/:id", Method: http.MethodPut, Handler: UpdateProject(service)},
		router.Route{Path: "/:id", Method: http.MethodDelete, Handler: DeleteProject(service)},
	)
}

func Campaigns(service managing.CampaignManager) []router.Route {
	return crmGroup("/campaigns").Routes(
		router.Route{Path: "", Method: http.MethodGet, Handler: ListCampaigns(service)},
		router.Route{Path: "", Method: http.MethodPost, Handler: CreateCampaign(service)},
		router.Route{Path: "/:id", Method: http.MethodGet, Handler: GetCampaign(service)},
		router.Route{Path: "/:id", Method: http.MethodPut, Handler: UpdateCampaign(service)},
		router.Route{Path: "/:id", Method: http.MethodDelete, Handler: DeleteCampaign(service)},
		router.Route{Path: "/:id/contacts", Method: http.MethodPost, Handler: AddCampaignContacts(service)},
		router.Route{Path: "/:id/contacts", Method: http.MethodDelete, Handler: RemoveCampaignContacts(service)},
		router.Route{Path: "/:id/contacts/filter", Method: http.MethodPost, Handler: AddCampaignContactsByFilter(service)},
		router.Route{Path: "/:id/contacts/:contactId", Method: http.MethodPatch, Handler: UpdateCampaignContact(service)},
	)
}

func Import(service managing.Importer) []router.Route {
	return crmGroup("/import").Routes(
		router.Route{Path: "/:entity", Method: http.MethodPost, Handler: ImportRecords(service)},
	)
}

func Insights(service insighting.Insighter) []router.Route {
	return crmGroup("").Routes(
		router.Route{Path: "/dashboard/metrics", Method: http.MethodGet, Handler: GetDashboardMetrics(service)},
		router.Route{Path: "/analytics/pipeline", Method: http.MethodGet, Handler: GetPipelineAnalytics(service)},
		router.Route{Path: "/analytics/revenue-trend", Method: http.MethodGet, Handler: GetRevenueTrend(service)},
		router.Route{Path: "/analytics/win-loss", Method: http.MethodGet, Handler: GetWinLoss(service)},
		router.Route{Path: "/analytics/activities", Method: http.MethodGet, Handler: GetActivitySummary(service)},
		router.Route{Path: "/analytics/forecast", Method: http.MethodGet, Handler: GetForecast(service)},
		router.Route{Path: "/search", Method: http.MethodGet, Handler: Search(service)},
		router.Route{Path: "/export/:entity", Method: http.MethodGet, Handler: Export(service)},
	)
}

// AI aplica o limite por usuário depois da checagem de papel
func AI(service assisting.Assistant, limiter *middleware.UserRateLimiter) []router.Route {
	return crmGroup("", limiter.Middleware()).Routes(
		router.Route{Path: "/ai/contacts/:id/score", Method: http.MethodPost, Handler: ScoreContact(service)},
		router.Route{Path: "/ai/email-draft", Method: http.MethodPost, Handler: DraftEmail(service)},
		router.Route{Path: "/ai/deals/:id/predict", Method: http.MethodPost, Handler: PredictDeal(service)},
		router.Route{Path: "/ai/insights", Method: http.MethodPost, Handler: GenerateInsights(service)},
		router.Route{Path: "/ai/next-action", Method: http.MethodPost, Handler: SuggestNextAction(service)},
		router.Route{Path: "/chat", Method: http.MethodPost, Handler: Chat(service)},
	)
}

func CronJobs(services CronJobServices) []router.Route {
	return router.Group{
		Prefix:      crmPrefix + "/cron",
		Middlewares: []router.Middleware{middleware.AdminOnly()},
	}.Routes(
		router.Route{Path: "/:type/run", Method: http.MethodPost, Handler: RunCronJob(services)},
		router.Route{Path: "/status", Method: http.MethodGet, Handler: GetCronStatus(services)},
	)
}
