package controller

import (
	"time"

	"sentiment-dashboard/internal/dashboard"
	"sentiment-dashboard/internal/pkg/logger"
	"sentiment-dashboard/internal/pkg/serverutils"
	"sentiment-dashboard/internal/repository/memory"
	"sentiment-dashboard/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const SessionCookieName = "dashboard_session"

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Predict(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dispatcher *dashboard.Dispatcher
	renderer   *dashboard.Renderer
	sessions   *memory.SessionRepository
	sessionTTL time.Duration
	rules      []serverutils.StatusRule
	logger     logger.ILogger
}

func NewDashboardController(
	dispatcher *dashboard.Dispatcher,
	renderer *dashboard.Renderer,
	sessions *memory.SessionRepository,
	sessionTTL time.Duration,
	rules []serverutils.StatusRule,
	log logger.ILogger,
) IDashboardController {
	return &dashboardController{
		dispatcher: dispatcher,
		renderer:   renderer,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		rules:      rules,
		logger:     log,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Post("/predict", c.Predict)
	r.Post("/bulk", c.Analyze)
}

func (c *dashboardController) Index(ctx *fiber.Ctx) error {
	ev := dashboard.Event{Kind: dashboard.EventRefresh}
	if column := ctx.Query("column"); column != "" {
		ev = dashboard.Event{Kind: dashboard.EventSelectColumn, Column: column}
	}
	return c.handle(ctx, ev)
}

func (c *dashboardController) Predict(ctx *fiber.Ctx) error {
	return c.handle(ctx, dashboard.Event{
		Kind:   dashboard.EventPredict,
		Column: ctx.FormValue("column"),
		Text:   ctx.FormValue("text"),
	})
}

func (c *dashboardController) Analyze(ctx *fiber.Ctx) error {
	return c.handle(ctx, dashboard.Event{
		Kind:   dashboard.EventAnalyze,
		Column: ctx.FormValue("column"),
	})
}

// handle runs one page interaction: restore the session, dispatch, persist
// the next state and render whatever view came back.
func (c *dashboardController) handle(ctx *fiber.Ctx, ev dashboard.Event) error {
	sess := c.session(ctx)

	state := dashboard.State{SelectedColumn: sess.SelectedColumn, Text: sess.Text}
	next, view, err := c.dispatcher.Dispatch(ctx.UserContext(), state, ev)

	sess.SelectedColumn = next.SelectedColumn
	sess.Text = next.Text
	c.sessions.Save(sess)

	status := fiber.StatusOK
	if err != nil {
		status = serverutils.StatusFor(err, c.rules)
		details := map[string]interface{}{
			"event":  string(ev.Kind),
			"status": status,
			"error":  err,
		}
		if status >= fiber.StatusInternalServerError {
			c.logger.Error("DASHBOARD", "interaction failed", details)
		} else {
			c.logger.Warn("DASHBOARD", "interaction rejected", details)
		}
	}

	ctx.Status(status)
	ctx.Type("html", "utf-8")
	return c.renderer.Render(ctx, view)
}

func (c *dashboardController) session(ctx *fiber.Ctx) store.Session {
	id := ctx.Cookies(SessionCookieName)
	if id != "" {
		if sess, found := c.sessions.Get(id); found {
			c.setCookie(ctx, id)
			return sess
		}
	}

	initial := c.dispatcher.Initial()
	sess := store.Session{ID: uuid.NewString(), SelectedColumn: initial.SelectedColumn}
	c.setCookie(ctx, sess.ID)
	return sess
}

func (c *dashboardController) setCookie(ctx *fiber.Ctx, id string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(c.sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
