package middleware

import (
	"net/http"
	"time"

	"gasvision/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "gv_session"

	CtxSessionIDKey    = "session_id"    // string
	CtxSessionStateKey = "session_state" // session.State
)

// Session はcookieのIDでセッションを読み、無ければ新しく作る。
// 保存は各ハンドラが結果を出した後に行う。
// 同じIDのリクエストはハンドラの保存が終わるまで順番に処理する。
func Session(store session.Store, ttl time.Duration, log *zap.SugaredLogger) echo.MiddlewareFunc {
	locks := session.NewLocks()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			id := ""
			if ck, err := c.Cookie(SessionCookieName); err == nil {
				if _, err := uuid.Parse(ck.Value); err == nil {
					id = ck.Value
				}
			}

			st := session.New()
			if id != "" {
				unlock := locks.Lock(id)
				defer unlock()

				loaded, ok, err := store.Get(ctx, id)
				if err != nil {
					log.Errorw("session load failed", "session_id", id, "error", err)
					return c.JSON(http.StatusServiceUnavailable, errorJSON("storage unavailable"))
				}
				if ok {
					st = loaded
				} else {
					//期限切れ・知らないIDは作り直す
					id = ""
				}
			}

			if id == "" {
				id = uuid.NewString()
			}

			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			c.Set(CtxSessionIDKey, id)
			c.Set(CtxSessionStateKey, st)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	id, _ := c.Get(CtxSessionIDKey).(string)
	return id
}

// SessionState は現在の状態。ミドルウェアを通っていなければ空の状態。
func SessionState(c echo.Context) session.State {
	st, ok := c.Get(CtxSessionStateKey).(session.State)
	if !ok {
		return session.New()
	}
	return st
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
