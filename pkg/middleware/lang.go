package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const langKey = "lang"

// Lang records the display-language flag from the `lang` query or form value.
// The value is only carried through to templates; nothing is translated.
func Lang(def string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := strings.TrimSpace(c.QueryParam(langKey))
			if lang == "" && c.Request().Method == http.MethodPost {
				lang = strings.TrimSpace(c.FormValue(langKey))
			}
			if lang == "" {
				lang = def
			}
			c.Set(langKey, lang)
			c.Set(langKey+".default", def)
			return next(c)
		}
	}
}

func CurrentLang(c echo.Context) string {
	s, _ := c.Get(langKey).(string)
	return s
}

// WithLang appends the current lang to path unless it is the default.
func WithLang(c echo.Context, path string) string {
	lang := CurrentLang(c)
	def, _ := c.Get(langKey + ".default").(string)
	if lang == "" || lang == def {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + langKey + "=" + url.QueryEscape(lang)
}
