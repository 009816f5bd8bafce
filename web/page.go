package web

import (
	"net/url"

	"github.com/labstack/echo/v4"

	"cropadvisor/entities"
	"cropadvisor/pkg/middleware"
)

// Languages offered in the language picker. Selecting one only changes the flag.
var Languages = []string{"English", "Hindi", "Marathi", "Tamil", "Telugu", "Kannada", "Bengali"}

// Page is the data every template receives.
type Page struct {
	Title   string
	Lang    string
	Account *entities.Account
	Values  map[string]string
	Errors  map[string]string
	Data    any
}

func NewPage(c echo.Context, title string) *Page {
	p := &Page{Title: title, Lang: middleware.CurrentLang(c)}
	if acc, ok := middleware.CurrentAccount(c); ok {
		p.Account = acc
	}
	return p
}

// Link adds the lang flag to an internal path.
func (p *Page) Link(path string) string {
	if p.Lang == "" {
		return path
	}
	return path + "?lang=" + url.QueryEscape(p.Lang)
}

func (p *Page) Value(field string) string { return p.Values[field] }

func (p *Page) Error(field string) string { return p.Errors[field] }

func (p *Page) Languages() []string { return Languages }

// Field describes one numeric input on the crop form.
type Field struct {
	Name        string
	Label       string
	Placeholder string
}

// SoilFields is the crop form, in feature order.
var SoilFields = []Field{
	{"nitrogen", "Nitrogen (N)", "e.g. 90"},
	{"phosphorus", "Phosphorus (P)", "e.g. 42"},
	{"potassium", "Potassium (K)", "e.g. 43"},
	{"temperature", "Temperature (°C)", "e.g. 20.8"},
	{"humidity", "Humidity (%)", "e.g. 82"},
	{"pH", "pH", "e.g. 6.5"},
	{"rainfall", "Rainfall (mm)", "e.g. 202.9"},
}

// RenderError renders the shared error page with status.
func RenderError(c echo.Context, status int, msg string) error {
	p := NewPage(c, "Error")
	p.Data = msg
	return c.Render(status, "error", p)
}
