package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/database"
	"cropadvisor/pkg/crop/classifier"
)

type rows int

func (r rows) Len() int { return int(r) }

func get(t *testing.T, h interface{ Health(echo.Context) error }) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, h.Health(e.NewContext(req, rec)))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth_AllLoaded(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)

	code, body := get(t, NewHealthCtrl(db, rows(22), classifier.NewMock(1)))
	assert.Equal(t, http.StatusOK, code)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, 22.0, checks["reference"].(map[string]any)["rows"])
	assert.Equal(t, true, checks["database"].(map[string]any)["ok"])
}

func TestHealth_MissingParts(t *testing.T) {
	code, body := get(t, NewHealthCtrl(nil, rows(0), nil))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "gorm db is nil", checks["database"].(map[string]any)["err"])
	assert.Equal(t, false, checks["classifier"].(map[string]any)["ok"])
}
