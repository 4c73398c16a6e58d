package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/franciscofornicola/rede-alerta/config"
	"github.com/franciscofornicola/rede-alerta/middlewares"
	"github.com/franciscofornicola/rede-alerta/models"
	"github.com/franciscofornicola/rede-alerta/services"
	"github.com/franciscofornicola/rede-alerta/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        filepath.Join(t.TempDir(), "rede_alerta_test.db"),
	}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}

// newTestRouter registers the JSON routes the tests exercise, mirroring
// routes.SetupRouter (that package is not importable here without a cycle).
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)

	r.POST("/alertas", middlewares.AuthMiddleware(), CreateAlerta)
	r.GET("/alertas", ListAlertas)
	r.GET("/alertas/:id", GetAlerta)
	r.PUT("/alertas/:id/status", UpdateAlertaStatus)
	r.DELETE("/alertas/:id", DeleteAlerta)

	r.POST("/usuarios", CreateUsuario)
	r.GET("/usuarios", ListUsuarios)
	r.GET("/usuarios/:id", GetUsuario)
	r.PUT("/usuarios/:id", UpdateUsuario)
	r.DELETE("/usuarios/:id", DeleteUsuario)
	r.GET("/usuarios/:id/perfil", GetPerfil)
	r.POST("/usuarios/:id/pontos", GrantPontos)
	r.POST("/usuarios/:id/conquistas/:conquistaId", GrantConquista)

	r.POST("/regioes", CreateRegiao)
	r.GET("/regioes/:id", GetRegiao)
	r.DELETE("/regioes/:id", DeleteRegiao)

	r.GET("/conquistas", ListConquistas)

	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func registerTestUser(t *testing.T, name, email string) (*models.User, string) {
	t.Helper()

	user, err := services.CreateUser(services.UserInput{Name: name, Email: email, Password: "senha123"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, esperado %d. Corpo: %s", rec.Code, want, rec.Body.String())
	}
}
