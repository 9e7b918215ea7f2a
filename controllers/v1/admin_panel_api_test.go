package apiv1

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"vocacional-ai-backend/config"
	adminpanelhandler "vocacional-ai-backend/lib/admin-panel"
	adminpanelauthhandler "vocacional-ai-backend/lib/admin-panel/auth"
	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	xlsexport "vocacional-ai-backend/lib/export/xls"
	apimodels "vocacional-ai-backend/models/api"
	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
)

func newAdminApp(t *testing.T) *fiber.App {
	t.Helper()
	conf := new(config.Configuration)
	conf.AdminPanelAuth.Password = "senha-do-painel"
	conf.AdminPanelAuth.JWTSecret = "segredo-de-teste"
	conf.AdminPanelAuth.JWTExpireInSec = 3600
	config.Conf = conf

	dir := t.TempDir()
	adminpanelstore.NewCourseHandler(filepath.Join(dir, "courses.json"))
	adminpanelstore.NewConfigHandler(filepath.Join(dir, "config.json"))
	adminpanelauthhandler.NewHandler()
	xlsexport.NewHandler()
	adminpanelhandler.NewHandler()

	app := fiber.New()
	InitAdminApiRouters(app)
	return app
}

func adminRequest(t *testing.T, app *fiber.App, method, path, token, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	require.Nil(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp.StatusCode, string(payload)
}

func adminLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := adminRequest(t, app, fiber.MethodPost, "/login", "", `{"password": "senha-do-painel"}`)
	require.Equal(t, fiber.StatusOK, status)
	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.Nil(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func TestAdminPanelApi(t *testing.T) {
	t.Run(`senha incorreta devolve não autorizado`, func(t *testing.T) {
		app := newAdminApp(t)
		status, _ := adminRequest(t, app, fiber.MethodPost, "/login", "", `{"password": "errada"}`)
		require.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run(`senha em branco é rejeitada na validação`, func(t *testing.T) {
		app := newAdminApp(t)
		status, _ := adminRequest(t, app, fiber.MethodPost, "/login", "", `{"password": ""}`)
		require.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run(`rotas de cursos exigem autenticação`, func(t *testing.T) {
		app := newAdminApp(t)
		status, _ := adminRequest(t, app, fiber.MethodGet, "/courses/", "", "")
		require.NotEqual(t, fiber.StatusOK, status)
	})

	t.Run(`ciclo completo de cadastro de curso`, func(t *testing.T) {
		app := newAdminApp(t)
		token := adminLogin(t, app)

		courseBody := `{
			"nome": "Excel Avançado",
			"area": "gestao",
			"descricao": "Planilhas para o mercado de trabalho",
			"nivel": "intermediario",
			"modalidade": "presencial",
			"duracao": "60h"
		}`
		status, body := adminRequest(t, app, fiber.MethodPost, "/courses/", token, courseBody)
		require.Equal(t, fiber.StatusCreated, status)
		var created apimodels.Response
		require.Nil(t, json.Unmarshal([]byte(body), &created))
		record := created.Data.(map[string]interface{})
		courseID := record["id"].(string)
		require.NotEmpty(t, courseID)

		status, body = adminRequest(t, app, fiber.MethodGet, "/courses/"+courseID, token, "")
		require.Equal(t, fiber.StatusOK, status)
		require.Contains(t, body, "Excel Avançado")

		status, _ = adminRequest(t, app, fiber.MethodDelete, "/courses/"+courseID, token, "")
		require.Equal(t, fiber.StatusOK, status)

		status, _ = adminRequest(t, app, fiber.MethodGet, "/courses/"+courseID, token, "")
		require.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run(`curso com nível inválido é rejeitado`, func(t *testing.T) {
		app := newAdminApp(t)
		token := adminLogin(t, app)
		status, _ := adminRequest(t, app, fiber.MethodPost, "/courses/", token, `{
			"nome": "Excel Avançado",
			"area": "gestao",
			"nivel": "expert",
			"modalidade": "presencial",
			"duracao": "60h"
		}`)
		require.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run(`importação e estatísticas refletem o cadastro`, func(t *testing.T) {
		app := newAdminApp(t)
		token := adminLogin(t, app)
		status, _ := adminRequest(t, app, fiber.MethodPost, "/courses/import", token, `{
			"courses": [
				{"nome": "Excel Avançado", "area": "gestao", "nivel": "intermediario", "modalidade": "presencial", "duracao": "60h"},
				{"nome": "Cozinha Básica", "area": "gastronomia", "nivel": "basico", "modalidade": "presencial", "duracao": "80h"}
			],
			"overwrite": true
		}`)
		require.Equal(t, fiber.StatusOK, status)

		status, body := adminRequest(t, app, fiber.MethodGet, "/stats", token, "")
		require.Equal(t, fiber.StatusOK, status)
		var stats struct {
			Data adminpanelapimodels.CourseStats `json:"data"`
		}
		require.Nil(t, json.Unmarshal([]byte(body), &stats))
		require.Equal(t, 2, stats.Data.Total)
		require.Equal(t, 2, stats.Data.Ativos)
		require.Equal(t, 1, stats.Data.PorArea["gestao"])
	})

	t.Run(`exportação em xlsx devolve a planilha`, func(t *testing.T) {
		app := newAdminApp(t)
		token := adminLogin(t, app)
		req := httptest.NewRequest(fiber.MethodGet, "/courses/export?format=xlsx", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req, 5000)
		require.Nil(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "cursos.xlsx")
		payload, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		require.Equal(t, "PK", string(payload[:2]))
	})

	t.Run(`configuração de WhatsApp é atualizada e persistida`, func(t *testing.T) {
		app := newAdminApp(t)
		token := adminLogin(t, app)
		status, body := adminRequest(t, app, fiber.MethodPut, "/config/whatsapp", token, `{
			"number": "(98) 91234-5678",
			"enabled": false
		}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Contains(t, body, "(98) 91234-5678")

		status, body = adminRequest(t, app, fiber.MethodGet, "/config", token, "")
		require.Equal(t, fiber.StatusOK, status)
		var cfg struct {
			Data adminpanelapimodels.Config `json:"data"`
		}
		require.Nil(t, json.Unmarshal([]byte(body), &cfg))
		require.Equal(t, "(98) 91234-5678", cfg.Data.WhatsApp.Number)
		require.Equal(t, false, cfg.Data.WhatsApp.Enabled)
	})
}
