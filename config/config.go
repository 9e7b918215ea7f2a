package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"3333"  env:"APP_PORT"`
		Env        string `default:"development" env:"APP_ENV"`
	}
	OpenAI struct {
		APIKey string `default:"" env:"OPENAI_API_KEY"`
		Model  string `default:"gpt-4o-mini" env:"OPENAI_MODEL"`
	}
	AI struct {
		// Análise determinística: o código seleciona os cursos e o modelo escreve
		// apenas o parágrafo motivacional
		DeterministicAnalysis *bool `default:"true" env:"AI_DETERMINISTIC_ANALYSIS"`
	}
	Data struct {
		CoursesFile string `default:"data/courses.json" env:"DATA_COURSES_FILE"`
		ConfigFile  string `default:"data/config.json" env:"DATA_CONFIG_FILE"`
	}
	AdminPanelAuth struct {
		Password       string `default:"" env:"ADMIN_PANEL_PASSWORD"`
		JWTSecret      string `default:"" env:"ADMIN_PANEL_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"ADMIN_PANEL_JWT_EXPIRE_IN_SEC"`
	}
	WhatsApp struct {
		BaseUrl           string `default:"https://graph.facebook.com" env:"WHATSAPP_BASE_URL"`
		AccessToken       string `default:"" env:"WHATSAPP_ACCESS_TOKEN"`
		ApiVersion        string `default:"v20.0" env:"WHATSAPP_API_VERSION"`
		BusinessAccountID string `default:"" env:"WHATSAPP_BUSINESS_ACCOUNT_ID"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// IsDeterministicAnalysis - modo de análise configurado
func (c *Configuration) IsDeterministicAnalysis() bool {
	if c.AI.DeterministicAnalysis == nil {
		return true
	}
	return *c.AI.DeterministicAnalysis
}
