package initializers

import (
	"context"

	"vocacional-ai-backend/config"
	"vocacional-ai-backend/fiberlog"
	adminpanelhandler "vocacional-ai-backend/lib/admin-panel"
	adminpanelauthhandler "vocacional-ai-backend/lib/admin-panel/auth"
	adminpanelstore "vocacional-ai-backend/lib/admin-panel/store"
	analysisagent "vocacional-ai-backend/lib/agents/analysis"
	courseagent "vocacional-ai-backend/lib/agents/course"
	narrativeagent "vocacional-ai-backend/lib/agents/narrative"
	orchestratoragent "vocacional-ai-backend/lib/agents/orchestrator"
	questionagent "vocacional-ai-backend/lib/agents/question"
	whatsappagent "vocacional-ai-backend/lib/agents/whatsapp"
	xlsexport "vocacional-ai-backend/lib/export/xls"
	openaiclient "vocacional-ai-backend/lib/gpt/openai-client"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitWhatsupp(ctx)
	adminpanelstore.NewCourseHandler(config.Conf.Data.CoursesFile)
	adminpanelstore.NewConfigHandler(config.Conf.Data.ConfigFile)
	adminpanelauthhandler.NewHandler()
	xlsexport.NewHandler()
	adminpanelhandler.NewHandler()
	openaiclient.NewHandler()
	questionagent.NewHandler()
	analysisagent.NewHandler(adminpanelstore.ConfigInstance)
	courseagent.NewHandler(adminpanelstore.CourseInstance)
	narrativeagent.NewHandler()
	whatsappagent.NewHandler()
	orchestratoragent.NewHandler()
}
