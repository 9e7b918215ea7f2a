package initializers

import (
	"context"

	"vocacional-ai-backend/config"
	whatsappclient "vocacional-ai-backend/lib/whatsup/client"
)

func InitWhatsupp(ctx context.Context) {
	err := whatsappclient.Connect(
		ctx,
		config.Conf.WhatsApp.BaseUrl,
		config.Conf.WhatsApp.AccessToken,
		config.Conf.WhatsApp.ApiVersion,
		config.Conf.WhatsApp.BusinessAccountID,
	)
	if err != nil {
		panic(err.Error())
	}
}
