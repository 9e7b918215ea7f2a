package whatsappclient

import (
	"context"
	"net/http"

	"github.com/piusalfred/whatsapp/config"
	"github.com/piusalfred/whatsapp/message"
	whttp "github.com/piusalfred/whatsapp/pkg/http"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SendTextMessage(ctx context.Context, recipient, msg string) error
}

var Instance Provider

func Connect(ctx context.Context, baseUrl, accessToken, apiVersion, businessAccountID string) error {
	httpClient := &http.Client{}
	clientOptions := []whttp.CoreClientOption[message.Message]{
		whttp.WithCoreClientHTTPClient[message.Message](httpClient),
	}
	Instance = impl{
		coreClient: whttp.NewSender[message.Message](clientOptions...),
		configReader: config.ReaderFunc(func(ctx context.Context) (*config.Config, error) {
			return &config.Config{
				BaseURL:           baseUrl,
				AccessToken:       accessToken,
				APIVersion:        apiVersion,
				BusinessAccountID: businessAccountID,
			}, nil
		}),
	}
	return nil
}

type impl struct {
	configReader config.ReaderFunc
	coreClient   *whttp.CoreClient[message.Message]
}

func (i impl) SendTextMessage(ctx context.Context, recipient, msg string) error {
	logger := log.WithField("recipient", recipient)

	client, err := message.NewBaseClient(i.coreClient, i.configReader)
	if err != nil {
		return errors.Wrap(err, "erro ao criar cliente WhatsApp")
	}

	textMessage := message.NewRequest(recipient, &message.Text{
		Body: msg,
	}, "")

	response, err := client.SendText(ctx, textMessage)
	if err != nil {
		return errors.Wrap(err, "erro ao enviar mensagem")
	}

	logger.Infof("Mensagem enviada com sucesso para %v. Response: %+v", recipient, response)
	return nil
}
