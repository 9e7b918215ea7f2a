package adminpanelstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	adminpanelapimodels "vocacional-ai-backend/models/api/admin-panel"
)

// ConfigProvider - configuração institucional persistida em data/config.json
type ConfigProvider interface {
	Get() (adminpanelapimodels.Config, error)
	SetWhatsApp(number string, enabled bool) (adminpanelapimodels.WhatsAppConfig, error)
}

var ConfigInstance ConfigProvider

func NewConfigHandler(filePath string) {
	ConfigInstance = NewConfigInstance(filePath)
}

func NewConfigInstance(filePath string) ConfigProvider {
	return &configImpl{filePath: filePath}
}

type configImpl struct {
	filePath string
	mu       sync.Mutex
}

// Get devolve a configuração; arquivo inexistente cria o padrão
func (i *configImpl) Get() (adminpanelapimodels.Config, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.load()
}

func (i *configImpl) load() (adminpanelapimodels.Config, error) {
	data, err := os.ReadFile(i.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := adminpanelapimodels.DefaultConfig()
			if err := i.save(cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return adminpanelapimodels.Config{}, errors.Wrap(err, "erro ao ler o arquivo de configuração")
	}
	var cfg adminpanelapimodels.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return adminpanelapimodels.Config{}, errors.Wrap(err, "arquivo de configuração corrompido")
	}
	return cfg, nil
}

func (i *configImpl) save(cfg adminpanelapimodels.Config) error {
	if err := os.MkdirAll(filepath.Dir(i.filePath), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório de dados")
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar configuração")
	}
	if err := os.WriteFile(i.filePath, data, 0o644); err != nil {
		return errors.Wrap(err, "erro ao gravar o arquivo de configuração")
	}
	return nil
}

func (i *configImpl) SetWhatsApp(number string, enabled bool) (adminpanelapimodels.WhatsAppConfig, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	cfg, err := i.load()
	if err != nil {
		return adminpanelapimodels.WhatsAppConfig{}, err
	}
	cfg.WhatsApp = adminpanelapimodels.WhatsAppConfig{
		Number:      number,
		Enabled:     enabled,
		LastUpdated: time.Now(),
	}
	if err := i.save(cfg); err != nil {
		return adminpanelapimodels.WhatsAppConfig{}, err
	}
	return cfg.WhatsApp, nil
}
