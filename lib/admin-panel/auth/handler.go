package adminpanelauthhandler

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vocacional-ai-backend/config"
	authapimodels "vocacional-ai-backend/models/api/auth"
)

type Provider interface {
	Login(password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		password:       config.Conf.AdminPanelAuth.Password,
		jwtSecret:      config.Conf.AdminPanelAuth.JWTSecret,
		jwtExpireInSec: config.Conf.AdminPanelAuth.JWTExpireInSec,
	}
}

type impl struct {
	password       string
	jwtSecret      string
	jwtExpireInSec int
}

// Login valida a senha única do painel e emite o JWT de administrador
func (i impl) Login(password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("scope", "admin-panel")
	if i.password == "" {
		logger.Error("senha do painel administrativo não configurada")
		return authapimodels.JWTResponse{}, errors.New("painel administrativo não configurado")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(i.password)) != 1 {
		logger.Debug("senha do painel administrativo incorreta")
		return authapimodels.JWTResponse{}, errors.New("senha incorreta")
	}
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Second * time.Duration(i.jwtExpireInSec)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(i.jwtSecret))
	if err != nil {
		logger.WithError(err).Error("erro ao gerar JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}
