package service

import (
	"github.com/clinickit/phicrypt/internal/config"
	"github.com/clinickit/phicrypt/internal/crypto"
	"github.com/clinickit/phicrypt/internal/logger"
)

type Services struct {
	RecordCipher RecordCipher
}

func NewServices(cfg config.Crypto, logger *logger.Logger) *Services {
	keys := crypto.NewKeyring(cfg.Secret)
	cipher := crypto.NewFieldCipher(keys, logger)

	return &Services{
		RecordCipher: NewRecordCipherService(cipher, logger),
	}
}
